package ramonly

import (
	"bytes"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ironsweet/golucene/core/codec"
	. "github.com/ironsweet/golucene/core/index/model"
	. "github.com/ironsweet/golucene/core/search/model"
	"github.com/ironsweet/golucene/core/store"
	"github.com/ironsweet/golucene/core/util"
	tu "github.com/ironsweet/golucene/test_framework/util"
)

func TestFruitSegment(t *testing.T) {
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", fruitField())
	defer fp.Close()

	terms := fp.Terms("body")
	require.NotNil(t, terms)
	assert.Equal(t, int64(2), terms.Size())
	assert.Equal(t, int64(2), terms.SumDocFreq())
	assert.Equal(t, int64(3), terms.SumTotalTermFreq())
	assert.Equal(t, 2, terms.DocCount())
	assert.True(t, terms.HasFreqs())
	assert.True(t, terms.HasPositions())
	assert.False(t, terms.HasOffsets())
	assert.False(t, terms.HasPayloads())

	te := terms.Iterator(nil)
	assert.Equal(t, []string{"apple", "banana"}, collectTerms(t, te))

	status, err := te.SeekCeil([]byte("banana"))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_FOUND, status)

	status, err = te.SeekCeil([]byte("cherry"))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_END, status)

	ok, err := te.SeekExact([]byte("banana"))
	require.NoError(t, err)
	require.True(t, ok)
	de, err := te.Docs(util.NewLiveDocsWithout(3, 2), nil)
	require.NoError(t, err)
	doc, err := de.NextDoc()
	require.NoError(t, err)
	assert.Equal(t, NO_MORE_DOCS, doc)

	ok, err = te.SeekExact([]byte("apple"))
	require.NoError(t, err)
	require.True(t, ok)
	dpe, err := te.DocsAndPositions(nil, nil)
	require.NoError(t, err)
	require.NotNil(t, dpe)
	assert.Equal(t, -1, dpe.DocId())
	doc, err = dpe.NextDoc()
	require.NoError(t, err)
	assert.Equal(t, 1, doc)
	freq, err := dpe.Freq()
	require.NoError(t, err)
	assert.Equal(t, 2, freq)
	for _, want := range []int{0, 5} {
		pos, err := dpe.NextPosition()
		require.NoError(t, err)
		assert.Equal(t, want, pos)
		payload, err := dpe.Payload()
		require.NoError(t, err)
		assert.Nil(t, payload)
		start, _ := dpe.StartOffset()
		end, _ := dpe.EndOffset()
		assert.Equal(t, -1, start)
		assert.Equal(t, -1, end)
	}
	_, err = dpe.NextPosition()
	assert.Error(t, err)
	doc, err = dpe.NextDoc()
	require.NoError(t, err)
	assert.Equal(t, NO_MORE_DOCS, doc)
}

func TestRamBytesUsed(t *testing.T) {
	format := newTestFormat()
	writeAndOpen(t, format, store.NewRAMDirectory(), "_0", fruitField())
	used := format.Registry().RamBytesUsed()
	assert.True(t, used > 0)

	f := fruitField()
	f.terms[1].docs[0].payloads = [][]byte{[]byte("payload")}
	f.info = newFieldInfo("body", 0, INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS, true)
	writeAndOpen(t, format, store.NewRAMDirectory(), "_1", f)
	assert.True(t, format.Registry().RamBytesUsed() > 2*used)
}

func TestFieldsProducerFields(t *testing.T) {
	title := testField{
		info:  newFieldInfo("title", 1, INDEX_OPT_DOCS_ONLY, false),
		terms: []testTerm{{"fruit", []testDoc{{id: 1}, {id: 2}}}},
	}
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", title, fruitField())
	assert.Equal(t, []string{"body", "title"}, fp.Names())
	assert.Equal(t, 2, fp.Size())
	assert.Nil(t, fp.Terms("missing"))
	assert.NotNil(t, fp.Terms("title"))
	assert.NoError(t, fp.Close())
}

func TestSeekCeilNotFound(t *testing.T) {
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", fruitField())
	te := fp.Terms("body").Iterator(nil)

	status, err := te.SeekCeil([]byte("avocado"))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_NOT_FOUND, status)
	assert.Equal(t, "banana", string(te.Term()))
	df, err := te.DocFreq()
	require.NoError(t, err)
	assert.Equal(t, 1, df)
	de, err := te.Docs(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, collectDocs(t, de))

	status, err = te.SeekCeil([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_NOT_FOUND, status)
	assert.Equal(t, "apple", string(te.Term()))
	next, err := te.Next()
	require.NoError(t, err)
	assert.Equal(t, "banana", string(next))

	ok, err := te.SeekExact([]byte("apricot"))
	require.NoError(t, err)
	assert.False(t, ok)
	// a miss leaves the enum on the ceiling term
	assert.Equal(t, "banana", string(te.Term()))

	ok, err = te.SeekExact([]byte("zucchini"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, te.Term())
	_, err = te.DocFreq()
	assert.Equal(t, ErrUnpositioned, err)
}

func TestTermsEnumStates(t *testing.T) {
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", fruitField())
	te := fp.Terms("body").Iterator(nil)

	assert.Nil(t, te.Term())
	_, err := te.DocFreq()
	assert.True(t, errors.Is(err, ErrUnpositioned))
	_, err = te.TotalTermFreq()
	assert.True(t, errors.Is(err, ErrUnpositioned))
	_, err = te.Docs(nil, nil)
	assert.True(t, errors.Is(err, ErrUnpositioned))

	_, err = te.Ord()
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.True(t, errors.Is(te.SeekExactByPosition(0), ErrUnsupported))
	var ue *UnsupportedError
	assert.True(t, errors.As(te.SeekExactByPosition(1), &ue))

	status, err := te.SeekCeil([]byte("zucchini"))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_END, status)
	assert.Nil(t, te.Term())
	next, err := te.Next()
	require.NoError(t, err)
	assert.Nil(t, next, "Next after END stays exhausted")

	// a seek repositions an exhausted enum
	status, err = te.SeekCeil([]byte("apple"))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_FOUND, status)
	ttf, err := te.TotalTermFreq()
	require.NoError(t, err)
	assert.Equal(t, int64(2), ttf)
	assert.NotNil(t, te.Comparator())
}

func TestReverseTermOrder(t *testing.T) {
	format := newTestFormat().WithTermOrder(func(*FieldInfo) func(a, b []byte) bool {
		return util.ReverseLess(util.UTF8SortedAsUnicodeLess)
	})
	f := fruitField()
	f.terms[0], f.terms[1] = f.terms[1], f.terms[0]
	fp := writeAndOpen(t, format, store.NewRAMDirectory(), "_0", f)

	terms := fp.Terms("body")
	assert.True(t, terms.Comparator()([]byte("banana"), []byte("apple")))
	te := terms.Iterator(nil)
	assert.Equal(t, []string{"banana", "apple"}, collectTerms(t, te))

	// "cherry" sorts before every key in reverse order
	status, err := te.SeekCeil([]byte("cherry"))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_NOT_FOUND, status)
	assert.Equal(t, "banana", string(te.Term()))

	// "aardvark" sorts after every key in reverse order
	status, err = te.SeekCeil([]byte("aardvark"))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_END, status)

	status, err = te.SeekCeil([]byte("avocado"))
	require.NoError(t, err)
	assert.Equal(t, SEEK_STATUS_NOT_FOUND, status)
	assert.Equal(t, "apple", string(te.Term()))
}

func randomField(t *testing.T, info *FieldInfo, less func(a, b []byte) bool) testField {
	r := tu.Random(t)
	f := testField{info: info}
	maxDoc := tu.NextInt(r, 1, 200)
	for _, term := range tu.RandomTerms(r, tu.AtLeast(r, 50), less) {
		tt := testTerm{text: string(term)}
		for _, id := range tu.RandomDocIds(r, maxDoc) {
			doc := testDoc{id: id, freq: tu.NextInt(r, 1, 6)}
			if info.HasPositions() {
				pos := 0
				for i := 0; i < doc.freq; i++ {
					pos += tu.NextInt(r, 0, 10)
					doc.positions = append(doc.positions, pos)
				}
				if info.HasPayloads() && tu.Usually(r) {
					doc.payloads = make([][]byte, doc.freq)
					for i := range doc.payloads {
						doc.payloads[i] = tu.RandomPayload(r, 8)
					}
				}
			}
			tt.docs = append(tt.docs, doc)
		}
		f.terms = append(f.terms, tt)
	}
	return f
}

func TestRandomRoundTrip(t *testing.T) {
	less := util.UTF8SortedAsUnicodeLess
	fields := []testField{
		randomField(t, newFieldInfo("docs", 0, INDEX_OPT_DOCS_ONLY, false), less),
		randomField(t, newFieldInfo("freqs", 1, INDEX_OPT_DOCS_AND_FREQS, false), less),
		randomField(t, newFieldInfo("positions", 2, INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS, false), less),
		randomField(t, newFieldInfo("payloads", 3, INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS, true), less),
	}
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", fields...)

	for _, f := range fields {
		terms := fp.Terms(f.info.Name)
		require.NotNil(t, terms, f.info.Name)
		assert.Equal(t, int64(len(f.terms)), terms.Size())

		te := terms.Iterator(nil)
		for _, want := range f.terms {
			term, err := te.Next()
			require.NoError(t, err)
			require.Equal(t, want.text, string(term))
			df, err := te.DocFreq()
			require.NoError(t, err)
			assert.Equal(t, len(want.docs), df)

			if f.info.HasPositions() {
				dpe, err := te.DocsAndPositions(nil, nil)
				require.NoError(t, err)
				require.NotNil(t, dpe)
				for _, wd := range want.docs {
					doc, err := dpe.NextDoc()
					require.NoError(t, err)
					require.Equal(t, wd.id, doc)
					freq, _ := dpe.Freq()
					require.Equal(t, wd.freq, freq)
					for i, wp := range wd.positions {
						pos, err := dpe.NextPosition()
						require.NoError(t, err)
						assert.Equal(t, wp, pos)
						payload, _ := dpe.Payload()
						if wd.payloads == nil || len(wd.payloads[i]) == 0 {
							assert.Nil(t, payload)
						} else {
							assert.True(t, bytes.Equal(wd.payloads[i], payload))
						}
					}
				}
				doc, _ := dpe.NextDoc()
				assert.Equal(t, NO_MORE_DOCS, doc)
				continue
			}

			dpe, err := te.DocsAndPositions(nil, nil)
			require.NoError(t, err)
			assert.Nil(t, dpe)
			de, err := te.Docs(nil, nil)
			require.NoError(t, err)
			for _, wd := range want.docs {
				doc, _ := de.NextDoc()
				require.Equal(t, wd.id, doc)
				freq, _ := de.Freq()
				if f.info.HasFreqs() {
					assert.Equal(t, wd.freq, freq)
				} else {
					assert.Equal(t, 1, freq)
				}
			}
			doc, _ := de.NextDoc()
			assert.Equal(t, NO_MORE_DOCS, doc)
		}
		term, err := te.Next()
		require.NoError(t, err)
		assert.Nil(t, term)
	}
}

func TestSeekIterateCoherence(t *testing.T) {
	less := util.UTF8SortedAsUnicodeLess
	f := randomField(t, newFieldInfo("body", 0, INDEX_OPT_DOCS_AND_FREQS, false), less)
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", f)
	terms := fp.Terms("body")

	all := collectTerms(t, terms.Iterator(nil))
	require.Len(t, all, len(f.terms))
	te := terms.Iterator(nil)
	for i, term := range all {
		status, err := te.SeekCeil([]byte(term))
		require.NoError(t, err)
		require.Equal(t, SEEK_STATUS_FOUND, status, term)
		next, err := te.Next()
		require.NoError(t, err)
		if i+1 < len(all) {
			assert.Equal(t, all[i+1], string(next))
		} else {
			assert.Nil(t, next)
		}
	}
}

func TestLiveDocsExclusion(t *testing.T) {
	r := tu.Random(t)
	less := util.UTF8SortedAsUnicodeLess
	f := randomField(t, newFieldInfo("body", 0, INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS, false), less)
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", f)

	maxDoc := 0
	for _, term := range f.terms {
		for _, doc := range term.docs {
			if doc.id >= maxDoc {
				maxDoc = doc.id + 1
			}
		}
	}
	liveDocs := util.NewLiveDocs(maxDoc)
	deleted := make(map[int]bool)
	for doc := 0; doc < maxDoc; doc++ {
		if r.Intn(4) == 0 {
			liveDocs.Clear(doc)
			deleted[doc] = true
		}
	}
	assert.Equal(t, len(deleted), liveDocs.NumDeleted())

	te := fp.Terms("body").Iterator(nil)
	for _, want := range f.terms {
		_, err := te.Next()
		require.NoError(t, err)
		var expected []int
		for _, doc := range want.docs {
			if !deleted[doc.id] {
				expected = append(expected, doc.id)
			}
		}
		de, err := te.Docs(liveDocs, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, collectDocs(t, de))
		assert.Equal(t, int64(len(want.docs)), de.Cost())

		dpe, err := te.DocsAndPositions(liveDocs, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, collectDocs(t, dpe))
	}

	te = fp.Terms("body").Iterator(nil)
	_, err := te.Next()
	require.NoError(t, err)
	de, err := te.Docs(util.NewMatchNoBits(maxDoc), nil)
	require.NoError(t, err)
	assert.Empty(t, collectDocs(t, de))
	de, err = te.Docs(util.NewMatchAllBits(maxDoc), nil)
	require.NoError(t, err)
	assert.Len(t, collectDocs(t, de), len(f.terms[0].docs))
}

func TestAdvance(t *testing.T) {
	f := testField{
		info: newFieldInfo("body", 0, INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS, true),
		terms: []testTerm{{"x", []testDoc{
			{id: 1, freq: 1, positions: []int{3}},
			{id: 4, freq: 2, positions: []int{1, 7}, payloads: [][]byte{nil, []byte("p")}},
			{id: 9, freq: 1, positions: []int{0}},
		}}},
	}
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", f)
	te := fp.Terms("body").Iterator(nil)
	ok, err := te.SeekExact([]byte("x"))
	require.NoError(t, err)
	require.True(t, ok)

	de, err := te.Docs(nil, nil)
	require.NoError(t, err)
	doc, err := de.Advance(2)
	require.NoError(t, err)
	assert.Equal(t, 4, doc)
	assert.Equal(t, 4, de.DocId())
	doc, _ = de.Advance(9)
	assert.Equal(t, 9, doc)
	doc, _ = de.Advance(10)
	assert.Equal(t, NO_MORE_DOCS, doc)
	assert.Equal(t, int64(3), de.Cost())

	dpe, err := te.DocsAndPositions(nil, nil)
	require.NoError(t, err)
	doc, _ = dpe.Advance(4)
	require.Equal(t, 4, doc)
	pos, _ := dpe.NextPosition()
	assert.Equal(t, 1, pos)
	payload, _ := dpe.Payload()
	assert.Nil(t, payload)
	pos, _ = dpe.NextPosition()
	assert.Equal(t, 7, pos)
	payload, _ = dpe.Payload()
	assert.Equal(t, []byte("p"), payload)
}

func TestIndependentEnums(t *testing.T) {
	fp := writeAndOpen(t, newTestFormat(), store.NewRAMDirectory(), "_0", fruitField())
	terms := fp.Terms("body")
	a, b := terms.Iterator(nil), terms.Iterator(nil)
	ta, _ := a.Next()
	tb, _ := b.Next()
	tb, _ = b.Next()
	assert.Equal(t, "apple", string(ta))
	assert.Equal(t, "banana", string(tb))
	assert.Equal(t, "apple", string(a.Term()))

	got := collectTerms(t, terms.Iterator(nil))
	assert.True(t, sort.StringsAreSorted(got))
}
