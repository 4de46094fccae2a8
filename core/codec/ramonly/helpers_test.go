package ramonly

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/ironsweet/golucene/core/codec"
	"github.com/ironsweet/golucene/core/codec/spi"
	. "github.com/ironsweet/golucene/core/index/model"
	. "github.com/ironsweet/golucene/core/search/model"
	"github.com/ironsweet/golucene/core/store"
)

type testDoc struct {
	id        int
	freq      int
	positions []int
	payloads  [][]byte
}

type testTerm struct {
	text string
	docs []testDoc
}

type testField struct {
	info  *FieldInfo
	terms []testTerm
}

func newTestFormat() *RAMOnlyPostingsFormat {
	return NewPostingsFormat(DefaultConfig(), NewRegistry(nil), NewMetrics("test"))
}

func newFieldInfo(name string, number int32, opts IndexOptions, payloads bool) *FieldInfo {
	return NewFieldInfo(name, true, number, payloads, opts, nil)
}

func writeState(dir store.Directory, segment string, infos ...*FieldInfo) *SegmentWriteState {
	si := NewSegmentInfo(dir, segment, 10000, nil)
	return NewSegmentWriteState(dir, si, NewFieldInfos(infos...), store.IO_CONTEXT_DEFAULT)
}

func readState(dir store.Directory, segment string) SegmentReadState {
	si := NewSegmentInfo(dir, segment, 10000, nil)
	return NewSegmentReadState(dir, si, NewFieldInfos(), store.IO_CONTEXT_READ)
}

// Drives a terms consumer through one field, computing the statistics
// the way an indexing chain would.
func feedField(t *testing.T, tc spi.TermsConsumer, f testField) {
	hasFreqs := f.info.HasFreqs()
	var sumTotalTermFreq, sumDocFreq int64
	docsSeen := make(map[int]bool)
	for _, term := range f.terms {
		pc, err := tc.StartTerm([]byte(term.text))
		require.NoError(t, err)
		var totalTermFreq int64
		for _, doc := range term.docs {
			freq := doc.freq
			if !hasFreqs {
				freq = -1
			}
			require.NoError(t, pc.StartDoc(doc.id, freq))
			for i, pos := range doc.positions {
				var payload []byte
				if doc.payloads != nil {
					payload = doc.payloads[i]
				}
				require.NoError(t, pc.AddPosition(pos, payload, -1, -1))
			}
			require.NoError(t, pc.FinishDoc())
			totalTermFreq += int64(doc.freq)
			docsSeen[doc.id] = true
		}
		if !hasFreqs {
			totalTermFreq = -1
		}
		require.NoError(t, tc.FinishTerm([]byte(term.text), NewTermStats(len(term.docs), totalTermFreq)))
		sumDocFreq += int64(len(term.docs))
		if hasFreqs {
			sumTotalTermFreq += totalTermFreq
		}
	}
	if !hasFreqs {
		sumTotalTermFreq = -1
	}
	require.NoError(t, tc.Finish(sumTotalTermFreq, sumDocFreq, len(docsSeen)))
}

// Writes the fields as segment and opens it again.
func writeAndOpen(t *testing.T, format *RAMOnlyPostingsFormat, dir store.Directory,
	segment string, fields ...testField) spi.FieldsProducer {
	infos := make([]*FieldInfo, len(fields))
	for i, f := range fields {
		infos[i] = f.info
	}
	fc, err := format.FieldsConsumer(writeState(dir, segment, infos...))
	require.NoError(t, err)
	for _, f := range fields {
		tc, err := fc.AddField(f.info)
		require.NoError(t, err)
		feedField(t, tc, f)
	}
	require.NoError(t, fc.Close())

	fp, err := format.FieldsProducer(readState(dir, segment))
	require.NoError(t, err)
	return fp
}

func collectTerms(t *testing.T, te TermsEnum) []string {
	var ans []string
	for {
		term, err := te.Next()
		require.NoError(t, err)
		if term == nil {
			return ans
		}
		ans = append(ans, string(term))
	}
}

func collectDocs(t *testing.T, de DocsEnum) []int {
	var ans []int
	for {
		doc, err := de.NextDoc()
		require.NoError(t, err)
		if doc == NO_MORE_DOCS {
			return ans
		}
		ans = append(ans, doc)
	}
}

// The fruit segment: apple -> doc 1 at [0, 5], banana -> doc 2 at [2].
func fruitField() testField {
	return testField{
		info: newFieldInfo("body", 0, INDEX_OPT_DOCS_AND_FREQS_AND_POSITIONS, false),
		terms: []testTerm{
			{"apple", []testDoc{{id: 1, freq: 2, positions: []int{0, 5}}}},
			{"banana", []testDoc{{id: 2, freq: 1, positions: []int{2}}}},
		},
	}
}
