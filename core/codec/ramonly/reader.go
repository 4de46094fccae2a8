package ramonly

import (
	"fmt"

	"github.com/ryszard/goskiplist/skiplist"

	. "github.com/ironsweet/golucene/core/codec"
	. "github.com/ironsweet/golucene/core/index/model"
	"github.com/ironsweet/golucene/core/util"
)

type fieldsProducer struct {
	store   *SegmentStore
	segment string
}

func newFieldsProducer(store *SegmentStore, segment string) *fieldsProducer {
	return &fieldsProducer{store, segment}
}

func (p *fieldsProducer) Names() []string {
	return p.store.FieldNames()
}

func (p *fieldsProducer) Terms(field string) Terms {
	if entry := p.store.field(field); entry != nil {
		return &ramTerms{entry}
	}
	return nil
}

func (p *fieldsProducer) Size() int {
	return p.store.Size()
}

func (p *fieldsProducer) Close() error {
	return nil
}

func (p *fieldsProducer) String() string {
	return fmt.Sprintf("RAMOnlyFieldsProducer(segment=%v, fields=%v)", p.segment, p.store.Size())
}

type ramTerms struct {
	field *fieldEntry
}

func (t *ramTerms) Iterator(reuse TermsEnum) TermsEnum {
	return newTermsEnum(t.field)
}

func (t *ramTerms) Comparator() func(a, b []byte) bool { return t.field.less }
func (t *ramTerms) Size() int64                        { return int64(t.field.terms.Len()) }
func (t *ramTerms) SumTotalTermFreq() int64            { return t.field.sumTotalTermFreq }
func (t *ramTerms) SumDocFreq() int64                  { return t.field.sumDocFreq }
func (t *ramTerms) DocCount() int                      { return t.field.docCount }
func (t *ramTerms) HasFreqs() bool                     { return t.field.hasFreqs }
func (t *ramTerms) HasOffsets() bool                   { return t.field.hasOffsets }
func (t *ramTerms) HasPositions() bool                 { return t.field.hasPositions }
func (t *ramTerms) HasPayloads() bool                  { return t.field.hasPayloads }

type enumState int

const (
	STATE_UNPOSITIONED = enumState(iota)
	STATE_POSITIONED
	STATE_EXHAUSTED
)

/*
Walks the term dictionary of one field. The cursor is re-derived from
the current term on every step, so it never outlives a single call.
*/
type termsEnum struct {
	*TermsEnumImpl
	field   *fieldEntry
	state   enumState
	current *termEntry
}

func newTermsEnum(field *fieldEntry) *termsEnum {
	ans := &termsEnum{field: field}
	ans.TermsEnumImpl = NewTermsEnumImpl(ans)
	return ans
}

func (e *termsEnum) Comparator() func(a, b []byte) bool {
	return e.field.less
}

func (e *termsEnum) Next() (buf []byte, err error) {
	var it skiplist.Iterator
	switch e.state {
	case STATE_EXHAUSTED:
		return nil, nil
	case STATE_UNPOSITIONED:
		it = e.field.terms.Iterator()
	case STATE_POSITIONED:
		it = e.field.terms.Seek(e.current.key())
	}
	if it == nil || !it.Next() {
		e.exhaust()
		return nil, nil
	}
	e.position(it.Value().(*termEntry))
	return e.current.term, nil
}

func (e *termsEnum) SeekCeil(text []byte) (SeekStatus, error) {
	it := e.field.terms.Seek(string(text))
	if it == nil {
		e.exhaust()
		return SEEK_STATUS_END, nil
	}
	e.position(it.Value().(*termEntry))
	if util.EqualsUnder(e.field.less, e.current.term, text) {
		return SEEK_STATUS_FOUND, nil
	}
	return SEEK_STATUS_NOT_FOUND, nil
}

func (e *termsEnum) position(entry *termEntry) {
	e.current = entry
	e.state = STATE_POSITIONED
}

func (e *termsEnum) exhaust() {
	e.current = nil
	e.state = STATE_EXHAUSTED
}

func (e *termsEnum) SeekExactByPosition(ord int64) error {
	return NewUnsupportedError("seek by ord")
}

func (e *termsEnum) Ord() (int64, error) {
	return 0, NewUnsupportedError("ord")
}

// Returns nil unless the enum is positioned.
func (e *termsEnum) Term() []byte {
	if e.current == nil {
		return nil
	}
	return e.current.term
}

func (e *termsEnum) DocFreq() (int, error) {
	if e.current == nil {
		return 0, ErrUnpositioned
	}
	return len(e.current.docs), nil
}

func (e *termsEnum) TotalTermFreq() (int64, error) {
	if e.current == nil {
		return 0, ErrUnpositioned
	}
	return e.current.totalTermFreq, nil
}

func (e *termsEnum) DocsByFlags(liveDocs util.Bits, reuse DocsEnum, flags int) (DocsEnum, error) {
	if e.current == nil {
		return nil, ErrUnpositioned
	}
	return newDocsEnum(e.field, e.current, liveDocs), nil
}

func (e *termsEnum) DocsAndPositionsByFlags(liveDocs util.Bits,
	reuse DocsAndPositionsEnum, flags int) (DocsAndPositionsEnum, error) {
	if e.current == nil {
		return nil, ErrUnpositioned
	}
	if !e.field.hasPositions {
		return nil, nil
	}
	return newDocsAndPositionsEnum(e.field, e.current, liveDocs), nil
}

func (e *termsEnum) String() string {
	return fmt.Sprintf("RAMOnlyTermsEnum(field=%v, term=%v)", e.field.name(), util.NewBytesRefFrom(e.Term()))
}
