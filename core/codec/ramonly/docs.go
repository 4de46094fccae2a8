package ramonly

import (
	"fmt"

	. "github.com/ironsweet/golucene/core/search/model"
	"github.com/ironsweet/golucene/core/util"
)

// Linear scan over the documents of one term, skipping deleted ones.
type docsEnum struct {
	liveDocs util.Bits
	entry    *termEntry
	hasFreqs bool
	upto     int
	doc      int
}

func newDocsEnum(field *fieldEntry, entry *termEntry, liveDocs util.Bits) *docsEnum {
	return &docsEnum{
		liveDocs: liveDocs,
		entry:    entry,
		hasFreqs: field.hasFreqs,
		upto:     -1,
		doc:      -1,
	}
}

func (e *docsEnum) DocId() int {
	return e.doc
}

func (e *docsEnum) NextDoc() (int, error) {
	for e.upto++; e.upto < len(e.entry.docs); e.upto++ {
		if docId := e.entry.docs[e.upto].docId; e.liveDocs == nil || e.liveDocs.At(docId) {
			e.doc = docId
			return docId, nil
		}
	}
	e.upto = len(e.entry.docs)
	e.doc = NO_MORE_DOCS
	return NO_MORE_DOCS, nil
}

func (e *docsEnum) Advance(target int) (int, error) {
	return SlowAdvance(e, target)
}

func (e *docsEnum) Freq() (int, error) {
	if !e.hasFreqs {
		return 1, nil
	}
	return e.entry.docs[e.upto].freq, nil
}

// Total postings of the term, however far the enum has advanced.
func (e *docsEnum) Cost() int64 {
	return int64(len(e.entry.docs))
}

func (e *docsEnum) String() string {
	return fmt.Sprintf("RAMOnlyDocsEnum(term=%v, doc=%v)", util.NewBytesRefFrom(e.entry.term), e.doc)
}

type docsAndPositionsEnum struct {
	*docsEnum
	posUpto int
}

func newDocsAndPositionsEnum(field *fieldEntry, entry *termEntry, liveDocs util.Bits) *docsAndPositionsEnum {
	return &docsAndPositionsEnum{docsEnum: newDocsEnum(field, entry, liveDocs)}
}

func (e *docsAndPositionsEnum) NextDoc() (int, error) {
	e.posUpto = 0
	return e.docsEnum.NextDoc()
}

func (e *docsAndPositionsEnum) Advance(target int) (int, error) {
	return SlowAdvance(e, target)
}

func (e *docsAndPositionsEnum) NextPosition() (int, error) {
	doc := e.entry.docs[e.upto]
	if e.posUpto >= len(doc.positions) {
		return -1, fmt.Errorf("NextPosition called more than freq=%v times on doc %v", doc.freq, doc.docId)
	}
	pos := doc.positions[e.posUpto]
	e.posUpto++
	return pos, nil
}

func (e *docsAndPositionsEnum) StartOffset() (int, error) { return -1, nil }
func (e *docsAndPositionsEnum) EndOffset() (int, error)   { return -1, nil }

// Payload of the position last returned by NextPosition, or nil.
func (e *docsAndPositionsEnum) Payload() ([]byte, error) {
	doc := e.entry.docs[e.upto]
	if doc.payloads == nil || e.posUpto == 0 {
		return nil, nil
	}
	return doc.payloads[e.posUpto-1], nil
}
