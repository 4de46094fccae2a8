package ramonly

import (
	"bytes"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	. "github.com/ironsweet/golucene/core/codec"
	"github.com/ironsweet/golucene/core/codec/spi"
	. "github.com/ironsweet/golucene/core/index/model"
	"github.com/ironsweet/golucene/core/util"
)

type fieldsConsumer struct {
	format *RAMOnlyPostingsFormat
	state  *SegmentWriteState
	store  *SegmentStore
	fields []*termsConsumer
	closed bool
	// result of the first Close, returned again by later calls
	closeErr error
}

func newFieldsConsumer(format *RAMOnlyPostingsFormat, state *SegmentWriteState) *fieldsConsumer {
	return &fieldsConsumer{
		format: format,
		state:  state,
		store:  newSegmentStore(),
	}
}

func (c *fieldsConsumer) AddField(field *FieldInfo) (spi.TermsConsumer, error) {
	if c.closed {
		return nil, NewInvariantError(field.Name, nil, "fields consumer is closed")
	}
	if field.HasOffsets() {
		c.format.metrics.fieldRejected(REJECT_OFFSETS)
		return nil, NewUnsupportedError(fmt.Sprintf("indexing offsets (field %v)", field.Name))
	}
	if c.store.field(field.Name) != nil {
		c.format.metrics.fieldRejected(REJECT_DUPLICATE)
		return nil, NewInvariantError(field.Name, nil, "field was already added")
	}

	entry := newFieldEntry(field, c.format.termOrder(field))
	c.store.fields.Set(field.Name, entry)
	tc := newTermsConsumer(entry, c.format.config.CheckTermOrder)
	c.fields = append(c.fields, tc)
	log.Debugf("Added field %v (%v) to segment %v", field.Name, field.IndexOptions(), c.state.SegmentInfo.Name)
	return tc, nil
}

/*
Registers the finished store and writes the blob naming it. Every
added field must have been finished. Later calls return the outcome
of the first one.
*/
func (c *fieldsConsumer) Close() error {
	if c.closed {
		return c.closeErr
	}
	c.closed = true
	c.closeErr = c.commit()
	return c.closeErr
}

func (c *fieldsConsumer) commit() error {
	for _, tc := range c.fields {
		if !tc.finished {
			return NewInvariantError(tc.field.name(), nil, "field was not finished before close")
		}
	}
	id := c.format.registry.Register(c.store)
	return c.format.writeSegmentId(c.state, id)
}

type termsConsumer struct {
	field          *fieldEntry
	checkTermOrder bool

	current  *postingsConsumer
	lastTerm []byte
	finished bool

	docsSeen         *roaring.Bitmap
	sumDocFreq       int64
	sumTotalTermFreq int64
}

func newTermsConsumer(field *fieldEntry, checkTermOrder bool) *termsConsumer {
	return &termsConsumer{
		field:          field,
		checkTermOrder: checkTermOrder,
		docsSeen:       roaring.New(),
	}
}

func (c *termsConsumer) StartTerm(text []byte) (PostingsConsumer, error) {
	if c.finished {
		return nil, NewInvariantError(c.field.name(), text, "term started after field was finished")
	}
	if err := c.abandonEmptyTerm(); err != nil {
		return nil, err
	}
	if c.checkTermOrder && c.lastTerm != nil && !c.field.less(c.lastTerm, text) {
		return nil, NewInvariantError(c.field.name(), text,
			"terms out of order: %q does not sort after %q", text, c.lastTerm)
	}
	term := util.CopyBytes(text)
	if term == nil {
		term = []byte{}
	}
	c.lastTerm = term
	c.current = newPostingsConsumer(c.field, &termEntry{term: term})
	return c.current, nil
}

// A started term that got no documents is dropped. One with documents
// must be finished first.
func (c *termsConsumer) abandonEmptyTerm() error {
	if c.current == nil {
		return nil
	}
	if len(c.current.entry.docs) > 0 || c.current.doc != nil {
		return NewInvariantError(c.field.name(), c.current.entry.term, "term has documents but was not finished")
	}
	c.current = nil
	return nil
}

func (c *termsConsumer) FinishTerm(text []byte, stats *TermStats) error {
	if c.finished {
		return NewInvariantError(c.field.name(), text, "term finished after field was finished")
	}
	pc := c.current
	if pc == nil {
		return NewInvariantError(c.field.name(), text, "no term was started")
	}
	entry := pc.entry
	if !bytes.Equal(text, entry.term) {
		return NewInvariantError(c.field.name(), text, "finished term differs from started term %q", entry.term)
	}
	if pc.doc != nil {
		return NewInvariantError(c.field.name(), text, "document %v was not finished", pc.doc.docId)
	}
	if stats.DocFreq <= 0 {
		return NewInvariantError(c.field.name(), text, "docFreq must be > 0 (got %v)", stats.DocFreq)
	}
	if stats.DocFreq != len(entry.docs) {
		return NewInvariantError(c.field.name(), text,
			"docFreq=%v but %v documents were added", stats.DocFreq, len(entry.docs))
	}
	if c.field.hasFreqs {
		if stats.TotalTermFreq != entry.totalTermFreq {
			return NewInvariantError(c.field.name(), text,
				"totalTermFreq=%v but frequencies sum to %v", stats.TotalTermFreq, entry.totalTermFreq)
		}
		c.sumTotalTermFreq += entry.totalTermFreq
	} else {
		entry.totalTermFreq = -1
	}

	for _, doc := range entry.docs {
		c.docsSeen.Add(uint32(doc.docId))
	}
	c.sumDocFreq += int64(stats.DocFreq)
	c.field.terms.Set(entry.key(), entry)
	c.current = nil
	return nil
}

func (c *termsConsumer) Finish(sumTotalTermFreq, sumDocFreq int64, docCount int) error {
	name := c.field.name()
	if c.finished {
		return NewInvariantError(name, nil, "field was already finished")
	}
	if err := c.abandonEmptyTerm(); err != nil {
		return err
	}
	if sumDocFreq != c.sumDocFreq {
		return NewInvariantError(name, nil, "sumDocFreq=%v but terms sum to %v", sumDocFreq, c.sumDocFreq)
	}
	if seen := int(c.docsSeen.GetCardinality()); docCount != seen {
		return NewInvariantError(name, nil, "docCount=%v but %v distinct documents were added", docCount, seen)
	}
	if c.field.hasFreqs {
		if sumTotalTermFreq != c.sumTotalTermFreq {
			return NewInvariantError(name, nil,
				"sumTotalTermFreq=%v but terms sum to %v", sumTotalTermFreq, c.sumTotalTermFreq)
		}
		c.field.sumTotalTermFreq = sumTotalTermFreq
	} else {
		c.field.sumTotalTermFreq = -1
	}
	c.field.sumDocFreq = sumDocFreq
	c.field.docCount = docCount
	c.finished = true
	log.Debugf("Finished field %v: %v terms, sumDocFreq=%v, docCount=%v",
		name, c.field.terms.Len(), sumDocFreq, docCount)
	return nil
}

func (c *termsConsumer) Comparator() func(a, b []byte) bool {
	return c.field.less
}

type postingsConsumer struct {
	field     *fieldEntry
	entry     *termEntry
	doc       *docEntry // open document, nil between FinishDoc and StartDoc
	posUpto   int
	lastDocId int
}

func newPostingsConsumer(field *fieldEntry, entry *termEntry) *postingsConsumer {
	return &postingsConsumer{field: field, entry: entry, lastDocId: -1}
}

func (c *postingsConsumer) StartDoc(docId, freq int) error {
	if c.doc != nil {
		return NewInvariantError(c.field.name(), c.entry.term, "document %v was not finished", c.doc.docId)
	}
	if docId < 0 || docId <= c.lastDocId {
		return NewInvariantError(c.field.name(), c.entry.term,
			"docs out of order: %v does not follow %v", docId, c.lastDocId)
	}
	doc := &docEntry{docId: docId, freq: freq}
	if c.field.hasFreqs {
		if freq <= 0 {
			return NewInvariantError(c.field.name(), c.entry.term, "freq must be > 0 (got %v) for doc %v", freq, docId)
		}
		if c.field.hasPositions {
			doc.positions = make([]int, freq)
		}
		c.entry.totalTermFreq += int64(freq)
	} else {
		doc.freq = 1
	}
	c.doc = doc
	c.posUpto = 0
	return nil
}

func (c *postingsConsumer) AddPosition(position int, payload []byte, startOffset, endOffset int) error {
	if startOffset != -1 || endOffset != -1 {
		return NewUnsupportedError(fmt.Sprintf("offsets (field %v, got %v-%v)",
			c.field.name(), startOffset, endOffset))
	}
	doc := c.doc
	if doc == nil {
		return NewInvariantError(c.field.name(), c.entry.term, "position added outside of a document")
	}
	if !c.field.hasPositions {
		return NewInvariantError(c.field.name(), c.entry.term, "field does not index positions")
	}
	if c.posUpto >= len(doc.positions) {
		return NewInvariantError(c.field.name(), c.entry.term,
			"more than freq=%v positions added to doc %v", doc.freq, doc.docId)
	}
	doc.positions[c.posUpto] = position
	if len(payload) > 0 {
		if doc.payloads == nil {
			doc.payloads = make([][]byte, doc.freq)
		}
		doc.payloads[c.posUpto] = util.CopyBytes(payload)
	}
	c.posUpto++
	return nil
}

func (c *postingsConsumer) FinishDoc() error {
	doc := c.doc
	if doc == nil {
		return NewInvariantError(c.field.name(), c.entry.term, "no document was started")
	}
	if c.field.hasPositions && c.posUpto != len(doc.positions) {
		return NewInvariantError(c.field.name(), c.entry.term,
			"doc %v has freq=%v but only %v positions were added", doc.docId, doc.freq, c.posUpto)
	}
	c.entry.docs = append(c.entry.docs, doc)
	c.lastDocId = doc.docId
	c.doc = nil
	return nil
}
