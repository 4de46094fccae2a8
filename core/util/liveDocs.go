package util

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

/*
MutableBits backed by a roaring bitmap holding the live (not deleted)
document IDs of a segment. A fresh instance marks every document in
[0, maxDoc) as live; deleting a document clears its bit.

Lookups are safe for concurrent readers once deletions stop. Clear()
must not run concurrently with readers.
*/
type LiveDocs struct {
	rb     *roaring.Bitmap
	maxDoc int
}

func NewLiveDocs(maxDoc int) *LiveDocs {
	assert2(maxDoc >= 0, "maxDoc must be >= 0 (got %v)", maxDoc)
	rb := roaring.New()
	rb.AddRange(0, uint64(maxDoc))
	return &LiveDocs{rb: rb, maxDoc: maxDoc}
}

/* Builds live docs for maxDoc documents with the given docs deleted. */
func NewLiveDocsWithout(maxDoc int, deleted ...int) *LiveDocs {
	ld := NewLiveDocs(maxDoc)
	for _, doc := range deleted {
		ld.Clear(doc)
	}
	return ld
}

func (ld *LiveDocs) At(index int) bool {
	if index < 0 || index >= ld.maxDoc {
		return false
	}
	return ld.rb.Contains(uint32(index))
}

func (ld *LiveDocs) Length() int {
	return ld.maxDoc
}

func (ld *LiveDocs) Clear(index int) {
	assert2(index >= 0 && index < ld.maxDoc,
		"doc %v out of bounds (maxDoc=%v)", index, ld.maxDoc)
	ld.rb.Remove(uint32(index))
}

/* Returns how many documents have been cleared. */
func (ld *LiveDocs) NumDeleted() int {
	return ld.maxDoc - int(ld.rb.GetCardinality())
}

func (ld *LiveDocs) String() string {
	return fmt.Sprintf("LiveDocs(maxDoc=%v, deleted=%v)", ld.maxDoc, ld.NumDeleted())
}
