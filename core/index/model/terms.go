package model

/*
Access to the terms in a specific field.
*/
type Terms interface {
	// Returns an iterator that will step through all terms. This
	// method will not return nil. The reuse argument may be ignored.
	Iterator(reuse TermsEnum) TermsEnum
	// Returns the ordering used to sort terms of this field.
	Comparator() func(a, b []byte) bool
	// Returns the number of terms for this field, or -1 if this
	// measure isn't stored by the codec.
	Size() int64
	// Returns the sum of TotalTermFreq for all terms in this field, or
	// -1 if this measure isn't stored by the codec or frequencies are
	// omitted.
	SumTotalTermFreq() int64
	// Returns the sum of DocFreq for all terms in this field.
	SumDocFreq() int64
	// Returns the number of documents that have at least one term for
	// this field.
	DocCount() int
	HasFreqs() bool
	HasOffsets() bool
	HasPositions() bool
	HasPayloads() bool
}
