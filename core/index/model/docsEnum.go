package model

import (
	. "github.com/ironsweet/golucene/core/search/model"
)

const (
	// Don't need freqs
	DOCS_ENUM_FLAG_NONE = 0
	// Caller requires freqs
	DOCS_ENUM_FLAG_FREQS = 1
)

const (
	// Caller requires offsets
	DOCS_POSITIONS_ENUM_FLAG_OFF_SETS = 1
	// Caller requires payloads
	DOCS_POSITIONS_ENUM_FLAG_PAYLOADS = 2
)

/*
Iterates through the documents and term freqs. NOTE: you must first
call NextDoc() before using any of the per-doc methods.
*/
type DocsEnum interface {
	DocIdSetIterator
	/*
		Returns term frequency in the current document, or 1 if the
		field was indexed with INDEX_OPT_DOCS_ONLY. Do not call this
		before NextDoc() is first called, nor after NextDoc() returns
		NO_MORE_DOCS.
	*/
	Freq() (n int, err error)
}

/* Also iterates through positions. */
type DocsAndPositionsEnum interface {
	DocsEnum
	// Returns the next position. You should only call this up to
	// Freq() times else the behavior is not defined.
	NextPosition() (pos int, err error)
	// Returns start offset for the current position, or -1 if offsets
	// were not indexed.
	StartOffset() (offset int, err error)
	// Returns end offset for the current position, or -1 if offsets
	// were not indexed.
	EndOffset() (offset int, err error)
	// Returns the payload at this position, or nil if no payload was
	// indexed. Only valid after NextPosition() has been called.
	Payload() (payload []byte, err error)
}
