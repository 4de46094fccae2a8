package model

import (
	"errors"

	"github.com/ironsweet/golucene/core/util"
)

/*
Iterator to seek, or step through terms to obtain frequency
information, or for the current term.

Term enumerations are always ordered by Comparator(). Each term in the
enumeration is greater than the one before it.

The TermsEnum is unpositioned when you first obtain it and you must
first successfully call Next() or one of the seek methods.
*/
type TermsEnum interface {
	// Increments the iteration to the next term and returns it, or
	// nil when the end is reached.
	Next() (buf []byte, err error)
	// Returns the ordering terms are returned in.
	Comparator() func(a, b []byte) bool

	/* Attempts to seek to the exact term, returning true if the term is
	found. If this returns false, the enum is left wherever SeekCeil
	put it, so callers must not rely on its position. */
	SeekExact(text []byte) (ok bool, err error)
	/* Seeks to the specified term, if it exists, or to the next
	(ceiling) term. Returns SeekStatus to indicate whether exact term
	was found, a different term was found, or EOF was hit. The target
	term may be before or after the current term. If this returns
	SEEK_STATUS_END, then enum is unpositioned. */
	SeekCeil(text []byte) (status SeekStatus, err error)
	/* Seeks to the specified term by ordinal (position) as previously
	returned by Ord(). Optional. */
	SeekExactByPosition(ord int64) error
	/* Returns current term. Do not call this when enum is
	unpositioned. */
	Term() []byte
	/* Returns ordinal position for current term. Optional. */
	Ord() (ord int64, err error)
	/* Returns the number of documents containing the current term. */
	DocFreq() (df int, err error)
	/* Returns the total number of occurrences of this term across all
	documents, or -1 if the codec doesn't support this measure. Deleted
	documents are counted. */
	TotalTermFreq() (tf int64, err error)
	/* Get DocsEnum for the current term. Do not call this when the enum
	is unpositioned. */
	Docs(liveDocs util.Bits, reuse DocsEnum) (de DocsEnum, err error)
	/* Get DocsEnum for the current term, with control over whether
	freqs are required. */
	DocsByFlags(liveDocs util.Bits, reuse DocsEnum, flags int) (de DocsEnum, err error)
	/* Get DocsAndPositionsEnum for the current term. Returns nil if
	positions were not indexed. */
	DocsAndPositions(liveDocs util.Bits, reuse DocsAndPositionsEnum) (dpe DocsAndPositionsEnum, err error)
	/* Get DocsAndPositionsEnum for the current term, with control over
	whether offsets and payloads are required. Returns nil if positions
	were not indexed. */
	DocsAndPositionsByFlags(liveDocs util.Bits, reuse DocsAndPositionsEnum, flags int) (dpe DocsAndPositionsEnum, err error)
}

type SeekStatus int

const (
	SEEK_STATUS_END       = SeekStatus(1)
	SEEK_STATUS_FOUND     = SeekStatus(2)
	SEEK_STATUS_NOT_FOUND = SeekStatus(3)
)

func (s SeekStatus) String() string {
	switch s {
	case SEEK_STATUS_END:
		return "END"
	case SEEK_STATUS_FOUND:
		return "FOUND"
	case SEEK_STATUS_NOT_FOUND:
		return "NOT_FOUND"
	}
	return "UNKNOWN"
}

var ErrUnpositioned = errors.New("terms enum is unpositioned")

/*
Supplies the defaults of TermsEnum on top of the handful of methods an
implementation must provide.
*/
type TermsEnumImpl struct {
	TermsEnum
}

func NewTermsEnumImpl(self TermsEnum) *TermsEnumImpl {
	return &TermsEnumImpl{self}
}

func (e *TermsEnumImpl) SeekExact(text []byte) (ok bool, err error) {
	status, err := e.SeekCeil(text)
	return err == nil && status == SEEK_STATUS_FOUND, err
}

func (e *TermsEnumImpl) Docs(liveDocs util.Bits, reuse DocsEnum) (DocsEnum, error) {
	return e.DocsByFlags(liveDocs, reuse, DOCS_ENUM_FLAG_FREQS)
}

func (e *TermsEnumImpl) DocsAndPositions(liveDocs util.Bits, reuse DocsAndPositionsEnum) (DocsAndPositionsEnum, error) {
	return e.DocsAndPositionsByFlags(liveDocs, reuse,
		DOCS_POSITIONS_ENUM_FLAG_OFF_SETS|DOCS_POSITIONS_ENUM_FLAG_PAYLOADS)
}

type emptyTermsEnum struct {
	*TermsEnumImpl
}

/* An empty TermsEnum for quickly returning an empty instance. */
var EMPTY_TERMS_ENUM = newEmptyTermsEnum()

func newEmptyTermsEnum() TermsEnum {
	ans := new(emptyTermsEnum)
	ans.TermsEnumImpl = NewTermsEnumImpl(ans)
	return ans
}

func (e *emptyTermsEnum) Next() ([]byte, error)                    { return nil, nil }
func (e *emptyTermsEnum) Comparator() func(a, b []byte) bool       { return nil }
func (e *emptyTermsEnum) SeekCeil(text []byte) (SeekStatus, error) { return SEEK_STATUS_END, nil }
func (e *emptyTermsEnum) SeekExactByPosition(ord int64) error      { return ErrUnpositioned }
func (e *emptyTermsEnum) Term() []byte                             { panic("this method should never be called") }
func (e *emptyTermsEnum) Ord() (int64, error)                      { return 0, ErrUnpositioned }
func (e *emptyTermsEnum) DocFreq() (int, error)                    { return 0, ErrUnpositioned }
func (e *emptyTermsEnum) TotalTermFreq() (int64, error)            { return 0, ErrUnpositioned }

func (e *emptyTermsEnum) DocsByFlags(liveDocs util.Bits, reuse DocsEnum, flags int) (DocsEnum, error) {
	return nil, ErrUnpositioned
}

func (e *emptyTermsEnum) DocsAndPositionsByFlags(liveDocs util.Bits,
	reuse DocsAndPositionsEnum, flags int) (DocsAndPositionsEnum, error) {
	return nil, ErrUnpositioned
}
