package codec

import (
	"errors"
	"fmt"
)

var (
	// A codec cannot provide a requested capability.
	ErrUnsupported = errors.New("operation not supported")
	// A persisted artifact failed its integrity checks.
	ErrCorruptIndex = errors.New("corrupt index")
	// The write path was driven out of protocol.
	ErrCorruptSegment = errors.New("corrupt segment")
)

type UnsupportedError struct {
	Op string
}

func NewUnsupportedError(op string) *UnsupportedError {
	return &UnsupportedError{op}
}

func (err *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: %v", err.Op, ErrUnsupported)
}

func (err *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

/*
This error is returned when Lucene detects an inconsistency in the
index.
*/
type CorruptIndexError struct {
	Resource string
	Reason   string
}

func NewCorruptIndexError(resource interface{}, format string, args ...interface{}) *CorruptIndexError {
	return &CorruptIndexError{fmt.Sprintf("%v", resource), fmt.Sprintf(format, args...)}
}

func (err *CorruptIndexError) Error() string {
	return fmt.Sprintf("%v (resource: %v)", err.Reason, err.Resource)
}

func (err *CorruptIndexError) Unwrap() error {
	return ErrCorruptIndex
}

/*
This error is returned when Lucene detects an index that is too old or
too new for this codec.
*/
type IndexFormatError struct {
	Resource string
	Version  int32
	Min      int32
	Max      int32
}

func (err *IndexFormatError) TooOld() bool {
	return err.Version < err.Min
}

func (err *IndexFormatError) Error() string {
	return fmt.Sprintf(
		"Format version is not supported (resource: %v): %v (needs to be between %v and %v)",
		err.Resource, err.Version, err.Min, err.Max)
}

func (err *IndexFormatError) Unwrap() error {
	return ErrCorruptIndex
}

func NewIndexFormatTooNewError(in interface{}, version, minVersion, maxVersion int32) *IndexFormatError {
	return &IndexFormatError{fmt.Sprintf("%v", in), version, minVersion, maxVersion}
}

func NewIndexFormatTooOldError(in interface{}, version, minVersion, maxVersion int32) *IndexFormatError {
	return &IndexFormatError{fmt.Sprintf("%v", in), version, minVersion, maxVersion}
}

/* Returned when postings are fed to a consumer out of protocol. */
type InvariantError struct {
	Field  string
	Term   string
	Reason string
}

func NewInvariantError(field string, term []byte, format string, args ...interface{}) *InvariantError {
	var t string
	if term != nil {
		t = string(term)
	}
	return &InvariantError{field, t, fmt.Sprintf(format, args...)}
}

func (err *InvariantError) Error() string {
	if err.Term != "" {
		return fmt.Sprintf("%v: field=%v term=%q: %v", ErrCorruptSegment, err.Field, err.Term, err.Reason)
	}
	return fmt.Sprintf("%v: field=%v: %v", ErrCorruptSegment, err.Field, err.Reason)
}

func (err *InvariantError) Unwrap() error {
	return ErrCorruptSegment
}
