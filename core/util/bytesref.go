package util

import (
	"unicode/utf8"
)

/* An empty byte slice for convenience */
var EMPTY_BYTES = []byte{}

/*
Represents []byte, as a slice (offset + length) into an existing
[]byte, similar to Go's byte slice.

Important note: Unless otherwise noted, GoLucene uses []byte directly
to represent terms that are encoded as UTF8 bytes in the index. It
uses this class in cases when caller needs to hold a reference, while
allowing underlying []byte to change.
*/
type BytesRef struct {
	// The contents of the BytesRef.
	Bytes  []byte
	Offset int
	Length int
}

func NewEmptyBytesRef() *BytesRef {
	return NewBytesRefFrom(EMPTY_BYTES)
}

func NewBytesRef(bytes []byte, offset, length int) *BytesRef {
	return &BytesRef{
		Bytes:  bytes,
		Offset: offset,
		Length: length,
	}
}

func NewBytesRefFrom(bytes []byte) *BytesRef {
	return NewBytesRef(bytes, 0, len(bytes))
}

/* Creates a BytesRef holding the UTF-8 encoding of text. */
func NewBytesRefFromString(text string) *BytesRef {
	return NewBytesRefFrom([]byte(text))
}

/*
Creates a new BytesRef that points to a copy of the bytes from
other.

The returned BytesRef will have a length of other.length and an
offset of zero.
*/
func DeepCopyOf(other *BytesRef) *BytesRef {
	copy := NewEmptyBytesRef()
	copy.copyBytes(other)
	return copy
}

func (br *BytesRef) ToBytes() []byte {
	return br.Bytes[br.Offset : br.Offset+br.Length]
}

/* Interprets stored bytes as UTF8 bytes, returning the resulting string. */
func (br *BytesRef) Utf8ToString() string {
	return string(br.ToBytes())
}

/* Returns true if the referenced bytes are valid UTF-8. */
func (br *BytesRef) IsValidUTF8() bool {
	return utf8.Valid(br.ToBytes())
}

func (br *BytesRef) String() string {
	return br.Utf8ToString()
}

/*
Copies the bytes from the given BytesRef

NOTE: if this would exceed the slice size, this method creates a new
reference array.
*/
func (a *BytesRef) copyBytes(other *BytesRef) {
	if len(a.Bytes)-a.Offset < other.Length {
		a.Bytes = make([]byte, other.Length)
		a.Offset = 0
	}
	copy(a.Bytes[a.Offset:], other.Bytes[other.Offset:other.Offset+other.Length])
	a.Length = other.Length
}

/* Returns a private copy of b; nil stays nil. */
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	ans := make([]byte, len(b))
	copy(ans, b)
	return ans
}

/*
Unsigned byte order, which for UTF-8 encoded text is the same as
Unicode code point order.
*/
func UTF8SortedAsUnicodeLess(aBytes, bBytes []byte) bool {
	aLen, bLen := len(aBytes), len(bBytes)

	for i, v := range aBytes {
		if i >= bLen {
			break
		}
		if v < bBytes[i] {
			return true
		} else if v > bBytes[i] {
			return false
		}
	}

	// One is a prefix of the other, or, they are equal:
	return aLen < bLen
}

/* Inverts a less function. */
func ReverseLess(less func(a, b []byte) bool) func(a, b []byte) bool {
	return func(a, b []byte) bool {
		return less(b, a)
	}
}

/* Equality as seen by a less function. */
func EqualsUnder(less func(a, b []byte) bool, a, b []byte) bool {
	return !less(a, b) && !less(b, a)
}

type BytesRefs [][]byte

func (br BytesRefs) Len() int {
	return len(br)
}

func (br BytesRefs) Less(i, j int) bool {
	aBytes, bBytes := br[i], br[j]
	return UTF8SortedAsUnicodeLess(aBytes, bBytes)
}

func (br BytesRefs) Swap(i, j int) {
	br[i], br[j] = br[j], br[i]
}
