package util

// Interface for Bitset-like structures.
type Bits interface {
	// Returns the value of the bit with the specified index. The index
	// should be non-negative and less than Length(); passing negative
	// or out of bounds values is undefined.
	At(index int) bool

	// Returns the number of bits in the set
	Length() int
}

/* Extension of Bits for live documents. */
type MutableBits interface {
	Bits
	// Sets the bit specified by index to false.
	Clear(index int)
}

/* Bits impl of the specified length with all bits set. */
type MatchAllBits int

func NewMatchAllBits(length int) MatchAllBits { return MatchAllBits(length) }

func (b MatchAllBits) At(index int) bool { return true }
func (b MatchAllBits) Length() int       { return int(b) }

/* Bits impl of the specified length with no bits set. */
type MatchNoBits int

func NewMatchNoBits(length int) MatchNoBits { return MatchNoBits(length) }

func (b MatchNoBits) At(index int) bool { return false }
func (b MatchNoBits) Length() int       { return int(b) }
