package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveDocsStartAllLive(t *testing.T) {
	ld := NewLiveDocs(10)
	assert.Equal(t, 10, ld.Length())
	for i := 0; i < 10; i++ {
		assert.True(t, ld.At(i), "doc %v should be live", i)
	}
	assert.Equal(t, 0, ld.NumDeleted())
}

func TestLiveDocsClear(t *testing.T) {
	ld := NewLiveDocsWithout(5, 1, 3)
	assert.True(t, ld.At(0))
	assert.False(t, ld.At(1))
	assert.True(t, ld.At(2))
	assert.False(t, ld.At(3))
	assert.True(t, ld.At(4))
	assert.Equal(t, 2, ld.NumDeleted())

	// clearing twice is harmless
	ld.Clear(1)
	assert.Equal(t, 2, ld.NumDeleted())
}

func TestLiveDocsOutOfRange(t *testing.T) {
	ld := NewLiveDocs(3)
	assert.False(t, ld.At(-1))
	assert.False(t, ld.At(3))
	assert.Panics(t, func() { ld.Clear(3) })
}

func TestMatchBits(t *testing.T) {
	assert.True(t, NewMatchAllBits(4).At(2))
	assert.Equal(t, 4, NewMatchAllBits(4).Length())
	assert.False(t, NewMatchNoBits(4).At(2))
}

var _ MutableBits = (*LiveDocs)(nil)
var _ Bits = MatchAllBits(0)
var _ Bits = MatchNoBits(0)
