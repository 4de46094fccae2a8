package model

import (
	"math"
)

// When returned by NextDoc(), Advance() and DocId() it means there are
// no more docs in the iterator.
const NO_MORE_DOCS = math.MaxInt32

/*
This abstract class defines methods to iterate over a set of
non-decreasing doc ids. Note that this class assumes it iterates on
doc Ids, and therefore NO_MORE_DOCS is set to math.MaxInt32 in order
to be used as a sentinel object.
*/
type DocIdSetIterator interface {
	// Returns -1 if NextDoc() or Advance() were not called yet,
	// NO_MORE_DOCS if the iterator has exhausted, otherwise the doc
	// it is currently on.
	DocId() int
	// Advances to the next document in the set and returns the doc it
	// is currently on, or NO_MORE_DOCS if there are no more docs in the
	// set.
	//
	// NOTE: after the iterator has exhausted you should not call this
	// method, as it may result in unpredicted behavior.
	NextDoc() (doc int, err error)
	// Advances to the first beyond the current whose document number
	// is greater than or equal to target, and returns the document
	// number itself. Exhausts the iterator and returns NO_MORE_DOCS if
	// target is greater than the highest document number in the set.
	//
	// The behavior of this method is undefined when called with
	// target <= current, or after the iterator has exhausted.
	//
	// When target > current it behaves as if written:
	//
	// 	func Advance(target int) int {
	// 		var doc int
	// 		for doc, _ = NextDoc(); doc < target; doc, _ = NextDoc() {}
	// 		return doc
	// 	}
	Advance(target int) (doc int, err error)
	// Returns the estimated cost of this iterator.
	//
	// This is generally an upper bound of the number of documents this
	// iterator might match, but may be a rough heuristic, hardcoded
	// value, or otherwise completely inaccurate.
	Cost() int64
}

/*
Advance() implemented as a linear scan over NextDoc(), for iterators
that have nothing better.
*/
func SlowAdvance(it DocIdSetIterator, target int) (doc int, err error) {
	for {
		if doc, err = it.NextDoc(); err != nil || doc >= target {
			return
		}
	}
}
