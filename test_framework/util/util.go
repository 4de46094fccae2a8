package util

import (
	"math/rand"
	"sort"
)

// util/TestUtil.java

// Returns a random int in [start, end).
func NextInt(r *rand.Rand, start, end int) int {
	return r.Intn(end-start) + start
}

// Returns random string, including full unicode range.
func RandomUnicodeString(r *rand.Rand) string {
	return RandomUnicodeStringLength(r, 20)
}

// Returns a random string up to a certain length.
func RandomUnicodeStringLength(r *rand.Rand, maxLength int) string {
	end := NextInt(r, 0, maxLength)
	if end == 0 {
		// allow 0 length
		return ""
	}
	buffer := make([]rune, end)
	randomFixedLengthUnicodeString(r, buffer)
	return string(buffer)
}

// Fills provided []rune with valid random code points of every UTF-8
// encoded length.
func randomFixedLengthUnicodeString(random *rand.Rand, chars []rune) {
	for i := range chars {
		switch t := random.Intn(5); {
		case t <= 1:
			chars[i] = rune(random.Intn(0x80))
		case t == 2:
			chars[i] = rune(NextInt(random, 0x80, 0x7ff))
		case t == 3:
			if random.Intn(2) == 0 {
				chars[i] = rune(NextInt(random, 0x800, 0xd7ff))
			} else {
				chars[i] = rune(NextInt(random, 0xe000, 0xffff))
			}
		default:
			// supplementary characters
			chars[i] = rune(NextInt(random, 0x10000, 0x10ffff))
		}
	}
}

// Returns a random string of lower case ASCII letters, 1 to maxLength
// long.
func RandomSimpleString(r *rand.Rand, maxLength int) string {
	buffer := make([]byte, NextInt(r, 1, maxLength+1))
	for i := range buffer {
		buffer[i] = byte(NextInt(r, 'a', 'z'+1))
	}
	return string(buffer)
}

/*
Returns up to n distinct random terms sorted by less. Duplicates, as
seen by less, are dropped.
*/
func RandomTerms(r *rand.Rand, n int, less func(a, b []byte) bool) [][]byte {
	seen := make(map[string]bool)
	terms := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		var s string
		if r.Intn(3) == 0 {
			s = RandomUnicodeString(r)
		} else {
			s = RandomSimpleString(r, 10)
		}
		if !seen[s] {
			seen[s] = true
			terms = append(terms, []byte(s))
		}
	}
	sort.Slice(terms, func(i, j int) bool { return less(terms[i], terms[j]) })
	ans := terms[:0]
	for i, t := range terms {
		if i == 0 || less(terms[i-1], t) {
			ans = append(ans, t)
		}
	}
	return ans
}

// Returns a random payload of up to maxLength bytes, nil about a third
// of the time.
func RandomPayload(r *rand.Rand, maxLength int) []byte {
	if r.Intn(3) == 0 {
		return nil
	}
	ans := make([]byte, NextInt(r, 1, maxLength+1))
	r.Read(ans)
	return ans
}

// Returns a sorted set of distinct doc IDs in [0, maxDoc), at least one.
func RandomDocIds(r *rand.Rand, maxDoc int) []int {
	ans := make([]int, 0, maxDoc)
	for doc := 0; doc < maxDoc; doc++ {
		if r.Intn(3) == 0 {
			ans = append(ans, doc)
		}
	}
	if len(ans) == 0 {
		ans = append(ans, r.Intn(maxDoc))
	}
	return ans
}
