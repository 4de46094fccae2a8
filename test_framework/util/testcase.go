package util

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// True if and only if tests are run in verbose mode.
var VERBOSE = ("true" == or(os.Getenv("tests_verbose"), "false"))

// A random multiplier which you should use when writing random tests:
// multiply it by the number of iterations to scale your tests (for
// nightly builds).
var RANDOM_MULTIPLIER = func() int {
	n, err := strconv.Atoi(or(os.Getenv("tests_multiplier"), "1"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}()

// Whether or not Nightly tests should run
var TEST_NIGHTLY = ("true" == or(os.Getenv("tests_nightly"), "false"))

func or(a, b string) string {
	if len(a) > 0 {
		return a
	}
	return b
}

/*
Returns a Random for one test. The seed comes from the tests_seed
environment variable when set, and is logged so a failing run can be
repeated.
*/
func Random(tb testing.TB) *rand.Rand {
	seed := time.Now().UTC().UnixNano()
	if s := os.Getenv("tests_seed"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = n
		}
	}
	tb.Logf("random seed: %v (set tests_seed to reproduce)", seed)
	return rand.New(rand.NewSource(seed))
}

/*
Returns a number of at least i

The actual number returned will be influenced by whether TEST_NIGHTLY
is active and RANDOM_MULTIPLIER, but also with some random fudge.
*/
func AtLeast(random *rand.Rand, i int) int {
	min := i * RANDOM_MULTIPLIER
	if TEST_NIGHTLY {
		min = 2 * min
	}
	max := min + min/2
	return NextInt(random, min, max+1)
}

/* Returns true if something should happen rarely. */
func Rarely(random *rand.Rand) bool {
	p := 1
	if TEST_NIGHTLY {
		p = 10
	}
	return random.Intn(100) >= 100-p
}

func Usually(r *rand.Rand) bool {
	return !Rarely(r)
}
