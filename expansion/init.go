package expansion

import (
	"sync"

	"github.com/katalvlaran/geompred/internal/fpenv"
)

// Epsilon is the unit round-off: the largest power of two such that
// 1+Epsilon rounds back to 1 under round-to-nearest-even (2^-53 for
// float64). Splitter is the Veltkamp
// constant used by Split to break a float64 into non-overlapping
// high/low halves. Both are established once by Init and are
// read-only thereafter.
var (
	Epsilon  float64
	Splitter float64
)

var initOnce sync.Once

// Init performs the one-time initialization required before any
// predicate in this module is invoked. It is idempotent: repeated
// calls recompute nothing after the first and always leave
// Epsilon/Splitter at the same values. Concurrent calls to Init are
// safe (sync.Once makes every caller wait for the first to finish),
// but predicates read Epsilon and Splitter without synchronization, so
// one call to Init must complete before any predicate runs. After
// that, Epsilon and Splitter are immutable and every predicate is
// fully reentrant.
func Init() {
	initOnce.Do(func() {
		fpenv.Init()
		computeConstants()
	})
}

// computeConstants finds machine epsilon and the splitter constant by
// the portable bisection Shewchuk describes: halve a trial epsilon
// until 1+eps stops changing under round-to-nearest, while doubling
// the splitter on every other iteration. For IEEE-754 float64 under
// the required round-to-nearest-even, no-excess-precision environment
// this converges to the textbook constants
// Epsilon == 2^-53, Splitter == 2^27+1, but the bisection is kept
// rather than hardcoding those literals so the module also self-checks
// the floating-point environment it is running under.
func computeConstants() {
	alternate := true
	epsilon := 1.0
	splitter := 1.0
	check := 1.0
	var lastcheck float64

	for {
		lastcheck = check
		epsilon *= 0.5

		if alternate {
			splitter *= 2.0
		}
		alternate = !alternate

		check = 1.0 + epsilon

		if check == 1.0 || check == lastcheck {
			break
		}
	}

	Epsilon = epsilon
	Splitter = splitter + 1.0
}
