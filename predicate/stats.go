package predicate

import "sync/atomic"

// Stats are internal, lock-free counters recording how often each
// predicate's dispatcher certifies a sign from the filtered path
// versus falls back to the exact kernel. Incrementing them is a
// single atomic add on every dispatch — negligible next to the
// floating-point work already done, and never a branch on behavior,
// so it does not change the hot path's allocation profile. These are
// read by the predicatestat package; nothing in this package's own
// behavior depends on their value.
type predicateID int

const (
	idOrient2D predicateID = iota
	idOrient3D
	idBisect2D
	idBisect3D
	idBisect2W
	idBisect3W
	idInBall2D
	idInBall3D
	idInBall2W
	idInBall3W
	numPredicates
)

var (
	filteredHits [numPredicates]uint64
	exactCalls   [numPredicates]uint64
)

func recordFiltered(id predicateID) {
	atomic.AddUint64(&filteredHits[id], 1)
}

func recordExact(id predicateID) {
	atomic.AddUint64(&exactCalls[id], 1)
}

// Counts is a point-in-time snapshot of one predicate's dispatch
// history.
type Counts struct {
	Filtered uint64
	Exact    uint64
}

// names is indexed by predicateID and gives the stable string key
// predicatestat reports counts under.
var names = [numPredicates]string{
	"Orient2D", "Orient3D",
	"Bisect2D", "Bisect3D", "Bisect2W", "Bisect3W",
	"InBall2D", "InBall3D", "InBall2W", "InBall3W",
}

// Snapshot returns the current Counts for every predicate, keyed by
// entry-point name.
func Snapshot() map[string]Counts {
	out := make(map[string]Counts, numPredicates)
	for id := predicateID(0); id < numPredicates; id++ {
		out[names[id]] = Counts{
			Filtered: atomic.LoadUint64(&filteredHits[id]),
			Exact:    atomic.LoadUint64(&exactCalls[id]),
		}
	}
	return out
}

// ResetStats zeroes every counter. Intended for test isolation and for
// callers that want to measure fallback rate over a bounded window
// (e.g. one meshing pass) rather than cumulatively.
func ResetStats() {
	for id := predicateID(0); id < numPredicates; id++ {
		atomic.StoreUint64(&filteredHits[id], 0)
		atomic.StoreUint64(&exactCalls[id], 0)
	}
}
