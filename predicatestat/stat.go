package predicatestat

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/geompred/predicate"
)

// Report is one predicate's fallback history, plus its derived
// fallback rate.
type Report struct {
	Name     string
	Filtered uint64
	Exact    uint64
}

// Total is the number of dispatches recorded for this predicate.
func (r Report) Total() uint64 { return r.Filtered + r.Exact }

// FallbackRate is the fraction of dispatches that required the exact
// kernel, in [0,1]. Returns 0 for a predicate with no recorded calls.
func (r Report) FallbackRate() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Exact) / float64(r.Total())
}

func (r Report) String() string {
	return fmt.Sprintf("%-10s filtered=%-8d exact=%-6d fallback=%.4f%%", r.Name, r.Filtered, r.Exact, r.FallbackRate()*100)
}

// Collect snapshots every predicate's dispatch counters, sorted by
// name for deterministic reporting.
func Collect() []Report {
	snap := predicate.Snapshot()
	out := make([]Report, 0, len(snap))
	for name, c := range snap {
		out = append(out, Report{Name: name, Filtered: c.Filtered, Exact: c.Exact})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset clears every predicate's counters. A caller profiling one
// bounded window of work (e.g. one mesh-refinement pass) should call
// this before the window starts.
func Reset() {
	predicate.ResetStats()
}

// WorstFallbackRate returns the Report with the highest fallback rate
// among predicates that were actually called, or the zero Report if
// nothing was recorded. Useful for a caller that only wants to flag
// whether *any* predicate is thrashing into the exact path.
func WorstFallbackRate() Report {
	var worst Report
	found := false
	for _, r := range Collect() {
		if r.Total() == 0 {
			continue
		}
		if !found || r.FallbackRate() > worst.FallbackRate() {
			worst = r
			found = true
		}
	}
	return worst
}
