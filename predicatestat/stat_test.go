package predicatestat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geompred/expansion"
	"github.com/katalvlaran/geompred/predicate"
	"github.com/katalvlaran/geompred/predicatestat"
)

func init() {
	expansion.Init()
}

func TestCollect_ReportsFallbackRate(t *testing.T) {
	predicatestat.Reset()

	predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.3, 0.7}) // filtered
	predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.5, 0})   // exact
	predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.5, 0})   // exact

	reports := predicatestat.Collect()
	require.NotEmpty(t, reports)

	var found predicatestat.Report
	for _, r := range reports {
		if r.Name == "Orient2D" {
			found = r
		}
	}
	assert.Equal(t, uint64(1), found.Filtered)
	assert.Equal(t, uint64(2), found.Exact)
	assert.InDelta(t, 2.0/3.0, found.FallbackRate(), 1e-12)
}

func TestWorstFallbackRate_IgnoresUncalledPredicates(t *testing.T) {
	predicatestat.Reset()
	predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.5, 0}) // forces exact

	worst := predicatestat.WorstFallbackRate()
	assert.Equal(t, "Orient2D", worst.Name)
	assert.Equal(t, 1.0, worst.FallbackRate())
}

func TestReport_ZeroTotalHasZeroFallbackRate(t *testing.T) {
	var r predicatestat.Report
	assert.Zero(t, r.FallbackRate())
}
