package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geompred/predicate"
)

func TestStats_RecordsFilteredAndExactDispatch(t *testing.T) {
	predicate.ResetStats()

	predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.3, 0.7}) // filtered
	predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.5, 0})   // forces exact

	snap := predicate.Snapshot()
	got, ok := snap["Orient2D"]
	require.True(t, ok)
	assert.Equal(t, uint64(1), got.Filtered)
	assert.Equal(t, uint64(1), got.Exact)
}

func TestResetStats_ZeroesEveryCounter(t *testing.T) {
	predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.3, 0.7})
	predicate.ResetStats()

	for _, c := range predicate.Snapshot() {
		assert.Zero(t, c.Filtered)
		assert.Zero(t, c.Exact)
	}
}
