package classify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tolltab/classify"
	"github.com/katalvlaran/tolltab/table"
)

func TestIndexesAboveTwiceMean_StrictCutoff(t *testing.T) {
	t.Parallel()

	// mean = 20, cutoff = 40: only the 50 qualifies (40 itself would not).
	tbl := table.MustNew(table.Float("bus", []float64{10, 10, 10, 50}))

	idx, err := classify.IndexesAboveTwiceMean(tbl, "bus")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, idx)
}

func TestIndexesAboveTwiceMean_SortedIndices(t *testing.T) {
	t.Parallel()

	// mean = 32, cutoff = 64: rows 1 and 3 qualify, ascending order.
	tbl := table.MustNew(table.Float("bus", []float64{0, 70, 0, 80, 10}))

	idx, err := classify.IndexesAboveTwiceMean(tbl, "bus")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, idx)
}

func TestIndexesAboveTwiceMean_NaNExcludedFromMean(t *testing.T) {
	t.Parallel()

	// The mean is taken over the defined values {1, 1, 50} only: 52/3,
	// cutoff 104/3 ≈ 34.67. Only the 50 qualifies; the NaN row never does.
	tbl := table.MustNew(table.Float("bus", []float64{1, 1, math.NaN(), 50}))

	idx, err := classify.IndexesAboveTwiceMean(tbl, "bus")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, idx)
}

func TestIndexesAboveTwiceMean_UndefinedOnEmpty(t *testing.T) {
	t.Parallel()

	tbl := table.MustNew(table.Float("bus", nil))

	_, err := classify.IndexesAboveTwiceMean(tbl, "bus")
	assert.ErrorIs(t, err, classify.ErrUndefinedAggregate)

	// An all-NaN column has no defined values: the mean is just as undefined.
	allNaN := table.MustNew(table.Float("bus", []float64{math.NaN(), math.NaN()}))
	_, err = classify.IndexesAboveTwiceMean(allNaN, "bus")
	assert.ErrorIs(t, err, classify.ErrUndefinedAggregate)
}

func TestRoutesAboveMean_GroupMeans(t *testing.T) {
	t.Parallel()

	tbl := table.MustNew(
		table.Label("route", []string{"R2", "R1", "R2", "R1", "R3"}),
		table.Float("truck", []float64{9, 6, 9, 10, 7}),
	)

	// Means: R2 = 9 (>7), R1 = 8 (>7), R3 = 7 (not strict). Sorted output.
	routes, err := classify.RoutesAboveMean(tbl, "route", "truck", classify.DefaultRouteThreshold)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2"}, routes)
}

func TestRoutesAboveMean_NaNExcludedFromGroupMean(t *testing.T) {
	t.Parallel()

	tbl := table.MustNew(
		table.Label("route", []string{"R1", "R1", "R2", "R2"}),
		table.Float("truck", []float64{math.NaN(), 9, math.NaN(), math.NaN()}),
	)

	// R1's mean over defined values is 9 (>7): the NaN row does not drag
	// it to NaN. R2 has no defined values and never qualifies.
	routes, err := classify.RoutesAboveMean(tbl, "route", "truck", classify.DefaultRouteThreshold)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1"}, routes)
}

func TestRoutesAboveMean_EmptyAndMissing(t *testing.T) {
	t.Parallel()

	tbl := table.MustNew(
		table.Label("route", nil),
		table.Float("truck", nil),
	)

	// No rows → no groups → empty result, nil error.
	routes, err := classify.RoutesAboveMean(tbl, "route", "truck", classify.DefaultRouteThreshold)
	require.NoError(t, err)
	assert.Empty(t, routes)

	_, err = classify.RoutesAboveMean(tbl, "route", "bus", classify.DefaultRouteThreshold)
	assert.ErrorIs(t, err, table.ErrMissingColumn)
}
