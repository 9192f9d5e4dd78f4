package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tolltab/matrix"
	"github.com/katalvlaran/tolltab/table"
)

func TestUnroll_OrderedPairsNoDiagonal(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewLabeled([]string{"A", "B", "C"})
	require.NoError(t, err)
	// Symmetric distances: AB=5, AC=10, BC=5.
	require.NoError(t, m.Fill([]float64{
		0, 5, 10,
		5, 0, 5,
		10, 5, 0,
	}))

	out, err := matrix.Unroll(m)
	require.NoError(t, err)

	// n(n-1) ordered pairs, no self-pairs.
	assert.Equal(t, 6, out.Len())

	starts, _ := out.Label(matrix.DefaultStartColumn)
	ends, _ := out.Label(matrix.DefaultEndColumn)
	dists, _ := out.Float(matrix.DefaultDistanceColumn)

	// Deterministic order: i outer, j inner, sorted labels.
	assert.Equal(t, []string{"A", "A", "B", "B", "C", "C"}, starts)
	assert.Equal(t, []string{"B", "C", "A", "C", "A", "B"}, ends)
	assert.Equal(t, []float64{5, 10, 5, 5, 10, 5}, dists)

	// Both (i,j) and (j,i) are emitted.
	for r := 0; r < out.Len(); r++ {
		assert.NotEqual(t, starts[r], ends[r])
	}
}

func TestUnroll_EmptyAndNil(t *testing.T) {
	t.Parallel()

	empty, err := matrix.NewLabeled(nil)
	require.NoError(t, err)

	out, err := matrix.Unroll(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, []string{"id_start", "id_end", "distance"}, out.Columns())

	_, err = matrix.Unroll(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// Unroll ∘ Build round-trip: rebuilding from the unrolled form must
// reproduce every originally-present off-diagonal value.
func TestUnrollBuild_RoundTrip(t *testing.T) {
	t.Parallel()

	src := table.MustNew(
		table.Label("id_1", []string{"A", "B", "B"}),
		table.Label("id_2", []string{"B", "A", "C"}),
		table.Float("car", []float64{12, 12, 30}),
	)

	built, err := matrix.Build(src)
	require.NoError(t, err)

	unrolled, err := matrix.Unroll(built)
	require.NoError(t, err)

	rebuilt, err := matrix.Build(unrolled,
		matrix.WithColumns("id_start", "id_end", "distance"))
	require.NoError(t, err)

	require.Equal(t, built.Labels(), rebuilt.Labels())
	for _, a := range built.Labels() {
		for _, b := range built.Labels() {
			if a == b {
				continue
			}
			want, _ := built.At(a, b)
			got, _ := rebuilt.At(a, b)
			assert.Equal(t, want, got, "cell (%s,%s)", a, b)
		}
	}
}
