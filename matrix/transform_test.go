package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tolltab/matrix"
)

func TestScaleConditional_BranchesAndRounding(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewLabeled([]string{"A", "B"})
	require.NoError(t, err)
	// [ 25  10 ]
	// [ 20  21 ]
	require.NoError(t, m.Fill([]float64{25, 10, 20, 21}))

	out, err := matrix.ScaleConditional(m)
	require.NoError(t, err)

	// 25 > 20 → 25×0.75 = 18.75 → 18.8 (rounded to one decimal).
	v, _ := out.At("A", "A")
	assert.Equal(t, 18.8, v)

	// 10 ≤ 20 → 10×1.25 = 12.5.
	v, _ = out.At("A", "B")
	assert.Equal(t, 12.5, v)

	// Boundary value 20 takes the ≤ branch: 20×1.25 = 25.
	v, _ = out.At("B", "A")
	assert.Equal(t, 25.0, v)

	// 21 > 20 → 21×0.75 = 15.75 → 15.8.
	v, _ = out.At("B", "B")
	assert.Equal(t, 15.8, v)
}

func TestScaleConditional_PureInputUntouched(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewLabeled([]string{"A"})
	require.NoError(t, err)
	require.NoError(t, m.Fill([]float64{10}))

	_, err = matrix.ScaleConditional(m)
	require.NoError(t, err)

	v, _ := m.At("A", "A")
	assert.Equal(t, 10.0, v)
}

func TestScaleConditional_NilAndEmpty(t *testing.T) {
	t.Parallel()

	_, err := matrix.ScaleConditional(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewLabeled(nil)
	require.NoError(t, err)
	out, err := matrix.ScaleConditional(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, out.N())
}
