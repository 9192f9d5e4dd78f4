// SPDX-License-Identifier: MIT
// Package matrix: elementwise transforms.
//
// Purpose:
//   - Provide the conditional rescaling used on built matrices and the
//     private mapElements kernel it rides on.
//
// Determinism & Performance:
//   - Single flat pass over the row-major buffer; no allocations beyond
//     the output matrix; O(n²) time and space.

package matrix

import "math"

const opScaleConditional = "ScaleConditional"

// Conditional-rescale policy constants.
const (
	// ScaleBoundary splits the two rescale branches: values strictly above
	// it are damped, values at or below it are boosted.
	ScaleBoundary = 20.0

	// ScaleAboveFactor multiplies values strictly above ScaleBoundary.
	ScaleAboveFactor = 0.75

	// ScaleBelowFactor multiplies values at or below ScaleBoundary.
	ScaleBelowFactor = 1.25
)

// mapElements returns a copy of m with f applied to every cell.
// Flat deterministic pass; the input matrix is never mutated.
func mapElements(m *Labeled, f func(float64) float64) *Labeled {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = f(v)
	}

	return out
}

// roundTo1 rounds half away from zero to one decimal place.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ScaleConditional applies the conditional elementwise rescaling:
// each value strictly greater than ScaleBoundary is multiplied by
// ScaleAboveFactor, every other value by ScaleBelowFactor, and each
// result is rounded to one decimal place.
//
// Pure: returns a new matrix; m is unchanged.
// Errors: ErrNilMatrix. Complexity: O(n²) time and space.
func ScaleConditional(m *Labeled) (*Labeled, error) {
	if m == nil {
		return nil, matrixErrorf(opScaleConditional, ErrNilMatrix)
	}

	return mapElements(m, func(v float64) float64 {
		if v > ScaleBoundary {
			return roundTo1(v * ScaleAboveFactor)
		}

		return roundTo1(v * ScaleBelowFactor)
	}), nil
}
