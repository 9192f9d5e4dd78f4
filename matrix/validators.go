// SPDX-License-Identifier: MIT
// Package matrix: structural validators.
// Centralized checks shared by tests and callers that assert the
// distance-matrix invariants (square is guaranteed by construction;
// symmetry and zero diagonal are validated here within a tolerance).

package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Labeled) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSymmetric verifies |m[i,j] − m[j,i]| ≤ eps for all pairs.
// +Inf cells are symmetric when both sides are +Inf.
// Errors: ErrNilMatrix, ErrAsymmetry. Complexity: O(n²).
func ValidateSymmetric(m *Labeled, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("ValidateSymmetric", err)
	}

	n := len(m.labels)
	var i, j int
	var a, b float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b = m.data[i*n+j], m.data[j*n+i]
			if math.IsInf(a, 1) && math.IsInf(b, 1) {
				continue // both "no path": symmetric
			}
			if math.Abs(a-b) > eps {
				return fmt.Errorf("matrix.ValidateSymmetric: [%s,%s]=%g vs [%s,%s]=%g: %w",
					m.labels[i], m.labels[j], a, m.labels[j], m.labels[i], b, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal verifies |m[i,i]| ≤ eps for all labels.
// Errors: ErrNilMatrix, ErrNonZeroDiagonal. Complexity: O(n).
func ValidateZeroDiagonal(m *Labeled, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("ValidateZeroDiagonal", err)
	}

	n := len(m.labels)
	for i := 0; i < n; i++ {
		if math.Abs(m.data[i*n+i]) > eps {
			return fmt.Errorf("matrix.ValidateZeroDiagonal: [%s,%s]=%g: %w",
				m.labels[i], m.labels[i], m.data[i*n+i], ErrNonZeroDiagonal)
		}
	}

	return nil
}
