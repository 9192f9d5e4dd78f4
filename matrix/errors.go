// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for nonsensical option arguments.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *Labeled was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownLabel indicates that a referenced label is not part of the
	// matrix index set.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrOutOfRange indicates that a positional index (row or column) is
	// outside valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDuplicateLabel indicates a duplicate label in construction input.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrDimensionMismatch indicates that bulk data does not match the
	// matrix shape (Fill with len != N*N).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal required to be ~0 (within
	// eps) held a non-zero entry.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")
)

// matrixErrorf wraps err with an operation name for unified error context.
// Sentinels remain matchable through errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}
