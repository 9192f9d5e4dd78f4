// SPDX-License-Identifier: MIT
// Package classify: sentinel error set.

package classify

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedAggregate indicates a mean/average over an empty or
	// reference-less selection; the aggregate is mathematically undefined
	// and must not silently propagate as NaN.
	ErrUndefinedAggregate = errors.New("classify: aggregate undefined over empty selection")

	// ErrBadTolerance indicates a negative or non-finite tolerance fraction.
	ErrBadTolerance = errors.New("classify: invalid tolerance fraction")
)

// classifyErrorf wraps err with an operation name for unified error context.
func classifyErrorf(op string, err error) error {
	return fmt.Errorf("classify.%s: %w", op, err)
}
