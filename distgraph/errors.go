// SPDX-License-Identifier: MIT
// Package distgraph: sentinel error set.

package distgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeWeight indicates an edge record with a negative or NaN
	// distance; shortest-path closure here assumes non-negative weights.
	ErrNegativeWeight = errors.New("distgraph: negative or NaN edge weight")

	// ErrEdgeConflict indicates two records assigning different distances
	// to the same node pair while WithErrorOnConflict is in effect.
	ErrEdgeConflict = errors.New("distgraph: conflicting duplicate edge")
)

// graphErrorf wraps err with an operation name for unified error context.
func graphErrorf(op string, err error) error {
	return fmt.Errorf("distgraph.%s: %w", op, err)
}
