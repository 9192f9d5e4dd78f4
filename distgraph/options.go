// SPDX-License-Identifier: MIT
// Package distgraph: functional configuration for edge ingestion.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each policy impacts behavior and is covered by tests.

package distgraph

// ConflictPolicy selects how duplicate edges between the same node pair
// are merged during graph construction.
type ConflictPolicy uint8

const (
	// LastWriteWins keeps the later record's distance (default; matches
	// sequential insertion into a directed adjacency structure).
	LastWriteWins ConflictPolicy = iota

	// MinWins keeps the smallest distance seen for the pair.
	MinWins

	// ErrorOnConflict rejects the table when the same pair appears twice
	// with different distances (identical duplicates are tolerated).
	ErrorOnConflict
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStartColumn is the start-identifier column read by Resolve.
	DefaultStartColumn = "id_start"

	// DefaultEndColumn is the end-identifier column read by Resolve.
	DefaultEndColumn = "id_end"

	// DefaultDistanceColumn is the distance column read by Resolve.
	DefaultDistanceColumn = "distance"

	// DefaultConflictPolicy documents the duplicate-edge default.
	DefaultConflictPolicy = LastWriteWins
)

const panicColumnsInvalid = "distgraph: WithEdgeColumns: column names must be non-empty"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	start    string         // DefaultStartColumn
	end      string         // DefaultEndColumn
	dist     string         // DefaultDistanceColumn
	conflict ConflictPolicy // DefaultConflictPolicy
}

// WithEdgeColumns overrides the column names read by Resolve.
// Panics if any name is empty (programmer error).
func WithEdgeColumns(start, end, distance string) Option {
	if start == "" || end == "" || distance == "" {
		panic(panicColumnsInvalid)
	}

	return func(o *Options) { o.start, o.end, o.dist = start, end, distance }
}

// WithLastWriteWins keeps the later record's distance for duplicate pairs
// (default).
func WithLastWriteWins() Option {
	return func(o *Options) { o.conflict = LastWriteWins }
}

// WithMinWins keeps the smallest distance seen for duplicate pairs.
func WithMinWins() Option {
	return func(o *Options) { o.conflict = MinWins }
}

// WithErrorOnConflict rejects tables where the same pair appears with two
// different distances (ErrEdgeConflict).
func WithErrorOnConflict() Option {
	return func(o *Options) { o.conflict = ErrorOnConflict }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults (last-writer-wins) and returns the resolved configuration.
func gatherOptions(user ...Option) Options {
	o := Options{
		start:    DefaultStartColumn,
		end:      DefaultEndColumn,
		dist:     DefaultDistanceColumn,
		conflict: DefaultConflictPolicy,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
