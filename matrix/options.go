// SPDX-License-Identifier: MIT
// Package matrix: functional configuration for pivot/unroll operations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultIDColumn1 is the first identifier column read by Build.
	DefaultIDColumn1 = "id_1"

	// DefaultIDColumn2 is the second identifier column read by Build.
	DefaultIDColumn2 = "id_2"

	// DefaultValueColumn is the value column read by Build.
	DefaultValueColumn = "car"

	// DefaultStartColumn is the start-identifier column written by Unroll.
	DefaultStartColumn = "id_start"

	// DefaultEndColumn is the end-identifier column written by Unroll.
	DefaultEndColumn = "id_end"

	// DefaultDistanceColumn is the value column written by Unroll.
	DefaultDistanceColumn = "distance"

	// DefaultFill is the value assigned to (a, b) combinations absent from
	// the pivot input. An explicit parameter, not a reshape by-product.
	DefaultFill = 0.0

	// DefaultZeroDiagonal forces cell (a, a) to 0 regardless of input.
	DefaultZeroDiagonal = true

	// DefaultEpsilon is the non-negative tolerance used by the structural
	// validators (symmetry, zero diagonal).
	DefaultEpsilon = 1e-9
)

// Internal panic messages (no magic strings).
const (
	panicFillInvalid    = "matrix: WithFill: fill must be finite"
	panicColumnsInvalid = "matrix: WithColumns: column names must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Unexported fields prevent external mutation; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	// pivot input columns (Build)
	id1 string // DefaultIDColumn1
	id2 string // DefaultIDColumn2
	val string // DefaultValueColumn

	// unroll output columns (Unroll)
	start string // DefaultStartColumn
	end   string // DefaultEndColumn
	dist  string // DefaultDistanceColumn

	// pivot policy
	fill     float64 // DefaultFill
	zeroDiag bool    // DefaultZeroDiagonal
}

// WithColumns overrides the identifier/value column names read by Build.
// Panics if any name is empty (programmer error).
func WithColumns(id1, id2, value string) Option {
	if id1 == "" || id2 == "" || value == "" {
		panic(panicColumnsInvalid)
	}

	return func(o *Options) { o.id1, o.id2, o.val = id1, id2, value }
}

// WithUnrollColumns overrides the column names written by Unroll.
// Panics if any name is empty (programmer error).
func WithUnrollColumns(start, end, distance string) Option {
	if start == "" || end == "" || distance == "" {
		panic(panicColumnsInvalid)
	}

	return func(o *Options) { o.start, o.end, o.dist = start, end, distance }
}

// WithFill sets the explicit default value for (a, b) combinations absent
// from the pivot input. Panics on NaN/±Inf (programmer error).
func WithFill(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicFillInvalid)
	}

	return func(o *Options) { o.fill = v }
}

// WithKeepDiagonal disables the forced-zero diagonal, keeping whatever the
// input (or fill) produced on (a, a) cells.
func WithKeepDiagonal() Option {
	return func(o *Options) { o.zeroDiag = false }
}

// WithZeroDiagonal forces cell (a, a) to 0 regardless of input (default).
func WithZeroDiagonal() Option {
	return func(o *Options) { o.zeroDiag = true }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults (last-writer-wins) and returns the resolved configuration.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		id1:      DefaultIDColumn1,
		id2:      DefaultIDColumn2,
		val:      DefaultValueColumn,
		start:    DefaultStartColumn,
		end:      DefaultEndColumn,
		dist:     DefaultDistanceColumn,
		fill:     DefaultFill,
		zeroDiag: DefaultZeroDiagonal,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
