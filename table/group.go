// SPDX-License-Identifier: MIT
// Package table: composite-key grouping.
//
// Purpose:
//   - Map a composite key (one or more column names) to the list of row
//     indices carrying that key, per the "mapping from composite key to
//     list of row indices" grouping model.
//
// Determinism:
//   - Groups are returned in first-appearance order of their key; row
//     indices inside a group are ascending by construction.

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// keySep separates component values inside a composite key string.
// U+001F (unit separator) cannot collide with realistic identifiers.
const keySep = "\x1f"

// Group is one composite-key bucket: the key's component values (in the
// order the key columns were requested) and the ascending row indices.
type Group struct {
	// Key holds the component values of the composite key.
	Key []string

	// Rows holds the ascending indices of the rows carrying this key.
	Rows []int
}

// GroupBy buckets rows by the composite key formed from the named columns.
//
// Stage 1 (Validate): resolve every key column; floats are keyed by their
// shortest round-trip decimal form, labels by their value.
// Stage 2 (Execute): single pass over rows, appending to the bucket of the
// row's key; new keys registered in first-appearance order.
// Stage 3 (Finalize): return groups in registration order.
//
// Errors: ErrMissingColumn for unknown key columns. An empty table (or an
// empty column list) yields an empty group slice, nil error.
// Complexity: O(n*k) time, O(n) space.
func (t *Table) GroupBy(cols ...string) ([]Group, error) {
	if len(cols) == 0 {
		return nil, nil
	}

	// Resolve key columns once.
	keyCols := make([]Column, len(cols))
	var err error
	for i, name := range cols {
		if keyCols[i], err = t.column(name); err != nil {
			return nil, fmt.Errorf("table.GroupBy: %w", err)
		}
	}

	var (
		groups []Group             // first-appearance order
		seen   = map[string]int{}  // composite key → position in groups
		parts  = make([]string, 0, len(cols))
	)
	for r := 0; r < t.rows; r++ {
		// Build the composite key for row r in fixed column order.
		parts = parts[:0]
		for _, c := range keyCols {
			if c.kind == KindFloat {
				parts = append(parts, strconv.FormatFloat(c.floats[r], 'g', -1, 64))
				continue
			}
			parts = append(parts, c.labels[r])
		}
		key := strings.Join(parts, keySep)

		pos, ok := seen[key]
		if !ok {
			// Register a new group, copying the key components.
			pos = len(groups)
			seen[key] = pos
			groups = append(groups, Group{Key: append([]string(nil), parts...)})
		}
		groups[pos].Rows = append(groups[pos].Rows, r)
	}

	return groups, nil
}

// Gather copies the values of a numeric column at the given rows.
// It is the common "collect group values" helper used by per-group
// aggregates. Indices must be valid (as produced by GroupBy).
// Complexity: O(m).
func Gather(values []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = values[r]
	}

	return out
}

// DropNaN copies values with every NaN removed, preserving order.
// Aggregates (means) are computed over the defined subset only, so an
// undefined source value never poisons the whole aggregate; an all-NaN
// input yields an empty slice (the aggregate is then undefined).
// Complexity: O(n).
func DropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}

	return out
}
