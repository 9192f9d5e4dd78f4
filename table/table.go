// SPDX-License-Identifier: MIT
// Package table: core container types and accessors.
//
// Purpose:
//   - Define Column (a named, homogeneously typed value series) and Table
//     (an ordered, rectangular sequence of columns with O(1) name lookup).
//   - Keep construction strict (rectangular, unique names) so that every
//     downstream transform can assume a well-formed table.
//
// Contract:
//   - Tables are value-immutable through the public surface; derivations
//     return new tables.
//   - Float/Label return direct views into backing storage (no copy);
//     callers must not mutate the returned slices.

package table

import "fmt"

// Kind discriminates the semantic type of a column's value series.
type Kind uint8

const (
	// KindFloat marks a column backed by []float64.
	KindFloat Kind = iota

	// KindLabel marks a column backed by []string (identifiers, categories).
	KindLabel
)

// Column is a named value series of a single Kind. Construct via Float or
// Label; the zero value is not meaningful.
type Column struct {
	name   string
	kind   Kind
	floats []float64
	labels []string
}

// Float constructs a numeric column. The slice is used as-is (no copy).
// Complexity: O(1).
func Float(name string, values []float64) Column {
	return Column{name: name, kind: KindFloat, floats: values}
}

// Label constructs a string-valued column. The slice is used as-is (no copy).
// Complexity: O(1).
func Label(name string, values []string) Column {
	return Column{name: name, kind: KindLabel, labels: values}
}

// Name returns the column's name.
func (c Column) Name() string { return c.name }

// Kind returns the column's value kind.
func (c Column) Kind() Kind { return c.kind }

// len returns the column's value count, independent of kind.
func (c Column) len() int {
	if c.kind == KindFloat {
		return len(c.floats)
	}

	return len(c.labels)
}

// Table is an ordered, rectangular sequence of named columns.
// rows is the shared column length; index maps name → position in cols.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New builds a Table from the given columns.
//
// Stage 1 (Validate): all columns share one length; names are unique.
// Stage 2 (Prepare): build the name → position index.
// Stage 3 (Finalize): return the assembled table.
//
// A call with zero columns yields a valid empty table (Len()==0).
// Complexity: O(k) for k columns (values are not copied).
func New(cols ...Column) (*Table, error) {
	t := &Table{cols: cols, index: make(map[string]int, len(cols))}

	for i, c := range cols {
		// Reject duplicate names; lookup must be unambiguous.
		if _, dup := t.index[c.name]; dup {
			return nil, fmt.Errorf("table.New: column %q: %w", c.name, ErrDuplicateColumn)
		}
		t.index[c.name] = i

		// Enforce rectangularity against the first column's length.
		if i == 0 {
			t.rows = c.len()
			continue
		}
		if c.len() != t.rows {
			return nil, fmt.Errorf("table.New: column %q has %d values, want %d: %w",
				c.name, c.len(), t.rows, ErrColumnLength)
		}
	}

	return t, nil
}

// MustNew is a construction helper for fixtures and literals; it panics on
// the errors New would return. Intended for tests and static tables.
func MustNew(cols ...Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of rows. Complexity: O(1).
func (t *Table) Len() int { return t.rows }

// Columns returns the column names in declaration order (fresh slice).
// Complexity: O(k).
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}

	return names
}

// Has reports whether a column with the given name exists. Complexity: O(1).
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]

	return ok
}

// column resolves a name to its Column or returns ErrMissingColumn.
func (t *Table) column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, fmt.Errorf("table: column %q: %w", name, ErrMissingColumn)
	}

	return t.cols[i], nil
}

// Float returns the value view of a numeric column.
//
// The returned slice aliases backing storage; callers must not mutate it.
// Errors: ErrMissingColumn, ErrKindMismatch. Complexity: O(1).
func (t *Table) Float(name string) ([]float64, error) {
	c, err := t.column(name)
	if err != nil {
		return nil, err
	}
	if c.kind != KindFloat {
		return nil, fmt.Errorf("table: column %q is not numeric: %w", name, ErrKindMismatch)
	}

	return c.floats, nil
}

// Label returns the value view of a string-valued column.
//
// The returned slice aliases backing storage; callers must not mutate it.
// Errors: ErrMissingColumn, ErrKindMismatch. Complexity: O(1).
func (t *Table) Label(name string) ([]string, error) {
	c, err := t.column(name)
	if err != nil {
		return nil, err
	}
	if c.kind != KindLabel {
		return nil, fmt.Errorf("table: column %q is not label-valued: %w", name, ErrKindMismatch)
	}

	return c.labels, nil
}

// WithFloat derives a new table with one additional numeric column appended.
// The receiver is unchanged; existing column storage is shared.
//
// Errors: ErrDuplicateColumn if the name exists; ErrColumnLength if the
// value count differs from Len(). Complexity: O(k).
func (t *Table) WithFloat(name string, values []float64) (*Table, error) {
	if t.Has(name) {
		return nil, fmt.Errorf("table.WithFloat: column %q: %w", name, ErrDuplicateColumn)
	}
	if len(values) != t.rows {
		return nil, fmt.Errorf("table.WithFloat: column %q has %d values, want %d: %w",
			name, len(values), t.rows, ErrColumnLength)
	}

	cols := make([]Column, 0, len(t.cols)+1)
	cols = append(cols, t.cols...)
	cols = append(cols, Float(name, values))

	return New(cols...)
}

// Select derives a new table containing the given rows, in the given order.
// Duplicate row indices are permitted (the row is emitted twice).
//
// Errors: ErrRowOutOfRange. Complexity: O(k*m) for m selected rows.
func (t *Table) Select(rows []int) (*Table, error) {
	// Validate indices once, up front.
	for _, r := range rows {
		if r < 0 || r >= t.rows {
			return nil, fmt.Errorf("table.Select: row %d of %d: %w", r, t.rows, ErrRowOutOfRange)
		}
	}

	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		if c.kind == KindFloat {
			picked := make([]float64, len(rows))
			for j, r := range rows {
				picked[j] = c.floats[r]
			}
			cols[i] = Float(c.name, picked)
			continue
		}
		picked := make([]string, len(rows))
		for j, r := range rows {
			picked[j] = c.labels[r]
		}
		cols[i] = Label(c.name, picked)
	}

	return New(cols...)
}

// Clone returns a deep copy of the table (backing slices copied).
// Complexity: O(k*n).
func (t *Table) Clone() *Table {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		if c.kind == KindFloat {
			vals := make([]float64, len(c.floats))
			copy(vals, c.floats)
			cols[i] = Float(c.name, vals)
			continue
		}
		vals := make([]string, len(c.labels))
		copy(vals, c.labels)
		cols[i] = Label(c.name, vals)
	}

	out, _ := New(cols...) // receiver was valid; clone cannot fail

	return out
}
