// SPDX-License-Identifier: MIT
// Package matrix: the Labeled dense matrix type.
//
// Purpose:
//   - Square, label-indexed float64 matrix with flat row-major storage and
//     O(1) label→offset lookup.
//
// Contract:
//   - Labels are sorted ascending at construction; the row index set
//     always equals the column label set.
//   - A zero-label matrix (N()==0) is valid and represents "no data".

package matrix

import (
	"fmt"
	"sort"
)

// Labeled is a square matrix whose rows and columns are addressed by the
// same sorted label set. data holds n*n elements in row-major order.
type Labeled struct {
	labels []string       // sorted ascending, unique
	index  map[string]int // label → offset in labels
	data   []float64      // flat backing storage, length == n*n
}

// NewLabeled creates a zero-initialized square matrix over the given
// labels.
//
// Stage 1 (Validate): reject duplicate labels.
// Stage 2 (Prepare): sort labels ascending; build the lookup index.
// Stage 3 (Finalize): allocate the flat n×n backing slice.
//
// A nil or empty label slice yields a valid empty (0×0) matrix.
// Complexity: O(n log n + n²) time, O(n²) space.
func NewLabeled(labels []string) (*Labeled, error) {
	n := len(labels)

	sorted := make([]string, n)
	copy(sorted, labels)
	sort.Strings(sorted)

	index := make(map[string]int, n)
	for i, l := range sorted {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("matrix.NewLabeled: label %q: %w", l, ErrDuplicateLabel)
		}
		index[l] = i
	}

	return &Labeled{labels: sorted, index: index, data: make([]float64, n*n)}, nil
}

// N returns the matrix order (label count). Complexity: O(1).
func (m *Labeled) N() int { return len(m.labels) }

// Labels returns the sorted label set (fresh slice). Complexity: O(n).
func (m *Labeled) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)

	return out
}

// Index resolves a label to its positional offset. Complexity: O(1).
func (m *Labeled) Index(label string) (int, bool) {
	i, ok := m.index[label]

	return i, ok
}

// offsetOf computes the flat offset for (row, col) labels or errors.
func (m *Labeled) offsetOf(a, b string) (int, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("matrix: label %q: %w", a, ErrUnknownLabel)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("matrix: label %q: %w", b, ErrUnknownLabel)
	}

	return i*len(m.labels) + j, nil
}

// At retrieves the cell addressed by two labels.
// Errors: ErrUnknownLabel. Complexity: O(1).
func (m *Labeled) At(a, b string) (float64, error) {
	off, err := m.offsetOf(a, b)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set assigns the cell addressed by two labels.
// Errors: ErrUnknownLabel. Complexity: O(1).
func (m *Labeled) Set(a, b string, v float64) error {
	off, err := m.offsetOf(a, b)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// AtIndex retrieves the cell at positional (i, j).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Labeled) AtIndex(i, j int) (float64, error) {
	n := len(m.labels)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("matrix.AtIndex(%d,%d) of %d: %w", i, j, n, ErrOutOfRange)
	}

	return m.data[i*n+j], nil
}

// SetIndex assigns the cell at positional (i, j).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Labeled) SetIndex(i, j int, v float64) error {
	n := len(m.labels)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("matrix.SetIndex(%d,%d) of %d: %w", i, j, n, ErrOutOfRange)
	}
	m.data[i*n+j] = v

	return nil
}

// Fill overwrites the whole matrix from a row-major slice of length N*N.
// Used for bulk ingestion (e.g., a computed distance closure).
// Errors: ErrDimensionMismatch. Complexity: O(n²).
func (m *Labeled) Fill(rowMajor []float64) error {
	if len(rowMajor) != len(m.data) {
		return fmt.Errorf("matrix.Fill: got %d values, want %d: %w",
			len(rowMajor), len(m.data), ErrDimensionMismatch)
	}
	copy(m.data, rowMajor)

	return nil
}

// Clone returns a deep copy. Complexity: O(n²).
func (m *Labeled) Clone() *Labeled {
	out := &Labeled{
		labels: append([]string(nil), m.labels...),
		index:  make(map[string]int, len(m.index)),
		data:   append([]float64(nil), m.data...),
	}
	for l, i := range m.index {
		out.index[l] = i
	}

	return out
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// line, prefixed by the row label. Complexity: O(n²).
func (m *Labeled) String() string {
	n := len(m.labels)
	var s string
	var i, j int
	for i = 0; i < n; i++ {
		s += m.labels[i] + ": ["
		for j = 0; j < n; j++ {
			s += fmt.Sprintf("%g", m.data[i*n+j])
			if j < n-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
