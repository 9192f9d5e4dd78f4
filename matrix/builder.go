// SPDX-License-Identifier: MIT
// Package matrix: pivot builder.
//
// Purpose:
//   - Build a square, label-indexed lookup matrix from row-wise
//     (id_1, id_2, value) triples.
//
// Contract:
//   - The label set is the sorted union of ids seen in either identifier
//     column; missing combinations take the explicit fill value; the
//     diagonal is forced to 0 unless WithKeepDiagonal is set.
//   - Duplicate (a, b) rows overwrite in input order (last-write-wins).

package matrix

import (
	"sort"

	"github.com/katalvlaran/tolltab/table"
)

const opBuild = "Build"

// Build pivots (id_1, id_2, value) triples into a Labeled matrix.
//
// Stage 1 (Validate): resolve the two identifier columns and the value
// column; absent columns surface table.ErrMissingColumn immediately.
// Stage 2 (Prepare): collect the distinct ids of both roles; sort; allocate
// the matrix and pre-fill every cell with the configured fill value.
// Stage 3 (Execute): write each row's value at (id_1, id_2) in input order.
// Stage 4 (Finalize): force the diagonal to 0 (unless disabled).
//
// Zero-row input yields an empty 0×0 matrix, nil error.
// Determinism: sorted ascending label order; fixed input-order writes.
// Complexity: O(e + n log n + n²) time, O(n²) space.
func Build(t *table.Table, opts ...Option) (*Labeled, error) {
	o := gatherOptions(opts...)

	// Stage 1: resolve contract columns.
	ids1, err := t.Label(o.id1)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}
	ids2, err := t.Label(o.id2)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}
	vals, err := t.Float(o.val)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	// Stage 2: distinct ids of either role, sorted ascending.
	seen := make(map[string]struct{}, len(ids1)+len(ids2))
	for _, id := range ids1 {
		seen[id] = struct{}{}
	}
	for _, id := range ids2 {
		seen[id] = struct{}{}
	}
	labels := make([]string, 0, len(seen))
	for id := range seen {
		labels = append(labels, id)
	}
	sort.Strings(labels)

	m, err := NewLabeled(labels)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	// Pre-fill with the explicit default value (skip when it is the zero
	// value the allocation already produced).
	if o.fill != 0 {
		for i := range m.data {
			m.data[i] = o.fill
		}
	}

	// Stage 3: input-order writes; duplicates overwrite (last-write-wins).
	for r := range vals {
		if err = m.Set(ids1[r], ids2[r], vals[r]); err != nil {
			return nil, matrixErrorf(opBuild, err) // unreachable: ids came from the union
		}
	}

	// Stage 4: forced-zero diagonal.
	if o.zeroDiag {
		n := len(m.labels)
		for i := 0; i < n; i++ {
			m.data[i*n+i] = 0
		}
	}

	return m, nil
}
