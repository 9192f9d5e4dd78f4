// SPDX-License-Identifier: MIT
// Package matrix: matrix → edge-list unrolling.
//
// Purpose:
//   - Flatten a square Labeled matrix back into edge-list (unrolled) form:
//     one row per ordered pair (i, j), i ≠ j.
//
// Contract:
//   - Both (i, j) and (j, i) rows are emitted; no symmetry is assumed or
//     enforced on output.
//   - Row order is deterministic: i outer, j inner, sorted label order.

package matrix

import "github.com/katalvlaran/tolltab/table"

const opUnroll = "Unroll"

// Unroll emits one row per ordered label pair (i, j), i ≠ j, with the
// looked-up cell value as distance. Output columns default to
// id_start / id_end / distance (override via WithUnrollColumns).
//
// An empty (0×0) matrix yields an empty, well-typed table.
// Errors: ErrNilMatrix. Complexity: O(n²) time and space.
func Unroll(m *Labeled, opts ...Option) (*table.Table, error) {
	if m == nil {
		return nil, matrixErrorf(opUnroll, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	n := len(m.labels)
	pairs := n * (n - 1)

	starts := make([]string, 0, pairs)
	ends := make([]string, 0, pairs)
	dists := make([]float64, 0, pairs)

	var i, j int
	for i = 0; i < n; i++ { // outer: start label, sorted order
		for j = 0; j < n; j++ { // inner: end label, sorted order
			if i == j {
				continue // no self-pairs
			}
			starts = append(starts, m.labels[i])
			ends = append(ends, m.labels[j])
			dists = append(dists, m.data[i*n+j])
		}
	}

	out, err := table.New(
		table.Label(o.start, starts),
		table.Label(o.end, ends),
		table.Float(o.dist, dists),
	)
	if err != nil {
		return nil, matrixErrorf(opUnroll, err) // unreachable: columns are rectangular
	}

	return out, nil
}
