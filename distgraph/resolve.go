// SPDX-License-Identifier: MIT
// Package distgraph: edge ingestion + Floyd–Warshall closure.
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over an undirected weighted
//     graph built from edge records, with deterministic loop order.
//
// Contract:
//   - +Inf means "no path"; diagonal is 0; node order is sorted ascending.
//   - Non-negative weights only; the relaxation assumes it.

package distgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/tolltab/matrix"
	"github.com/katalvlaran/tolltab/table"
)

// Operation name constant for unified error wrapping.
const opResolve = "Resolve"

// Resolve builds an undirected weighted graph from the edge table and
// computes all-pairs shortest distances.
//
// Stage 1 (Validate): resolve the id_start/id_end/distance columns; reject
// negative or NaN weights.
// Stage 2 (Prepare): ingest edges bidirectionally under the configured
// duplicate-pair policy; collect the sorted node set.
// Stage 3 (Execute): initialize a flat distance buffer (0 diagonal, +Inf
// off-diagonal, edge weights where present) and run the closure in-place.
// Stage 4 (Finalize): wrap the buffer into a matrix.Labeled.
//
// An empty edge table resolves to an empty 0×0 matrix, nil error.
// Determinism: sorted node order; fixed k→i→j relaxation order.
// Complexity: O(V³) time, O(V²) space.
func Resolve(t *table.Table, opts ...Option) (*matrix.Labeled, error) {
	o := gatherOptions(opts...)

	// Stage 1: resolve contract columns.
	starts, err := t.Label(o.start)
	if err != nil {
		return nil, graphErrorf(opResolve, err)
	}
	ends, err := t.Label(o.end)
	if err != nil {
		return nil, graphErrorf(opResolve, err)
	}
	dists, err := t.Float(o.dist)
	if err != nil {
		return nil, graphErrorf(opResolve, err)
	}

	// Stage 2: bidirectional ingestion under the duplicate-pair policy.
	adj := make(map[string]map[string]float64)
	for r, w := range dists {
		if w < 0 || math.IsNaN(w) {
			return nil, graphErrorf(opResolve,
				fmt.Errorf("row %d (%s→%s, %g): %w", r, starts[r], ends[r], w, ErrNegativeWeight))
		}
		if err = insert(adj, starts[r], ends[r], w, o.conflict); err != nil {
			return nil, graphErrorf(opResolve, fmt.Errorf("row %d: %w", r, err))
		}
		if err = insert(adj, ends[r], starts[r], w, o.conflict); err != nil {
			return nil, graphErrorf(opResolve, fmt.Errorf("row %d: %w", r, err))
		}
	}

	// Sorted node set; ingestion covered both edge roles.
	labels := make([]string, 0, len(adj))
	for id := range adj {
		labels = append(labels, id)
	}
	sort.Strings(labels)

	n := len(labels)
	if n == 0 {
		return matrix.NewLabeled(nil) // empty input → empty matrix, not an error
	}

	// Stage 3: flat row-major distance buffer.
	// diag = 0; off-diagonal = +Inf unless a direct edge exists.
	inf := math.Inf(1)
	data := make([]float64, n*n)
	offset := make(map[string]int, n)
	for i, l := range labels {
		offset[l] = i
	}
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			if i != j {
				data[base+j] = inf
			}
		}
	}
	for u, row := range adj {
		for v, w := range row {
			data[offset[u]*n+offset[v]] = w
		}
	}

	floydWarshallInPlace(data, n)

	// Stage 4: wrap into a labeled matrix.
	m, err := matrix.NewLabeled(labels)
	if err != nil {
		return nil, graphErrorf(opResolve, err) // unreachable: labels came from a set
	}
	if err = m.Fill(data); err != nil {
		return nil, graphErrorf(opResolve, err) // unreachable: buffer is n*n
	}

	return m, nil
}

// insert writes one directed half of an undirected edge into adj, merging
// duplicates per policy. Called twice per record (u→v and v→u), so both
// directions always agree.
func insert(adj map[string]map[string]float64, u, v string, w float64, p ConflictPolicy) error {
	row, ok := adj[u]
	if !ok {
		row = make(map[string]float64)
		adj[u] = row
	}

	prev, dup := row[v]
	if !dup {
		row[v] = w

		return nil
	}

	switch p {
	case MinWins:
		if w < prev {
			row[v] = w
		}
	case ErrorOnConflict:
		if w != prev {
			return fmt.Errorf("pair (%s,%s): %g vs %g: %w", u, v, prev, w, ErrEdgeConflict)
		}
	default: // LastWriteWins
		row[v] = w
	}

	return nil
}

// floydWarshallInPlace runs the APSP closure on a flat row-major n×n
// buffer in-place.
//
// Policy (assumed by the caller):
//   - +Inf denotes "no path" off-diagonal.
//   - The diagonal is 0 before calling (distance to self).
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n³); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(data []float64, n int) {
	// Predeclare loop counters and temporaries; nothing allocates below.
	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, ij, kj   float64 // distances d[i,k], d[i,j], d[k,j]
		cand         float64 // candidate path length via k
	)

	for k = 0; k < n; k++ { // outer: pick intermediate node k
		baseK = k * n // compute once per k

		for i = 0; i < n; i++ { // middle: source node i
			ik = data[i*n+k]       // current shortest distance i→k
			if math.IsInf(ik, 1) { // if i cannot reach k,
				continue // no path via k can improve i→j
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination node j
				kj = data[baseK+j]     // current shortest distance k→j
				if math.IsInf(kj, 1) { // if k cannot reach j,
					continue // skip candidate computation
				}
				ij = data[baseI+j]
				cand = ik + kj // candidate path length via k
				if cand < ij { // strict improvement only (deterministic tie rule)
					data[baseI+j] = cand
				}
			}
		}
	}
}
