// SPDX-License-Identifier: MIT
// Package classify: relative tolerance-band filtering.
//
// Purpose:
//   - Select unrolled-edge rows whose distance lies within a relative
//     percentage band of a reference start-id's average distance.
//
// Contract:
//   - The reference's own rows are never part of the result.
//   - The band is inclusive at both bounds.

package classify

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tolltab/table"
)

const opWithinTolerance = "WithinTolerance"

// Tolerance-band defaults and contract column names.
const (
	// DefaultTolerance is the relative band half-width (10%).
	DefaultTolerance = 0.10

	// ColIDStart is the start-identifier column of an unrolled edge table.
	ColIDStart = "id_start"

	// ColDistance is the distance column of an unrolled edge table.
	ColDistance = "distance"
)

// WithinTolerance selects the rows of an unrolled edge table whose
// distance lies within [(1−pct)·avg, (1+pct)·avg], where avg is the mean
// distance of rows with id_start == reference. Rows belonging to the
// reference itself are always excluded.
//
// Stage 1 (Validate): resolve columns; reject negative/non-finite pct.
// Stage 2 (Aggregate): mean distance of the reference's rows, NaN
// distances excluded; no finite matching rows → ErrUndefinedAggregate
// (the average is undefined).
// Stage 3 (Execute): select qualifying non-reference rows in input order.
//
// Errors: table.ErrMissingColumn, ErrBadTolerance, ErrUndefinedAggregate.
// Complexity: O(n) time, O(n) space for the row subset.
func WithinTolerance(t *table.Table, reference string, pct float64) (*table.Table, error) {
	if pct < 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return nil, classifyErrorf(opWithinTolerance, ErrBadTolerance)
	}

	starts, err := t.Label(ColIDStart)
	if err != nil {
		return nil, classifyErrorf(opWithinTolerance, err)
	}
	dists, err := t.Float(ColDistance)
	if err != nil {
		return nil, classifyErrorf(opWithinTolerance, err)
	}

	// Stage 2: reference average over finite distances only; NaN reference
	// distances are excluded so they cannot poison the band.
	var refDists []float64
	for i, s := range starts {
		if s == reference && !math.IsNaN(dists[i]) {
			refDists = append(refDists, dists[i])
		}
	}
	if len(refDists) == 0 {
		return nil, classifyErrorf(opWithinTolerance, ErrUndefinedAggregate)
	}
	avg := stat.Mean(refDists, nil)

	lower := (1 - pct) * avg
	upper := (1 + pct) * avg

	// Stage 3: inclusive band, reference rows excluded.
	var rows []int
	for i, s := range starts {
		if s == reference {
			continue
		}
		if dists[i] >= lower && dists[i] <= upper {
			rows = append(rows, i)
		}
	}

	out, err := t.Select(rows)
	if err != nil {
		return nil, classifyErrorf(opWithinTolerance, err) // unreachable: rows are in range
	}

	return out, nil
}
