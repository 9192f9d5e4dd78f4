// SPDX-License-Identifier: MIT
// Package classify: mean-based threshold selection.
//
// Purpose:
//   - Select row indices whose value strictly exceeds a multiple of the
//     column mean (bus-index variant), and route identifiers whose group
//     mean strictly exceeds a fixed threshold (route variant).
//
// Determinism:
//   - Row indices are ascending by construction; qualifying routes are
//     returned in sorted route order.

package classify

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tolltab/table"
)

const (
	opIndexesAboveTwiceMean = "IndexesAboveTwiceMean"
	opRoutesAboveMean       = "RoutesAboveMean"
)

// Threshold policy constants.
const (
	// MeanMultiplier scales the column mean for the bus-index selection:
	// a row qualifies when value > MeanMultiplier × mean.
	MeanMultiplier = 2.0

	// DefaultRouteThreshold is the fixed per-group mean cutoff for the
	// route variant.
	DefaultRouteThreshold = 7.0
)

// IndexesAboveTwiceMean returns the ascending row indices whose value in
// the named column strictly exceeds MeanMultiplier × the column mean.
// NaN values are excluded from the mean; NaN rows never qualify.
//
// The mean over an empty (or all-NaN) column is undefined: such input
// surfaces ErrUndefinedAggregate instead of a silent NaN comparison.
// Errors: table.ErrMissingColumn, ErrUndefinedAggregate.
// Complexity: O(n).
func IndexesAboveTwiceMean(t *table.Table, col string) ([]int, error) {
	vals, err := t.Float(col)
	if err != nil {
		return nil, classifyErrorf(opIndexesAboveTwiceMean, err)
	}
	defined := table.DropNaN(vals)
	if len(defined) == 0 {
		return nil, classifyErrorf(opIndexesAboveTwiceMean, ErrUndefinedAggregate)
	}

	cutoff := MeanMultiplier * stat.Mean(defined, nil)

	var idx []int
	for i, v := range vals {
		if v > cutoff { // strict exceedance only
			idx = append(idx, i)
		}
	}

	return idx, nil
}

// RoutesAboveMean groups rows by the route column, computes each group's
// mean of the value column (NaN values excluded), and returns the routes
// whose mean strictly exceeds the threshold, in sorted route order.
//
// Zero-row input yields an empty result, nil error (there is no aggregate
// to be undefined: no group exists).
// Errors: table.ErrMissingColumn.
// Complexity: O(n + g log g) for g groups.
func RoutesAboveMean(t *table.Table, routeCol, valCol string, threshold float64) ([]string, error) {
	vals, err := t.Float(valCol)
	if err != nil {
		return nil, classifyErrorf(opRoutesAboveMean, err)
	}
	groups, err := t.GroupBy(routeCol)
	if err != nil {
		return nil, classifyErrorf(opRoutesAboveMean, err)
	}

	var routes []string
	for _, g := range groups {
		// Mean over the group's defined values; an all-NaN group has an
		// undefined mean and never qualifies (NaN > threshold is false).
		if stat.Mean(table.DropNaN(table.Gather(vals, g.Rows)), nil) > threshold {
			routes = append(routes, g.Key[0])
		}
	}
	sort.Strings(routes)

	return routes, nil
}
