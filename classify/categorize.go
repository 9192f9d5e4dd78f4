// SPDX-License-Identifier: MIT
// Package classify: value binning.
//
// Purpose:
//   - Bucket a numeric column into the fixed ordered label set
//     low / medium / high and count occurrences per label.
//
// Contract:
//   - Bins are half-open with right-open boundaries: (-Inf, 15) → low,
//     [15, 25) → medium, [25, +Inf) → high.
//   - NaN source values are excluded from the counts, not zero-filled and
//     not an error.
//   - Only observed labels appear in the result, in sorted label order.

package classify

import (
	"math"
	"sort"

	"github.com/katalvlaran/tolltab/table"
)

const opCountCategories = "CountCategories"

// Category labels and bin boundaries (single source of truth).
const (
	// CategoryLow labels values below BoundaryLowMedium.
	CategoryLow = "low"

	// CategoryMedium labels values in [BoundaryLowMedium, BoundaryMediumHigh).
	CategoryMedium = "medium"

	// CategoryHigh labels values at or above BoundaryMediumHigh.
	CategoryHigh = "high"

	// BoundaryLowMedium is the right-open low/medium bin boundary.
	BoundaryLowMedium = 15.0

	// BoundaryMediumHigh is the right-open medium/high bin boundary.
	BoundaryMediumHigh = 25.0
)

// CategoryCount is one (label, count) pair of the binning result.
type CategoryCount struct {
	// Label is the category name (low / medium / high).
	Label string

	// Count is the number of rows whose value fell into this bin.
	Count int
}

// categorize maps a finite value to its bin label.
func categorize(v float64) string {
	switch {
	case v < BoundaryLowMedium:
		return CategoryLow
	case v < BoundaryMediumHigh:
		return CategoryMedium
	default:
		return CategoryHigh
	}
}

// CountCategories buckets the named numeric column and counts occurrences
// per label.
//
// Stage 1 (Validate): resolve the column (table.ErrMissingColumn on absence).
// Stage 2 (Execute): single pass, binning each finite value; NaN skipped.
// Stage 3 (Finalize): emit observed labels in sorted label order.
//
// The counts always sum to the number of rows with well-defined values.
// Empty input (or all-NaN input) yields an empty result, nil error.
// Complexity: O(n + L log L) for L ≤ 3 labels.
func CountCategories(t *table.Table, col string) ([]CategoryCount, error) {
	vals, err := t.Float(col)
	if err != nil {
		return nil, classifyErrorf(opCountCategories, err)
	}

	counts := make(map[string]int, 3)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue // undefined source value: excluded from counts
		}
		counts[categorize(v)]++
	}

	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	out := make([]CategoryCount, len(labels))
	for i, l := range labels {
		out[i] = CategoryCount{Label: l, Count: counts[l]}
	}

	return out, nil
}

// CategoryMap converts a binning result into its map form for direct
// label lookup. Absent labels are simply absent keys (lookup yields 0).
// Complexity: O(L).
func CategoryMap(counts []CategoryCount) map[string]int {
	m := make(map[string]int, len(counts))
	for _, c := range counts {
		m[c.Label] = c.Count
	}

	return m
}
