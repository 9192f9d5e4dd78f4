// SPDX-License-Identifier: MIT
// Package tollrate: day/time-window expansion.
//
// Purpose:
//   - Expand each unique (id_start, id_end) pair into one row per
//     (day, time-window) combination, scaling the pair's mean distance by
//     the window's discount factor.
//
// Contract:
//   - Monday–Friday (weekday index < 5) carry three sub-windows:
//     [00:00:00, 10:00:00) ×0.8, [10:00:00, 18:00:00) ×1.2,
//     [18:00:00, 23:59:59] ×0.8.
//   - Saturday/Sunday carry one whole-day window ×0.7.
//   - Output cardinality: 5×3 + 2×1 = 17 rows per unique pair.
//
// Determinism:
//   - Pairs are emitted in first-appearance order; days Monday→Sunday;
//     windows in ascending start-time order.

package tollrate

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tolltab/table"
)

const opExpandTimeWindows = "ExpandTimeWindows"

// Contract column names of the expansion.
const (
	ColIDStart   = "id_start"
	ColIDEnd     = "id_end"
	ColStartDay  = "start_day"
	ColStartTime = "start_time"
	ColEndDay    = "end_day"
	ColEndTime   = "end_time"
)

// WindowsPerPair is the fixed output cardinality per unique id pair.
const WindowsPerPair = 17

// timeWindow is one discounted time span within a day.
type timeWindow struct {
	start  string  // inclusive lower bound, "15:04:05"
	end    string  // upper bound, "15:04:05" (open on weekdays except the last)
	factor float64 // discount multiplier applied to the pair's mean distance
}

// weekdayWindows are the Monday–Friday sub-windows, ascending start order.
var weekdayWindows = []timeWindow{
	{start: "00:00:00", end: "10:00:00", factor: 0.8},
	{start: "10:00:00", end: "18:00:00", factor: 1.2},
	{start: "18:00:00", end: "23:59:59", factor: 0.8},
}

// weekendWindows is the single whole-day Saturday/Sunday window.
var weekendWindows = []timeWindow{
	{start: "00:00:00", end: "23:59:59", factor: 0.7},
}

// dayNames indexes weekday names Monday→Sunday; index < 5 is a weekday.
var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ExpandTimeWindows expands each unique (id_start, id_end) pair into its
// 17 (day, window) rows with distance = pair mean distance × factor; the
// pair mean is taken over the pair's defined distances (NaN excluded).
//
// Stage 1 (Validate): resolve the contract columns.
// Stage 2 (Group): bucket rows by pair in first-appearance order.
// Stage 3 (Execute): per pair and per day emit the day's windows, same day
// name for start and end (windows never cross midnight).
//
// Zero-row input yields a zero-row table carrying all seven output columns.
// Errors: table.ErrMissingColumn.
// Complexity: O(n + 17·p) for p unique pairs.
func ExpandTimeWindows(t *table.Table) (*table.Table, error) {
	dists, err := t.Float(ColDistance)
	if err != nil {
		return nil, fmt.Errorf("tollrate.%s: %w", opExpandTimeWindows, err)
	}
	groups, err := t.GroupBy(ColIDStart, ColIDEnd)
	if err != nil {
		return nil, fmt.Errorf("tollrate.%s: %w", opExpandTimeWindows, err)
	}

	rows := len(groups) * WindowsPerPair
	var (
		starts     = make([]string, 0, rows)
		ends       = make([]string, 0, rows)
		startDays  = make([]string, 0, rows)
		startTimes = make([]string, 0, rows)
		endDays    = make([]string, 0, rows)
		endTimes   = make([]string, 0, rows)
		amounts    = make([]float64, 0, rows)
	)

	for _, g := range groups {
		// Pair mean over defined distances only; a lone NaN row must not
		// poison the pair's 17 windows. An all-NaN pair stays NaN.
		mean := stat.Mean(table.DropNaN(table.Gather(dists, g.Rows)), nil)

		for day := 0; day < len(dayNames); day++ {
			windows := weekdayWindows
			if day >= 5 {
				windows = weekendWindows
			}
			for _, w := range windows {
				starts = append(starts, g.Key[0])
				ends = append(ends, g.Key[1])
				startDays = append(startDays, dayNames[day])
				startTimes = append(startTimes, w.start)
				endDays = append(endDays, dayNames[day])
				endTimes = append(endTimes, w.end)
				amounts = append(amounts, mean*w.factor)
			}
		}
	}

	out, err := table.New(
		table.Label(ColIDStart, starts),
		table.Label(ColIDEnd, ends),
		table.Label(ColStartDay, startDays),
		table.Label(ColStartTime, startTimes),
		table.Label(ColEndDay, endDays),
		table.Label(ColEndTime, endTimes),
		table.Float(ColDistance, amounts),
	)
	if err != nil {
		return nil, fmt.Errorf("tollrate.%s: %w", opExpandTimeWindows, err) // unreachable: rectangular
	}

	return out, nil
}
