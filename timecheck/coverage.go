// SPDX-License-Identifier: MIT
// Package timecheck: per-pair exhaustive day/time coverage verification.
//
// Purpose:
//   - For each composite (id, id_2) key, verify that the recorded start
//     observations cover all seven weekdays and every second of the day.
//
// Determinism:
//   - Groups are evaluated and returned in first-appearance key order;
//     within a group, rows are scanned in ascending index order.

package timecheck

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tolltab/table"
)

const opCheckCoverage = "CheckCoverage"

// Contract column names (case-sensitive).
const (
	ColID        = "id"
	ColID2       = "id_2"
	ColStartDay  = "startDay"
	ColStartTime = "startTime"
)

// SecondsPerDay is the size of the full second-granularity time-of-day
// set a complete pair must cover (00:00:00 through 23:59:59).
const SecondsPerDay = 24 * 60 * 60

// daysPerWeek is the weekday-set size a complete pair must cover.
const daysPerWeek = 7

// PairCoverage is the completeness verdict for one composite key.
type PairCoverage struct {
	// ID and ID2 are the composite key components.
	ID  string
	ID2 string

	// Complete is true iff the pair's observations cover the full week
	// and the full second-granularity day.
	Complete bool
}

// PairKey is the composite (id, id_2) key of a coverage verdict, usable
// as a map key.
type PairKey struct {
	ID  string
	ID2 string
}

// CoverageMap converts a coverage result into its map form for direct
// composite-key lookup. Absent pairs are absent keys.
// Complexity: O(p).
func CoverageMap(results []PairCoverage) map[PairKey]bool {
	m := make(map[PairKey]bool, len(results))
	for _, r := range results {
		m[PairKey{ID: r.ID, ID2: r.ID2}] = r.Complete
	}

	return m
}

// CheckCoverage verifies day/time coverage per composite (id, id_2) pair.
//
// Stage 1 (Validate): resolve the contract columns.
// Stage 2 (Group): bucket rows by composite key, first-appearance order.
// Stage 3 (Execute): per group, parse each row's startDay+startTime;
// parse failures mark the group incomplete (null observation) without
// aborting; accumulate the distinct weekday set and the distinct
// time-of-day second set.
// Stage 4 (Finalize): a group is complete iff it has no null observation,
// all 7 weekdays, and all 86400 distinct seconds.
//
// Zero-row input yields an empty result, nil error.
// Errors: table.ErrMissingColumn.
// Complexity: O(n·L) time for L layouts, O(SecondsPerDay) space per call.
func CheckCoverage(t *table.Table, opts ...Option) ([]PairCoverage, error) {
	o := gatherOptions(opts...)

	days, err := t.Label(ColStartDay)
	if err != nil {
		return nil, fmt.Errorf("timecheck.%s: %w", opCheckCoverage, err)
	}
	times, err := t.Label(ColStartTime)
	if err != nil {
		return nil, fmt.Errorf("timecheck.%s: %w", opCheckCoverage, err)
	}
	groups, err := t.GroupBy(ColID, ColID2)
	if err != nil {
		return nil, fmt.Errorf("timecheck.%s: %w", opCheckCoverage, err)
	}

	out := make([]PairCoverage, 0, len(groups))
	seconds := make([]bool, SecondsPerDay) // reused across groups

	for _, g := range groups {
		// Reset per-group accumulators.
		for i := range seconds {
			seconds[i] = false
		}
		var (
			weekdays [daysPerWeek]bool
			dayCount int
			secCount int
			nullSeen bool
		)

		for _, r := range g.Rows {
			ts, ok := parseTimestamp(days[r], times[r], o.layouts)
			if !ok {
				nullSeen = true // null observation: pair can no longer be complete

				continue
			}

			if d := int(ts.Weekday()); !weekdays[d] {
				weekdays[d] = true
				dayCount++
			}
			sec := ts.Hour()*3600 + ts.Minute()*60 + ts.Second()
			if !seconds[sec] {
				seconds[sec] = true
				secCount++
			}
		}

		out = append(out, PairCoverage{
			ID:       g.Key[0],
			ID2:      g.Key[1],
			Complete: !nullSeen && dayCount == daysPerWeek && secCount == SecondsPerDay,
		})
	}

	return out, nil
}

// parseTimestamp combines a day string and a time string and tries the
// configured layouts in order. Reports ok=false when no layout matches.
func parseTimestamp(day, tod string, layouts []string) (time.Time, bool) {
	combined := day + " " + tod
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, combined); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}
