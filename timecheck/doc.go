// Package timecheck verifies the day/time coverage of recorded intervals
// per composite (id, id_2) pair.
//
// Each row carries a start day string and a start time string; the checker
// parses them into a timestamp and extracts the weekday name and the
// time of day. A pair is "complete" iff, over all its rows,
//
//   - the set of distinct weekdays equals the full seven-day week, AND
//   - the set of distinct start times equals every second-granularity
//     value from 00:00:00 to 23:59:59 inclusive (86400 distinct values).
//
// The second condition is an exact set-equality check by design: it is
// only satisfiable when input rows are supplied at one-second density.
// Sampled real-world data will essentially always report incomplete —
// that strictness is intentional and part of the contract, not a bug to
// relax here.
//
// Parse failures (a day/time string that fits no configured layout) are
// not errors: the row becomes a null observation that marks its pair
// incomplete while the rest of the computation proceeds.
//
// Results are returned in first-appearance order of the composite key.
package timecheck
