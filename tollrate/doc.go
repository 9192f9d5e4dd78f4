// Package tollrate derives toll-rate columns from edge-record distances.
//
// Two transforms:
//
//   - AddVehicleRates appends one column per vehicle category (moto, car,
//     rv, bus, truck), each equal to distance × a fixed coefficient, with
//     row order and existing columns preserved.
//   - ExpandTimeWindows expands each unique (id_start, id_end) pair into
//     one row per (day, time-window) combination — three discounted
//     sub-windows per weekday, one whole-day window per weekend day,
//     17 rows per pair — scaling the pair's mean distance by the window's
//     discount factor.
//
// Both are pure: the input table is never mutated. Coefficients, window
// bounds and discount factors are package-level constants (single source
// of truth). Aggregates use gonum's stat package.
package tollrate
