// Package tolltab is an in-memory toolkit for transforming rectangular
// toll-record datasets — pivoting, binning, filtering, rate derivation,
// time-window expansion and coverage checking.
//
// 🚀 What is tolltab?
//
//	A small, deterministic library of independent tabular transforms:
//		• table:     generic tagged-column container + composite-key grouping
//		• matrix:    label-indexed dense matrices — pivot, unroll, rescale
//		• distgraph: all-pairs shortest distances (Floyd–Warshall) from edge records
//		• classify:  binning, mean-threshold and tolerance-band row selection
//		• tollrate:  per-vehicle toll coefficients and day/time-window discounts
//		• timecheck: per-pair full-week / full-day coverage verification
//
// ✨ Why choose tolltab?
//
//   - Every transform is a pure function — table in, table or collection out
//   - Deterministic by construction: sorted label order, fixed loop order
//   - Explicit error surface — sentinel errors, matched with errors.Is
//   - No I/O, no global state, no hidden configuration
//
// Each subpackage is independently callable and independently testable;
// there is no component-to-component data flow beyond function input and
// output. See the per-package documentation for contracts and complexity.
package tolltab
