// Package classify provides row- and group-selection transforms over
// tolltab tables: value binning into ordered categories, mean-based
// threshold selection, and relative tolerance-band filtering.
//
// All transforms are pure single-pass computations with deterministic
// output order (sorted labels, ascending row indices, sorted group keys).
// Aggregates (means) are computed with gonum's stat package.
//
// Errors (sentinel):
//
//	– ErrUndefinedAggregate if a mean is requested over an empty or
//	  reference-less selection; surfaced explicitly rather than letting a
//	  NaN comparison silently select nothing.
//	– ErrBadTolerance      if a tolerance fraction is negative or non-finite.
//
// Column-absence conditions surface table.ErrMissingColumn unchanged.
package classify
