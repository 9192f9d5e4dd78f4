// Package table defines the shared tabular data model for tolltab:
// a generic tagged-column container (an ordered sequence of named,
// homogeneously typed columns of equal length) plus composite-key grouping.
//
// A Table is immutable through its public surface: every derivation
// (WithFloat, Select, Clone) returns a new Table and never mutates the
// receiver. Column value slices returned by Float/Label are direct views
// into the backing storage for performance; callers must not mutate them.
//
// Grouping maps a composite key (one or more column names) to the list of
// row indices carrying that key, preserving first-appearance group order
// so that downstream iteration is deterministic.
//
// Errors (sentinel):
//
//	– ErrMissingColumn   if a referenced column name is absent.
//	– ErrKindMismatch    if a column is accessed with the wrong kind.
//	– ErrColumnLength    if constructed columns disagree on length.
//	– ErrDuplicateColumn if two constructed columns share a name.
//	– ErrRowOutOfRange   if a row selection references an invalid index.
//
// All errors are matched via errors.Is; no operation panics on
// user-triggered conditions.
package table
