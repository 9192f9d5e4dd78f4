// Package matrix provides label-indexed dense matrices for tolltab:
// pivoting (id_1, id_2, value) triples into a square lookup matrix,
// conditional elementwise rescaling, and unrolling a matrix back into
// edge-list form.
//
// A Labeled matrix is square by construction: its row and column label
// sets are identical and sorted ascending, giving deterministic iteration
// order everywhere. Storage is a flat row-major []float64 for cache
// friendliness.
//
// Matrices are best for dense or small label sets where O(n²) memory and
// O(n² + e) build time are acceptable.
//
// Invariants maintained by the builders here:
//
//   - result is square; its index set equals its column set;
//   - missing (a, b) combinations take the explicit fill value (default 0);
//   - the diagonal is forced to 0 unless WithKeepDiagonal is set.
//
// Errors (sentinel):
//
//	– ErrNilMatrix         nil *Labeled passed to an operation.
//	– ErrUnknownLabel      a label is not part of the matrix index.
//	– ErrOutOfRange        a positional index is outside [0, N).
//	– ErrDuplicateLabel    duplicate label in construction input.
//	– ErrDimensionMismatch a bulk fill does not match N×N.
//	– ErrAsymmetry         symmetry validation failed within eps.
//	– ErrNonZeroDiagonal   zero-diagonal validation failed within eps.
package matrix
