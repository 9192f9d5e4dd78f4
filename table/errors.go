// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// table package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. Context is added with fmt.Errorf("Op: %w", ErrX)
// at the outer boundary.

package table

import "errors"

var (
	// ErrMissingColumn indicates that a referenced column name is absent
	// from the table. Column names are case-sensitive contract.
	ErrMissingColumn = errors.New("table: missing column")

	// ErrKindMismatch indicates that a column was accessed with the wrong
	// kind (e.g., Float on a label column).
	ErrKindMismatch = errors.New("table: column kind mismatch")

	// ErrColumnLength indicates that columns passed to New disagree on
	// length; a Table is rectangular by construction.
	ErrColumnLength = errors.New("table: column length mismatch")

	// ErrDuplicateColumn indicates that two constructed columns share a name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrRowOutOfRange indicates that a row selection referenced an index
	// outside [0, Len).
	ErrRowOutOfRange = errors.New("table: row index out of range")
)
