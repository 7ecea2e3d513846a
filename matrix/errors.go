// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (optionally wrapped with a
// "<tag>: %w" context) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap once, at the detection site; callers still
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> row -> column -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive or that rows*cols overflows int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrAllocationFailed indicates that the backing buffer could not be allocated.
	ErrAllocationFailed = errors.New("matrix: allocation failed")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Multiply
	// where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadRowNumber indicates a 1-based row index outside 1..Rows().
	ErrBadRowNumber = errors.New("matrix: bad row number")

	// ErrBadColNumber indicates a 1-based column index outside 1..Cols().
	ErrBadColNumber = errors.New("matrix: bad column number")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
