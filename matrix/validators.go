// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep accessors and kernels minimal by delegating nil/shape/index checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Index validators take PUBLIC 1-based indices.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, then ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateRow checks a 1-based row index against 1..Rows().
//
// Both bounds are enforced: row 0 and negative rows are rejected with the
// same sentinel as rows past the end.
// Complexity: O(1).
func ValidateRow(m *Matrix, row int) error {
	if row < 1 || row > m.r {
		return ErrBadRowNumber
	}

	return nil
}

// ValidateCol checks a 1-based column index against 1..Cols().
// Complexity: O(1).
func ValidateCol(m *Matrix, col int) error {
	if col < 1 || col > m.c {
		return ErrBadColNumber
	}

	return nil
}

// ValidateCell checks (row, col) in the documented priority: row first.
// Complexity: O(1).
func ValidateCell(m *Matrix, row, col int) error {
	if err := ValidateRow(m, row); err != nil {
		return err
	}

	return ValidateCol(m, col)
}
