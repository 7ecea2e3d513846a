// SPDX-License-Identifier: MIT

// Package matrix - 1-based element accessors.
//
// Purpose:
//   - Translate PUBLIC 1-based (row, col) into 0-based storage offsets, here and only here.
//   - Report index failures as wrapped ErrBadRowNumber / ErrBadColNumber (see StatusOf).
//   - Leave the matrix untouched when a call fails.
//
// Buffers passed to GetRow/SetRow must hold at least Cols() values; that
// length is a caller precondition and is not validated.

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxGetCell = "GetCell"
	ctxSetCell = "SetCell"
	ctxGetRow  = "GetRow"
	ctxSetRow  = "SetRow"
)

// accessorErrorf wraps an index sentinel with the accessor name and coordinates.
func accessorErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// accessorRowErrorf is accessorErrorf for whole-row accessors.
func accessorRowErrorf(method string, row int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, row, err)
}

// GetCell returns the value at 1-based (row, col).
//
// Errors:
//   - ErrBadRowNumber when row is outside 1..Rows() (checked first).
//   - ErrBadColNumber when col is outside 1..Cols().
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(1).
func (m *Matrix) GetCell(row, col int) (float32, error) {
	if m == nil {
		return 0, accessorErrorf(ctxGetCell, row, col, ErrNilMatrix)
	}
	if err := ValidateCell(m, row, col); err != nil {
		return 0, accessorErrorf(ctxGetCell, row, col, err)
	}

	return m.at(row-1, col-1), nil
}

// SetCell stores v at 1-based (row, col). Same errors as GetCell.
// Complexity: O(1).
func (m *Matrix) SetCell(v float32, row, col int) error {
	if m == nil {
		return accessorErrorf(ctxSetCell, row, col, ErrNilMatrix)
	}
	if err := ValidateCell(m, row, col); err != nil {
		return accessorErrorf(ctxSetCell, row, col, err)
	}
	m.data[m.offset(row-1, col-1)] = v

	return nil
}

// GetRow copies the 1-based row into dst[0:Cols()].
//
// Errors:
//   - ErrBadRowNumber when row is outside 1..Rows().
//
// Complexity: O(c).
func (m *Matrix) GetRow(dst []float32, row int) error {
	if m == nil {
		return accessorRowErrorf(ctxGetRow, row, ErrNilMatrix)
	}
	if err := ValidateRow(m, row); err != nil {
		return accessorRowErrorf(ctxGetRow, row, err)
	}
	src := m.row(row - 1)
	_ = dst[len(src)-1] // precondition: len(dst) >= Cols()
	for j := range src {
		dst[j] = src[j]
	}

	return nil
}

// Row is GetRow with a freshly allocated buffer of length Cols().
// Complexity: O(c).
func (m *Matrix) Row(row int) ([]float32, error) {
	if m == nil {
		return nil, accessorRowErrorf(ctxGetRow, row, ErrNilMatrix)
	}
	out := make([]float32, m.c)
	if err := m.GetRow(out, row); err != nil {
		return nil, err
	}

	return out, nil
}

// SetRow overwrites the 1-based row from src[0:Cols()].
//
// Errors:
//   - ErrBadRowNumber when row is outside 1..Rows().
//
// Complexity: O(c).
func (m *Matrix) SetRow(src []float32, row int) error {
	if m == nil {
		return accessorRowErrorf(ctxSetRow, row, ErrNilMatrix)
	}
	if err := ValidateRow(m, row); err != nil {
		return accessorRowErrorf(ctxSetRow, row, err)
	}
	dst := m.row(row - 1)
	_ = src[len(dst)-1] // precondition len(src) >= Cols(); fails before any write
	for j := range dst {
		dst[j] = src[j]
	}

	return nil
}
