// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the accessors.
// Errors live in errors.go; Status is the closed outcome enumeration the
// accessor layer maps its errors onto.
package matrix

import "errors"

// Status is the outcome of an element accessor (GetCell, SetCell, GetRow, SetRow).
type Status int

const (
	// Success means the accessor completed.
	Success Status = iota
	// BadRowNumber means the row index was outside 1..Rows().
	BadRowNumber
	// BadColNumber means the column index was outside 1..Cols().
	BadColNumber
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case BadRowNumber:
		return "BadRowNumber"
	case BadColNumber:
		return "BadColNumber"
	default:
		return "Status(unknown)"
	}
}

// StatusOf maps an accessor error onto the Status enumeration.
// nil maps to Success. Row errors take precedence because accessors check
// the row first. Errors that are neither row nor column failures (for
// example ErrNilMatrix) have no Status and report ok == false.
//
// Complexity: O(1).
func StatusOf(err error) (s Status, ok bool) {
	switch {
	case err == nil:
		return Success, true
	case errors.Is(err, ErrBadRowNumber):
		return BadRowNumber, true
	case errors.Is(err, ErrBadColNumber):
		return BadColNumber, true
	default:
		return Success, false
	}
}
