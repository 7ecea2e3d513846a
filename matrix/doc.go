// SPDX-License-Identifier: MIT

// Package matrix offers a small dense matrix of float32 values.
//
// The matrix package provides:
//
//   - Matrix, a row-major r×c container with a fixed shape and one
//     contiguous backing slice (offset = i*cols + j).
//   - Construction: New (identity when square, zeros otherwise),
//     NewIdentity, NewFromData, Duplicate, Init, Destroy.
//   - 1-based accessors: GetCell, SetCell, GetRow, SetRow, reporting
//     ErrBadRowNumber / ErrBadColNumber and the Status enumeration.
//   - Arithmetic: Equals (exact), ScalarMultiply (in place), Multiply and
//     Transpose (fresh results).
//   - Print, a fixed-width text rendering ("%8.3f" per cell).
//
// Ownership is exclusive: every constructor-style call returns a matrix
// that shares no storage with any other live matrix.
//
// Nothing here is safe for concurrent mutation; callers synchronize.
package matrix
