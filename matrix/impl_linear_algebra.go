// SPDX-License-Identifier: MIT

// Package matrix - arithmetic kernels over *Matrix.
//
// Purpose:
//   - Equality (exact float32 ==), in-place scalar scaling, product, transpose.
//   - Product and transpose always allocate a fresh result; operands are never mutated.
//   - Fixed loop orders so results are bit-reproducible across runs.

package matrix

import (
	"errors"
	"fmt"
)

// ZeroSum is the initial value of every accumulator in Multiply.
const ZeroSum float32 = 0

// opMul tags errors returned by Multiply.
const opMul = "Multiply"

// matrixErrorf wraps an error with an operation tag: "<tag>: <underlying>".
// The result still matches the sentinel through errors.Is.
// Callers must not pass a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equals reports whether a and b have the same shape and every pair of
// corresponding elements compares equal with float32 ==.
//
// Behavior highlights:
//   - No tolerance: 0.1+0.2 style rounding differences make matrices unequal.
//   - NaN is never equal to anything, so a matrix holding NaN is not equal to itself.
//   - +0 and -0 compare equal.
//   - A nil operand is only equal to another nil operand.
//
// Complexity:
//   - Time O(r*c) worst case, early exit on the first difference.
func Equals(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i, v := range a.data {
		if v != b.data[i] {
			return false
		}
	}

	return true
}

// Equals is the method form of the package-level Equals.
func (m *Matrix) Equals(other *Matrix) bool { return Equals(m, other) }

// ScalarMultiply multiplies every element by s in place.
// No allocation; cannot fail on a live matrix.
// Complexity: O(r*c).
func (m *Matrix) ScalarMultiply(s float32) {
	for i := range m.data {
		m.data[i] = s * m.data[i]
	}
}

// Multiply returns the matrix product a×b as a new (a.Rows() × b.Cols()) matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result via New.
//   - Stage 2: for every output cell (i,k) accumulate Σ_j a[i,j]*b[j,k]
//     in a float32 running sum, j ascending, then store it.
//
// Behavior highlights:
//   - Single-precision accumulator: results match a plain float32 loop bit for bit.
//   - No zero skipping, so NaN/Inf operands propagate as IEEE 754 dictates.
//   - Every result cell is overwritten; the identity fill from New is irrelevant.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Multiply(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		if errors.Is(err, ErrDimensionMismatch) {
			err = fmt.Errorf("(%d×%d)·(%d×%d): %w", a.r, a.c, b.r, b.c, err)
		}
		return nil, matrixErrorf(opMul, err)
	}

	res, err := New(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int     // loop iterators
		sum     float32 // per-cell accumulator
		rowA    []float32
	)
	for i = 0; i < a.r; i++ {
		rowA = a.row(i)
		for k = 0; k < b.c; k++ {
			sum = ZeroSum
			for j = 0; j < a.c; j++ {
				// The conversion forces the product to round before the add (no FMA).
				sum += float32(rowA[j] * b.data[j*b.c+k])
			}
			res.data[res.offset(i, k)] = sum
		}
	}

	return res, nil
}

// Mul is the method form of Multiply: m×b.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) { return Multiply(m, b) }

// Transpose returns a new (Cols() × Rows()) matrix with res[j,i] = m[i,j].
// The original matrix is never mutated.
// Complexity: O(r*c) time and space.
func Transpose(m *Matrix) *Matrix {
	res := &Matrix{r: m.c, c: m.r, data: make([]float32, len(m.data))}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// T is the method form of Transpose.
func (m *Matrix) T() *Matrix { return Transpose(m) }
