// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & lifecycle.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Own the storage exclusively: Duplicate/Multiply/Transpose never alias.
//   - Keep the 0-based storage helpers (offset, at) separate from the
//     1-based public accessors (impl_accessors.go).
//
// Complexity quicksheet:
//   - New: O(r*c); Duplicate: O(r*c); Init: O(r*c); Destroy: O(1).

package matrix

import (
	"fmt"
	"math"
	"unsafe"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"         // ctor tag used in error wrappers
	ctxFromDat = "NewFromData" // ctor tag used in error wrappers
)

// maxElements bounds rows*cols so that neither the element count nor its
// byte size overflows int.
const maxElements = math.MaxInt / int(unsafe.Sizeof(float32(0)))

// Matrix is a row-major matrix of float32 values.
//   - r,c hold dimensions (rows, cols), both > 0 for a live matrix.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Matrix struct {
	r, c int       // row and column counts, fixed after construction
	data []float32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an r×c matrix: the identity when rows == cols, zeros otherwise.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and rows*cols <= maxElements;
//     else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (make zero-fills deterministically);
//     a length the runtime refuses becomes ErrAllocationFailed.
//   - Stage 3: when square, write 1 on the main diagonal.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Matrix: newly allocated, owned by the caller.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation, including r*c overflow).
//   - ErrAllocationFailed (buffer larger than the runtime can allocate).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("(%d,%d): %w", rows, cols, ErrInvalidDimensions))
	}
	if rows > maxElements/cols {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("(%d,%d): %w", rows, cols, ErrInvalidDimensions))
	}
	data, err := allocate(rows * cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("(%d,%d): %w", rows, cols, err))
	}
	m := &Matrix{r: rows, c: cols, data: data}
	if rows == cols {
		// Diagonal sits every cols+1 slots in row-major order.
		for i := 0; i < len(m.data); i += cols + 1 {
			m.data[i] = 1
		}
	}

	return m, nil
}

// allocate returns a zeroed buffer of n elements. make panics with a
// runtime.Error when n exceeds the platform allocation limit; that panic is
// reported as ErrAllocationFailed. Exhausting memory is still fatal.
func allocate(n int) (buf []float32, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, ErrAllocationFailed
		}
	}()

	return make([]float32, n), nil
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²).
func NewIdentity(n int) (*Matrix, error) {
	return New(n, n)
}

// NewFromData creates an r×c matrix and initializes it from a row-major slice.
// Unlike Init, the length of data is checked: exactly rows*cols values are required.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity: O(r*c).
func NewFromData(rows, cols int, data []float32) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFromDat,
			fmt.Errorf("want %d values, got %d: %w", rows*cols, len(data), ErrDimensionMismatch))
	}
	m.Init(data)

	return m, nil
}

// Destroy releases the storage owned by m. Using m afterwards is a
// precondition violation; Destroy on a nil *Matrix is a no-op.
func (m *Matrix) Destroy() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// Duplicate returns a deep copy with the same shape and values.
// Independence: mutations of the copy never reach m.
// Complexity: O(r*c).
func (m *Matrix) Duplicate() *Matrix {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// Init overwrites every element from data in row-major order.
// The caller guarantees len(data) >= Rows()*Cols(); the length is not
// validated. A shorter slice leaves the remaining elements untouched.
// Complexity: O(r*c).
func (m *Matrix) Init(data []float32) {
	copy(m.data, data)
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// Data returns a copy of the row-major contents (len == Rows()*Cols()).
func (m *Matrix) Data() []float32 {
	out := make([]float32, len(m.data))
	copy(out, m.data)

	return out
}

// offset is the 0-based row-major offset of (i, j). No bounds check.
func (m *Matrix) offset(i, j int) int { return i*m.c + j }

// at reads the 0-based cell (i, j). No bounds check.
func (m *Matrix) at(i, j int) float32 { return m.data[m.offset(i, j)] }

// row returns the 0-based row i as a subslice of the backing buffer.
func (m *Matrix) row(i int) []float32 {
	start := i * m.c

	return m.data[start : start+m.c]
}
