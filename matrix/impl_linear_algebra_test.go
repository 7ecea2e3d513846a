// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Equals, ScalarMultiply,
// Multiply and Transpose.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestMultiply2x2(t *testing.T) {
	a := MustFromData(t, 2, 2, []float32{1, 2, 3, 4})
	b := MustFromData(t, 2, 2, []float32{5, 6, 7, 8})

	res, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	// [[1*5+2*7, 1*6+2*8], [3*5+4*7, 3*6+4*8]]
	require.Equal(t, []float32{19, 22, 43, 50}, res.Data())

	// operands untouched
	require.Equal(t, []float32{1, 2, 3, 4}, a.Data())
	require.Equal(t, []float32{5, 6, 7, 8}, b.Data())
}

func TestMultiplyRectangular(t *testing.T) {
	a := MustFromData(t, 2, 3, Seq(6))             // [[1,2,3],[4,5,6]]
	b := MustFromData(t, 3, 1, []float32{1, 0, 2}) // column vector

	res, err := a.Mul(b)
	require.NoError(t, err)
	rows, cols := res.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 1, cols)
	require.Equal(t, []float32{7, 16}, res.Data())
}

func TestMultiplyDimensionMismatch(t *testing.T) {
	a := MustNew(t, 2, 3)
	b := MustNew(t, 4, 2)

	res, err := matrix.Multiply(a, b)
	require.Nil(t, res)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.EqualError(t, err, "Multiply: (2×3)·(4×2): matrix: dimension mismatch")
}

func TestMultiplyNil(t *testing.T) {
	_, err := matrix.Multiply(nil, MustNew(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Multiply(MustNew(t, 2, 2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMultiplyFloat32Accumulation pins the single-precision running sum:
// 1e8 + 1 - 1e8 is 0 in float32 but 1 with a wider accumulator.
func TestMultiplyFloat32Accumulation(t *testing.T) {
	a := MustFromData(t, 1, 3, []float32{1e8, 1, -1e8})
	b := MustFromData(t, 3, 1, []float32{1, 1, 1})

	res, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, float32(0), MustCell(t, res, 1, 1))
}

// TestMultiplyPropagatesNaN checks that zero entries are not skipped.
func TestMultiplyPropagatesNaN(t *testing.T) {
	a := MustFromData(t, 1, 2, []float32{0, 1})
	b := MustFromData(t, 2, 1, []float32{float32(math.NaN()), 2})

	res, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(MustCell(t, res, 1, 1))))
}

func TestTranspose(t *testing.T) {
	m := MustFromData(t, 2, 3, Seq(6))

	tr := matrix.Transpose(m)
	rows, cols := tr.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, []float32{1, 4, 2, 5, 3, 6}, tr.Data())

	for i := 1; i <= 2; i++ {
		for j := 1; j <= 3; j++ {
			require.Equal(t, MustCell(t, m, i, j), MustCell(t, tr, j, i))
		}
	}

	require.True(t, m.Equals(tr.T()))
	require.Equal(t, Seq(6), m.Data()) // original untouched
}

func TestScalarMultiply(t *testing.T) {
	m := MustFromData(t, 2, 2, []float32{1, -2, 0.5, 0})
	m.ScalarMultiply(2)
	require.Equal(t, []float32{2, -4, 1, 0}, m.Data())

	m.ScalarMultiply(0)
	require.Equal(t, make([]float32, 4), m.Data())
}

func TestEquals(t *testing.T) {
	a := MustFromData(t, 2, 2, []float32{1, 2, 3, 4})
	b := MustFromData(t, 2, 2, []float32{1, 2, 3, 4})
	c := MustFromData(t, 1, 4, []float32{1, 2, 3, 4})
	d := MustFromData(t, 2, 2, []float32{1, 2, 3, 4.0001})

	require.True(t, matrix.Equals(a, a))
	require.True(t, matrix.Equals(a, b))
	require.True(t, matrix.Equals(b, a))
	require.False(t, matrix.Equals(a, c)) // same data, different shape
	require.False(t, matrix.Equals(a, d)) // no tolerance

	require.True(t, matrix.Equals(nil, nil))
	require.False(t, matrix.Equals(a, nil))
	require.False(t, matrix.Equals(nil, a))
}

func TestEqualsSpecialValues(t *testing.T) {
	nan := float32(math.NaN())
	n := MustFromData(t, 1, 1, []float32{nan})
	require.False(t, n.Equals(n)) // NaN != NaN under ==

	negZero := float32(math.Copysign(0, -1))
	z1 := MustFromData(t, 1, 1, []float32{0})
	z2 := MustFromData(t, 1, 1, []float32{negZero})
	require.True(t, z1.Equals(z2))
}
