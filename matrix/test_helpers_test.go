// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep all data finite unless a test is explicitly about NaN/Inf.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fmatrix/matrix"
)

// MustNew ALLOCATES an r×c *Matrix (identity when square, zeros otherwise)
// or fails the test.
func MustNew(t testing.TB, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromData BUILDS an r×c *Matrix from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c (fatal otherwise).
//   - Stage 2: New + Init.
//
// Notes:
//   - Prefer for small exact-equality tests.
func MustFromData(t testing.TB, r, c int, vals []float32) *matrix.Matrix {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("MustFromData: want %d values, got %d", r*c, len(vals))
	}
	m := MustNew(t, r, c)
	m.Init(vals)

	return m
}

// MustCell reads the 1-based (row,col) cell or fails the test.
func MustCell(t testing.TB, m *matrix.Matrix, row, col int) float32 {
	t.Helper()
	v, err := m.GetCell(row, col)
	if err != nil {
		t.Fatalf("GetCell(%d,%d): %v", row, col, err)
	}

	return v
}

// RandFilled RETURNS a new r×c matrix filled with deterministic U(-1,1) values.
// Determinism:
//   - Deterministic per seed; values are drawn row-major.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float32, r*c)
	for i := range vals {
		vals[i] = rng.Float32()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}

	return MustFromData(t, r, c, vals)
}

// Seq RETURNS the values 1..n as float32, handy for row-major fixtures.
func Seq(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i + 1)
	}

	return out
}
