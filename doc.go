// Package fmatrix is a small dense-matrix library over float32 values.
//
// What is fmatrix?
//
//	A leaf utility; the matrix package itself imports only the standard library:
//		• Matrix: row-major r×c float32 storage with a fixed shape
//		• Construction: identity/zero creation, duplication, row-major init
//		• Accessors: 1-based cell and row get/set with a Status enumeration
//		• Arithmetic: exact equality, in-place scalar multiply, product, transpose
//		• Printing: fixed-width "%8.3f" rendering
//
// Layout:
//
//	matrix/            — the Matrix type and every operation on it
//	internal/cli/      — cobra command tree behind cmd/fmatrix
//	cmd/fmatrix/       — command-line calculator
//	examples/          — runnable programs (power iteration)
//
// Quick example:
//
//	a, _ := matrix.NewFromData(2, 2, []float32{1, 2, 3, 4})
//	b, _ := matrix.NewFromData(2, 2, []float32{5, 6, 7, 8})
//	p, _ := matrix.Multiply(a, b)
//	_ = p.Print(os.Stdout)
//	// 2 rows, 2 columns:
//	//   19.000  22.000
//	//   43.000  50.000
//
//	go get github.com/katalvlaran/fmatrix/matrix
package fmatrix
