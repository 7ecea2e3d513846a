// SPDX-License-Identifier: MIT

// Package matrix - fixed-width text rendering.
//
// Format (bit-exact, relied upon by golden tests):
//
//	M rows, N columns:
//	     v11     v12 ...     v1N
//	     ...
//	     vM1     vM2 ...     vMN
//
// Each vIJ is "%8.3f": right-aligned in an 8-character field with three
// fractional digits. Fields are concatenated with no separator; values that
// need more than 8 characters widen their field.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader = "%d rows, %d columns:\n"
	_fmtCell   = "%8.3f"
	_fmtRowEnd = '\n'
)

// Print writes m to w in the fixed-width format described above.
// Output is buffered and flushed once; the first write error is returned.
// Complexity: O(r*c).
func (m *Matrix) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := m.render(bw); err != nil {
		return err
	}

	return bw.Flush()
}

// String implements fmt.Stringer with the same text as Print.
func (m *Matrix) String() string {
	var sb strings.Builder
	_ = m.render(&sb) // strings.Builder never fails

	return sb.String()
}

// stringWriter is the subset of *bufio.Writer and *strings.Builder render needs.
type stringWriter interface {
	io.Writer
	WriteByte(c byte) error
}

func (m *Matrix) render(w stringWriter) error {
	if _, err := fmt.Fprintf(w, _fmtHeader, m.r, m.c); err != nil {
		return err
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if _, err := fmt.Fprintf(w, _fmtCell, m.at(i, j)); err != nil {
				return err
			}
		}
		if err := w.WriteByte(_fmtRowEnd); err != nil {
			return err
		}
	}

	return nil
}
