// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private storage helpers.
//
// Purpose:
//   - Expose the UNEXPORTED 0-based storage helpers to matrix_test ONLY,
//     so the internal indexing can be tested independently of the 1-based accessors.
//   - Compiled only with `go test` (the _test.go suffix keeps it out of production builds).

var (
	// ExportedOffset exposes (*Matrix).offset for white-box tests.
	ExportedOffset = (*Matrix).offset
	// ExportedAt exposes (*Matrix).at for white-box tests.
	ExportedAt = (*Matrix).at
	// ExportedRowView exposes (*Matrix).row (a view, not a copy) for white-box tests.
	ExportedRowView = (*Matrix).row
)
