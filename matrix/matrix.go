// SPDX-License-Identifier: MIT

// Package matrix - the Matrix value and its read-side surface.
//
// Purpose:
//   - Hold the validated rows×cols grid behind an immutable-shape type.
//   - Provide safe, comma-ok accessors (Get, Find) that never panic.
//   - Provide the shape-compatibility predicate (Verify) used by arithmetic.
//   - Render the pipe-delimited textual form via fmt.Stringer.
//
// Complexity quicksheet:
//   - Rows/Cols/Get/Verify: O(1); Find: O(r*c); Clone/Equal/Data/String: O(r*c).
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- formatting literals ----------

const (
	renderRowOpen  = "|"  // opens every rendered row
	renderRowClose = "|"  // closes every rendered row
	renderCellSep  = " "  // separates values within a row
	renderRowSep   = "\n" // separates rows
	renderEmpty    = "||" // zero-dimension render
)

// Matrix is a dense, rectangular, row-major grid of float64 values.
// rows and cols are fixed at construction; data holds exactly rows slices
// of exactly cols cells each. Builder.Done is the only path that
// establishes this invariant, and nothing re-checks it afterwards — cell
// values may be overwritten in place by operations that own the value, but
// shape never changes post-construction.
//
// The one sanctioned exception is the placeholder from New, which reports
// a 1×1 shape over an empty grid; see New for its contract.
type Matrix struct {
	rows int         // number of rows, fixed post-construction
	cols int         // number of columns, fixed post-construction
	data [][]float64 // row-major cells; len == rows, each row len == cols
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New returns a fixed placeholder matrix: it reports a 1×1 shape but holds
// no data rows, bypassing validation. It is NOT general-purpose — Get
// misses every index, String renders "", and arithmetic rejects it with
// ErrInvalidOperation. Use NewBuilder for any matrix meant to hold values:
//
//	m, err := matrix.NewBuilder().Done() // genuine 1×1 zero matrix
func New() *Matrix {
	return &Matrix{rows: 1, cols: 1, data: nil}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols
}

// Get returns the cell at (row, col) and true, or 0 and false when either
// index falls outside the matrix. Negative indices miss like any other
// out-of-range index; a miss is a valid empty result, not an error.
// Complexity: O(1).
func (m *Matrix) Get(row, col int) (float64, bool) {
	// Bounds check against the declared shape.
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, false
	}
	// Placeholder state: declared shape without backing rows.
	if row >= len(m.data) {
		return 0, false
	}

	return m.data[row][col], true
}

// Find scans in row-major order and returns the coordinates of the first
// cell bit-for-bit equal to value, plus true. Absent values — including
// NaN, which compares unequal to everything — yield (0, 0, false).
// Complexity: O(r*c) worst case.
func (m *Matrix) Find(value float64) (row, col int, ok bool) {
	var i, j int
	for i = 0; i < len(m.data); i++ { // fixed row-major scan order
		for j = 0; j < len(m.data[i]); j++ {
			if m.data[i][j] == value {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// Verify reports whether an arithmetic operation with other is
// shape-compatible. isMult selects the check:
//
//   - additive (isMult=false): both shapes must be identical; symmetric.
//   - multiplicative (isMult=true): compares m.rows against other.cols,
//     i.e. the condition under which other×m is computable. The check is
//     deliberately kept in this exact orientation and is NOT symmetric.
//
// Pure predicate: no side effects, no error path. A nil other is never
// compatible.
// Complexity: O(1).
func (m *Matrix) Verify(isMult bool, other *Matrix) bool {
	if other == nil {
		return false
	}
	if isMult {
		return m.rows == other.cols
	}

	return m.rows == other.rows && m.cols == other.cols
}

// Equal reports whether both matrices have the same shape and bit-for-bit
// identical cells. NaN cells compare unequal, so a matrix containing NaN
// is never Equal to anything, itself included.
// Complexity: O(r*c).
func (m *Matrix) Equal(other *Matrix) bool {
	// Shape first; reuse the additive compatibility predicate.
	if !m.Verify(false, other) {
		return false
	}
	// Placeholder grids must agree in length as well.
	if len(m.data) != len(other.data) {
		return false
	}
	for i := range m.data {
		for j := range m.data[i] {
			if m.data[i][j] != other.data[i][j] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy with independent storage.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	if m.data == nil {
		return &Matrix{rows: m.rows, cols: m.cols}
	}
	data := make([][]float64, len(m.data))
	for i, row := range m.data {
		data[i] = make([]float64, len(row))
		copy(data[i], row)
	}

	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Data returns a deep copy of the backing rows. The copy keeps callers
// from aliasing the validated interior; mutating it never affects m.
// Complexity: O(r*c).
func (m *Matrix) Data() [][]float64 {
	return m.Clone().data
}

// formatCell renders a single value as its shortest round-trip decimal
// form, without exponents, so 1.0 renders "1" and 0.5 renders "0.5".
func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String renders the matrix as pipe-delimited rows: values separated by
// single spaces, rows separated by newlines, e.g. "|1 2|\n|3 4|". A
// zero-dimension matrix renders as the two-character sequence "||"; the
// placeholder from New renders as the empty string. This format is stable
// and safe for consumers to parse or compare.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	if m.rows == 0 || m.cols == 0 {
		return renderEmpty
	}

	var sb strings.Builder
	for i, row := range m.data {
		sb.WriteString(renderRowOpen)
		for j, v := range row {
			sb.WriteString(formatCell(v))
			if j < m.cols-1 {
				sb.WriteString(renderCellSep)
			}
		}
		sb.WriteString(renderRowClose)
		if i < m.rows-1 {
			sb.WriteString(renderRowSep)
		}
	}

	return sb.String()
}
