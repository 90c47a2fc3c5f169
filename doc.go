// Package densemat is a small, dependable home for dense, rectangular,
// real-valued matrices with validated construction and elementwise
// arithmetic.
//
// What densemat brings:
//
//   - Validated construction: a staged Builder accumulates a shape and
//     optional cell data, then checks everything exactly once at Done()
//   - Predictable arithmetic: operations verify shape compatibility up
//     front and return sentinel errors instead of panicking or truncating
//   - A closed error taxonomy, matched with errors.Is — never message text
//   - Pure Go core — no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	matrix/ — the Matrix value, its Builder, accessors, arithmetic and codec
//
// Quick sketch:
//
//	m, err := matrix.NewBuilder().
//		Rows(2).Cols(2).
//		Data([][]float64{{1, 2}, {3, 4}}).
//		Done()
//
// Dive into the matrix package documentation and its examples for the full
// surface and the finalization rules.
//
//	go get github.com/denselab/densemat/matrix
package densemat
