// Package matrix provides a dense, rectangular float64 matrix with
// validated construction and elementwise arithmetic.
//
// The package provides:
//
//   - Builder: a staged constructor — Rows/Cols/Data accumulate freely and
//     Done() validates exactly once, yielding a *Matrix or a sentinel error.
//   - Read accessors: Get (comma-ok cell lookup), Find (first row-major
//     occurrence of a value), Rows/Cols, Clone, Equal and Data.
//   - Verify: the shape-compatibility predicate shared by all arithmetic.
//   - Add: elementwise addition returning a fresh matrix.
//   - A JSON codec whose decode path re-validates through the Builder.
//
// A Matrix produced by Done() always satisfies rows > 0, cols > 0 and a
// data grid of exactly rows×cols cells; the invariant is established once
// at construction and never re-checked. Shape is immutable afterwards.
//
// All failures surface as the package's sentinel errors (ErrInvalidMatrixSize,
// ErrDataMismatch, ErrDimensionMismatch, ErrInvalidOperation) and are matched
// with errors.Is. No operation panics on user-triggered conditions.
//
// See the examples in this package for usage patterns.
package matrix
