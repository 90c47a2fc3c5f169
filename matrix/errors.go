// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match with errors.Is.

var (
	// ErrInvalidMatrixSize is returned by Builder.Done when the requested
	// shape has zero (or negative) rows or columns. Construction validates
	// the shape before touching any data.
	ErrInvalidMatrixSize = errors.New("matrix: invalid matrix size, rows and columns must be greater than zero")

	// ErrDimensionMismatch indicates incompatible shapes between two
	// operands of an arithmetic operation, e.g. Add over different shapes.
	ErrDimensionMismatch = errors.New("matrix: matrix dimensions do not match")

	// ErrInvalidOperation marks an operation that is not valid for the
	// value it was invoked on, such as arithmetic over the placeholder
	// returned by New.
	ErrInvalidOperation = errors.New("matrix: invalid operation on matrices")

	// ErrDataMismatch is returned by Builder.Done when the supplied data
	// grid does not have exactly the declared rows×cols shape.
	ErrDataMismatch = errors.New("matrix: data must have the same dimensions as the matrix")
)
