// SPDX-License-Identifier: MIT

// Package matrix - elementwise arithmetic kernels.
//
// Purpose:
//   - Binary operations over two Matrix values, gated by Verify and
//     producing a fresh, builder-allocated result.
//
// Determinism & Performance:
//   - Fixed i→j row-major loops; each output cell is a single independent
//     two-operand addition (not a reduction), so results are bit-identical
//     regardless of evaluation order.
//   - No hidden allocations beyond the output matrix; O(r*c) time and space.
package matrix

import "fmt"

// Add returns the elementwise sum m + other as a fresh matrix. Neither
// operand is mutated and the result shares no storage with either.
//
// Stage 1 (Verify): additive compatibility via Verify(false, other);
// incompatible shapes fail with ErrDimensionMismatch. The placeholder from
// New carries no cells and fails with ErrInvalidOperation.
// Stage 2 (Allocate): a zero-filled shell with m's shape, through the
// builder; its error path is propagated even though the verified shape
// makes it unreachable here.
// Stage 3 (Execute): result[i][j] = m[i][j] + other[i][j] in row-major
// order. IEEE semantics apply directly: NaN and ±Inf propagate, no
// special-casing.
//
// Complexity: O(r*c) time and space.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	// Stage 1: shape gate.
	if !m.Verify(false, other) {
		return nil, ErrDimensionMismatch
	}
	// Grids lacking their declared rows (the New placeholder) cannot be
	// summed cell by cell.
	if len(m.data) != m.rows || len(other.data) != other.rows {
		return nil, ErrInvalidOperation
	}

	// Stage 2: allocate the result shell via the builder.
	result, err := NewBuilder().Rows(m.rows).Cols(m.cols).Done()
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	// Stage 3: deterministic row-major summation.
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			result.data[i][j] = m.data[i][j] + other.data[i][j]
		}
	}

	return result, nil
}
