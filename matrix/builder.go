// SPDX-License-Identifier: MIT

// Package matrix - staged construction with a single validation gate.
//
// Purpose:
//   - Accumulate an intended shape and optional cell data without any
//     intermediate validation, then check everything exactly once in Done.
//   - Guarantee that no partially-shaped Matrix ever exists as a value:
//     Done either materializes a valid Matrix or returns a sentinel error.
package matrix

// Builder defaults, applied by NewBuilder when a field is never set.
const (
	defaultRows = 1 // rows when Rows is never called
	defaultCols = 1 // cols when Cols is never called
)

// Builder is a mutable accumulator for matrix construction. Setters are
// chainable and perform no validation; each call replaces the previous
// value for its field. Done consumes the accumulated configuration — a
// Builder must not be reused after Done, as a successful Done adopts the
// supplied data without copying.
//
// The Matrix shape invariant does not apply to a Builder; it is exactly
// the type that may hold inconsistent rows/cols/data until finalization.
type Builder struct {
	rows int         // declared row count; defaults to 1
	cols int         // declared column count; defaults to 1
	data [][]float64 // optional cell grid; empty means dimensions-only
}

// NewBuilder returns a Builder primed with the defaults: a 1×1 shape and
// no data, so NewBuilder().Done() yields a genuine 1×1 zero matrix.
func NewBuilder() *Builder {
	return &Builder{rows: defaultRows, cols: defaultCols}
}

// Rows sets the declared number of rows, replacing any previous value.
// If no data is supplied, Done zero-fills a matrix of this height.
func (b *Builder) Rows(n int) *Builder {
	b.rows = n

	return b
}

// Cols sets the declared number of columns, replacing any previous value.
// If no data is supplied, Done zero-fills a matrix of this width.
func (b *Builder) Cols(n int) *Builder {
	b.cols = n

	return b
}

// Data sets the cell grid, replacing any previous value. The grid must
// eventually match the declared rows×cols shape; Done performs that check.
func (b *Builder) Data(data [][]float64) *Builder {
	b.data = data

	return b
}

// Done validates the accumulated configuration and materializes a Matrix.
// Rules apply in this exact order, first match wins:
//
//  1. rows or cols not positive → ErrInvalidMatrixSize.
//  2. no data rows supplied → dimensions-only construction: a rows×cols
//     matrix with every cell 0.0.
//  3. len(data) != rows, or any row shorter/longer than cols → ErrDataMismatch.
//  4. otherwise the builder's fields are adopted as-is (ownership of the
//     data grid transfers to the Matrix; no copy is made).
//
// These are the only two failure modes of construction.
// Complexity: O(r*c) for rule 2 (allocation), O(r) for the rule-3 scan.
func (b *Builder) Done() (*Matrix, error) {
	// Stage 1 (Validate): reject empty shapes before touching data.
	if b.rows <= 0 || b.cols <= 0 {
		return nil, ErrInvalidMatrixSize
	}

	// Stage 2 (Synthesize): dimensions-only construction zero-fills.
	if len(b.data) == 0 {
		data := make([][]float64, b.rows)
		for i := range data {
			data[i] = make([]float64, b.cols) // make() zero-fills deterministically
		}

		return &Matrix{rows: b.rows, cols: b.cols, data: data}, nil
	}

	// Stage 3 (Validate): supplied data must match the declared shape.
	if len(b.data) != b.rows {
		return nil, ErrDataMismatch
	}
	for _, row := range b.data {
		if len(row) != b.cols {
			return nil, ErrDataMismatch
		}
	}

	// Stage 4 (Finalize): adopt the caller's grid without copying.
	return &Matrix{rows: b.rows, cols: b.cols, data: b.data}, nil
}
