// SPDX-License-Identifier: MIT

// Package matrix - JSON codec.
// The wire form carries the shape alongside the row-major cells, and the
// decode path re-validates through the Builder so a malformed document
// surfaces the same sentinel taxonomy as direct construction.
package matrix

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// matrixJSON is the wire form: {"rows":r,"cols":c,"data":[[...]]}.
type matrixJSON struct {
	Rows int         `json:"rows"`
	Cols int         `json:"cols"`
	Data [][]float64 `json:"data"`
}

// MarshalJSON encodes the matrix in its wire form. The placeholder from
// New encodes with an empty data array rather than null.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	wire := matrixJSON{Rows: m.rows, Cols: m.cols, Data: m.data}
	if wire.Data == nil {
		wire.Data = [][]float64{}
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes the wire form and finalizes it through the
// Builder, so a document declaring a zero shape fails with
// ErrInvalidMatrixSize and one whose data disagrees with its declared
// shape fails with ErrDataMismatch. A document with a valid shape and an
// empty (or absent) data array decodes to a zero-filled matrix, matching
// the builder's dimensions-only rule.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var wire matrixJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return fmt.Errorf("matrix: decode: %w", err)
	}

	decoded, err := NewBuilder().Rows(wire.Rows).Cols(wire.Cols).Data(wire.Data).Done()
	if err != nil {
		return err
	}
	*m = *decoded

	return nil
}
