// Package matrix_test contains unit tests for the Matrix read-side
// surface: accessors, predicates and rendering.
package matrix_test

import (
	"math"
	"testing"

	"github.com/denselab/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// mustBuild finalizes a builder or fails the test; keeps fixtures terse.
func mustBuild(t *testing.T, b *matrix.Builder) *matrix.Matrix {
	t.Helper()
	m, err := b.Done()
	require.NoError(t, err)

	return m
}

// TestGetInRange verifies Get returns the exact stored value for every cell.
func TestGetInRange(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(2).Data([][]float64{
		{1, 2},
		{3, 4},
	}))

	v, ok := m.Get(0, 1)
	require.True(t, ok)
	require.Equal(t, 2.0, v)

	v, ok = m.Get(1, 0)
	require.True(t, ok)
	require.Equal(t, 3.0, v)
}

// TestGetOutOfRange verifies out-of-range lookups miss without error.
func TestGetOutOfRange(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(3))

	cases := [][2]int{
		{2, 0},  // row just past the end
		{0, 3},  // col just past the end
		{-1, 0}, // negative row
		{0, -1}, // negative col
		{math.MaxInt, math.MaxInt}, // overflow-scale indices
	}
	for _, c := range cases {
		_, ok := m.Get(c[0], c[1])
		require.False(t, ok, "Get(%d,%d) should miss", c[0], c[1])
	}
}

// TestGetPlaceholder verifies the New placeholder misses even inside its
// declared 1×1 shape, since it holds no backing rows.
func TestGetPlaceholder(t *testing.T) {
	p := matrix.New()
	require.Equal(t, 1, p.Rows())
	require.Equal(t, 1, p.Cols())

	_, ok := p.Get(0, 0)
	require.False(t, ok)
}

// TestFindFirstMatch verifies row-major scan order wins on duplicates.
func TestFindFirstMatch(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(2).Data([][]float64{
		{1, 7},
		{7, 4},
	}))

	row, col, ok := m.Find(7)
	require.True(t, ok)
	require.Equal(t, 0, row) // (0,1) precedes (1,0) in row-major order
	require.Equal(t, 1, col)
}

// TestFindMissing verifies an absent value yields a clean miss.
func TestFindMissing(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(2).Data([][]float64{
		{1, 2},
		{3, 4},
	}))

	_, _, ok := m.Find(9.5)
	require.False(t, ok)
}

// TestFindNaN verifies NaN is never found, because NaN != NaN.
func TestFindNaN(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(1).Cols(2).Data([][]float64{
		{math.NaN(), 2},
	}))

	_, _, ok := m.Find(math.NaN())
	require.False(t, ok)
}

// TestVerifyAdditive verifies the additive check: equal shapes only, symmetric.
func TestVerifyAdditive(t *testing.T) {
	a := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(3))
	b := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(3))
	c := mustBuild(t, matrix.NewBuilder().Rows(3).Cols(2))

	require.True(t, a.Verify(false, b))
	require.True(t, b.Verify(false, a)) // symmetric
	require.False(t, a.Verify(false, c))
	require.False(t, c.Verify(false, a)) // symmetric in the negative too
}

// TestVerifyMultiplicative pins the exact orientation of the check:
// m.rows against other.cols, which is NOT the standard rule for m×other
// and is NOT symmetric.
func TestVerifyMultiplicative(t *testing.T) {
	a := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(3))
	b := mustBuild(t, matrix.NewBuilder().Rows(4).Cols(2))

	require.True(t, a.Verify(true, b))  // a.rows(2) == b.cols(2)
	require.False(t, b.Verify(true, a)) // b.rows(4) != a.cols(3): not symmetric

	// Standard-rule counterexample: a×c is computable (a.cols == c.rows),
	// yet the predicate reports false because it compares a.rows to c.cols.
	c := mustBuild(t, matrix.NewBuilder().Rows(3).Cols(5))
	require.False(t, a.Verify(true, c))
}

// TestEqual verifies shape plus bit-exact cell comparison.
func TestEqual(t *testing.T) {
	a := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(2).Data([][]float64{
		{1, 2},
		{3, 4},
	}))
	b := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(2).Data([][]float64{
		{1, 2},
		{3, 4},
	}))
	c := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(2).Data([][]float64{
		{1, 2},
		{3, 5},
	}))

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.False(t, a.Equal(c))

	d := mustBuild(t, matrix.NewBuilder().Rows(1).Cols(4))
	require.False(t, a.Equal(d)) // shape mismatch
}

// TestCloneIndependence ensures Clone returns storage-independent copies.
func TestCloneIndependence(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(2).Data([][]float64{
		{1, 2},
		{3, 4},
	}))

	clone := m.Clone()
	require.True(t, m.Equal(clone))
	require.NotSame(t, m, clone)

	// Scribble on the clone's exported rows; the original stays intact.
	data := clone.Data()
	data[0][0] = 99

	v, ok := m.Get(0, 0)
	require.True(t, ok)
	require.Equal(t, 1.0, v)
}

// TestDataDeepCopy ensures Data hands out rows that do not alias m.
func TestDataDeepCopy(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(1).Cols(2).Data([][]float64{
		{5, 6},
	}))

	out := m.Data()
	out[0][0] = -1 // scribble on the copy

	v, ok := m.Get(0, 0)
	require.True(t, ok)
	require.Equal(t, 5.0, v) // original untouched
}

// TestStringRendering pins the pipe-delimited format.
func TestStringRendering(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(2).Cols(2).Data([][]float64{
		{1, 2},
		{3, 4},
	}))
	require.Equal(t, "|1 2|\n|3 4|", m.String())

	single := mustBuild(t, matrix.NewBuilder())
	require.Equal(t, "|0|", single.String())
}

// TestStringFractional verifies values render as shortest round-trip
// decimals, without exponents.
func TestStringFractional(t *testing.T) {
	m := mustBuild(t, matrix.NewBuilder().Rows(1).Cols(3).Data([][]float64{
		{0.5, -1.25, 1000000},
	}))
	require.Equal(t, "|0.5 -1.25 1000000|", m.String())
}

// TestStringPlaceholder verifies the New placeholder renders empty: its
// declared shape is non-zero but it has no rows to print.
func TestStringPlaceholder(t *testing.T) {
	require.Equal(t, "", matrix.New().String())
}
