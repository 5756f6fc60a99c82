// Package linalg_test contains unit tests for the algebraic kernels:
// Add, Sub, Mul (default and legacy-compat modes), Scale and Transpose.
package linalg_test

import (
	"testing"

	"github.com/lowdim/linalg"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a Dense from literal rows or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *linalg.Dense {
	t.Helper()
	m, err := linalg.NewFromRows(rows)
	require.NoError(t, err) // literal construction must succeed

	return m
}

// TestAddEntrywise validates the entry-wise sum on conformant operands and
// its purity (operands untouched, result freshly owned).
func TestAddEntrywise(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := linalg.Add(a, b)
	require.NoError(t, err)
	require.True(t, linalg.Equal(sum, mustFromRows(t, [][]float64{{11, 22}, {33, 44}})))

	// Purity: mutating the result must not leak into the operands.
	require.NoError(t, sum.Set(0, 0, -1))
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // a unchanged
}

// TestAddCommutative encodes Add(A,B) == Add(B,A) entrywise.
func TestAddCommutative(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, -2, 3}, {0, 5, -6}})
	b := mustFromRows(t, [][]float64{{7, 8, -9}, {1, -1, 2}})

	ab, err := linalg.Add(a, b)
	require.NoError(t, err)
	ba, err := linalg.Add(b, a)
	require.NoError(t, err)

	require.True(t, linalg.Equal(ab, ba)) // commutativity, exact entries
}

// TestAddInvalidOperands covers nil, empty and mismatched-shape operands.
func TestAddInvalidOperands(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	empty := linalg.New(0, 2) // empty-state operand

	_, err := linalg.Add(nil, a)
	require.ErrorIs(t, err, linalg.ErrNilMatrix) // nil left operand

	_, err = linalg.Add(a, nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix) // nil right operand

	_, err = linalg.Add(empty, a)
	require.ErrorIs(t, err, linalg.ErrEmptyMatrix) // storage-less operand

	wide := linalg.New(2, 3) // 2x3 vs 2x2
	_, err = linalg.Add(a, wide)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch) // shape mismatch

	tall := linalg.New(3, 2) // 3x2 vs 2x2
	_, err = linalg.Add(a, tall)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch) // shape mismatch
}

// TestSubInverseOfAdd checks that (A+B)-B restores A exactly for integral
// entries (no rounding involved).
func TestSubInverseOfAdd(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5, -6}, {7, 8}})

	sum, err := linalg.Add(a, b)
	require.NoError(t, err)
	back, err := linalg.Sub(sum, b)
	require.NoError(t, err)

	require.True(t, linalg.Equal(a, back)) // exact round trip
}

// TestMulIdentity multiplies A by I_2 and expects A unchanged.
func TestMulIdentity(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	id, err := linalg.NewIdentity(2)
	require.NoError(t, err)

	prod, err := linalg.Mul(a, id)
	require.NoError(t, err)
	require.True(t, linalg.Equal(a, prod)) // A·I == A

	prod, err = linalg.Mul(id, a) // and I·A == A
	require.NoError(t, err)
	require.True(t, linalg.Equal(a, prod))
}

// TestMulRectangular checks the standard product on non-square conformant
// shapes, which the default mode permits.
func TestMulRectangular(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	prod, err := linalg.Mul(a, b) // (2x3)·(3x2) ⇒ 2x2
	require.NoError(t, err)
	require.True(t, linalg.Equal(prod, mustFromRows(t, [][]float64{{58, 64}, {139, 154}})))
}

// TestMulNonConformant ensures inner-dimension mismatch is rejected in every mode.
func TestMulNonConformant(t *testing.T) {
	a := linalg.New(2, 3)
	b := linalg.New(2, 3) // a.Cols() != b.Rows()

	_, err := linalg.Mul(a, b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch) // default mode rejects

	_, err = linalg.Mul(a, b, linalg.WithLegacyCompat())
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch) // legacy mode rejects too
}

// TestMulLegacyOverConstraint encodes the shipped square-compatible
// constraint: under WithLegacyCompat a product that is mathematically defined
// (inner dimensions agree) is still rejected unless a.Rows() == b.Cols().
func TestMulLegacyOverConstraint(t *testing.T) {
	a := linalg.New(2, 3)
	b := linalg.New(3, 4) // conformant, but a.Rows() != b.Cols()

	prod, err := linalg.Mul(a, b) // default mode: standard semantics
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 4, prod.Cols())

	_, err = linalg.Mul(a, b, linalg.WithLegacyCompat())
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch) // shipped over-constraint

	sq := linalg.New(3, 2) // a.Rows()==sq.Cols() && a.Cols()==sq.Rows()
	_, err = linalg.Mul(a, sq, linalg.WithLegacyCompat())
	require.NoError(t, err) // square-compatible shapes pass in legacy mode
}

// TestMulInvalidOperands covers nil and empty operands for Mul.
func TestMulInvalidOperands(t *testing.T) {
	a := linalg.New(2, 2)

	_, err := linalg.Mul(nil, a)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	_, err = linalg.Mul(a, linalg.New(0, 0))
	require.ErrorIs(t, err, linalg.ErrEmptyMatrix)
}

// TestScale validates scalar multiplication and operand purity.
func TestScale(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, -2}, {3, 0}})

	scaled, err := linalg.Scale(a, -2.0)
	require.NoError(t, err)
	require.True(t, linalg.Equal(scaled, mustFromRows(t, [][]float64{{-2, 4}, {-6, 0}})))

	_, err = linalg.Scale(nil, 1.0)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	_, err = linalg.Scale(linalg.New(0, 3), 1.0)
	require.ErrorIs(t, err, linalg.ErrEmptyMatrix)
}

// TestTranspose validates Aᵀ entries and the involution (Aᵀ)ᵀ == A.
func TestTranspose(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3

	at, err := linalg.Transpose(a)
	require.NoError(t, err)
	require.True(t, linalg.Equal(at, mustFromRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}})))

	back, err := linalg.Transpose(at)
	require.NoError(t, err)
	require.True(t, linalg.Equal(a, back)) // involution

	_, err = linalg.Transpose(linalg.New(-1, 2))
	require.ErrorIs(t, err, linalg.ErrEmptyMatrix)
}
