// SPDX-License-Identifier: MIT
// Package linalg: algebraic kernels over Dense operands.
//
// Purpose:
//   - Declare the canonical operation kernels: Add, Sub, Mul, Scale, Transpose.
//   - All kernels perform strict fail-fast validation via the central
//     validators and return plain sentinels wrapped with an operation tag.
//
// Behavior highlights (shared by every kernel):
//   - Pure: operands are never mutated, never aliased into the result.
//   - One allocation per call: a fresh Dense of the result shape.
//   - Deterministic loop orders (flat 0..n-1, or fixed i→j→k for Mul).

package linalg

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opScale = "Scale"
	opT     = "Transpose"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil. Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes the elementwise result out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the loop.
// Keeping sign as a float avoids an extra branch inside the hot loop.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	// Validate operands: nil -> empty -> shape (documented priority).
	if err := validateOperand(a); err != nil {
		return nil, opErrorf(opTag, err)
	}
	if err := validateOperand(b); err != nil {
		return nil, opErrorf(opTag, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Allocate the result; shape is guaranteed positive here.
	res := New(a.rows, a.cols)

	// Single flat loop over the shared layout.
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the entry-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrEmptyMatrix (operand without storage),
//     ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the entry-wise difference C = A - B and returns a fresh Dense
// result. Same validation and complexity as Add.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): operands non-nil and allocated; conformance per the
// active mode — a.Cols() == b.Rows() by default, plus a.Rows() == b.Cols()
// under WithLegacyCompat (the shipped square-compatible over-constraint).
// Stage 2 (Execute): naive triple loop in fixed i→j→k order over the flat
// buffers; no blocking, no tiling.
//
// The result has shape a.Rows() × b.Cols() and C[i,j] = Σ_k A[i,k]*B[k,j].
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	// Validate operands and conformance.
	if err := validateOperand(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateOperand(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateMulShape(a, b, o.legacyCompat); err != nil {
		return nil, opErrorf(opMul, err)
	}

	res := New(a.rows, b.cols)

	// Deterministic i→j→k triple loop with row-major offset math.
	var i, j, k int
	var sum float64
	for i = 0; i < res.rows; i++ {
		for j = 0; j < res.cols; j++ {
			sum = 0
			for k = 0; k < a.cols; k++ {
				sum += a.data[i*a.cols+k] * b.data[k*b.cols+j]
			}
			res.data[i*res.cols+j] = sum
		}
	}

	return res, nil
}

// Scale returns alpha*A as a fresh Dense; A is not mutated.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(a *Dense, alpha float64) (*Dense, error) {
	if err := validateOperand(a); err != nil {
		return nil, opErrorf(opScale, err)
	}

	res := New(a.rows, a.cols)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = alpha * a.data[idx]
	}

	return res, nil
}

// Transpose returns Aᵀ as a fresh Dense; A is not mutated.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if err := validateOperand(a); err != nil {
		return nil, opErrorf(opT, err)
	}

	res := New(a.cols, a.rows)
	var i, j int
	for i = 0; i < a.rows; i++ { // fixed i→j order, scattered writes
		for j = 0; j < a.cols; j++ {
			res.data[j*res.cols+i] = a.data[i*a.cols+j]
		}
	}

	return res, nil
}
