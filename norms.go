// SPDX-License-Identifier: MIT
// Package linalg: entry-wise norms over Dense operands.

package linalg

import "math"

// Operation tags for norm error wrapping.
const (
	opL1 = "L1Norm"
	opL2 = "L2Norm"
)

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// L1Norm computes the entry-wise L1 norm of A: Σ |A[i,j]|.
//
// Errors: ErrNilMatrix (nil operand), ErrEmptyMatrix (no backing storage —
// which includes every non-positive-dimension request). A zero return value
// is only a genuine norm when the error is nil.
//
// Complexity: Time O(r*c), Space O(1).
func L1Norm(a *Dense) (float64, error) {
	if err := validateOperand(a); err != nil {
		return NormZero, opErrorf(opL1, err)
	}

	sum := NormZero
	for _, v := range a.data { // deterministic flat accumulation
		sum += math.Abs(v)
	}

	return sum, nil
}

// L2Norm computes the entry-wise L2 (Frobenius) norm of A: √(Σ A[i,j]²),
// with naive summation.
//
// Validation follows the active mode. Default: the operand is validated
// exactly like L1Norm (ErrNilMatrix / ErrEmptyMatrix). Under
// WithLegacyCompat(): no validation — a nil or empty operand yields
// (0, nil), preserving the ancestral lenient path in which iterating absent
// storage naturally produced zero.
//
// Complexity: Time O(r*c), Space O(1).
func L2Norm(a *Dense, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	if err := validateOperand(a); err != nil {
		if o.legacyCompat {
			return NormZero, nil // shipped behavior: silent zero
		}

		return NormZero, opErrorf(opL2, err)
	}

	sum := NormZero
	for _, v := range a.data { // deterministic flat accumulation
		sum += v * v
	}

	return math.Sqrt(sum), nil
}
