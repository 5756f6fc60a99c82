// SPDX-License-Identifier: MIT
// Package linalg: canonical validation helpers.
//
// Purpose:
//   - Provide a single source of truth for operand checks shared by the
//     algebra kernels (ops.go) and norms (norms.go).
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package linalg

// validateOperand ensures the operand is non-nil and carries storage.
// Fixed sequence: nil -> empty (documented error priority).
// Errors: ErrNilMatrix, ErrEmptyMatrix. Complexity: O(1).
func validateOperand(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.data == nil {
		return ErrEmptyMatrix
	}

	return nil
}

// validateSameShape ensures a and b have identical recorded dimensions.
// Assumes both passed validateOperand (caller must ensure).
// Errors: ErrDimensionMismatch. Complexity: O(1).
func validateSameShape(a, b *Dense) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulShape checks multiplication conformance for a × b.
// Default contract: a.cols == b.rows (standard inner-dimension rule).
// Legacy contract additionally requires a.rows == b.cols, reproducing the
// square-compatible over-constraint of the ancestral C library.
// Errors: ErrDimensionMismatch. Complexity: O(1).
func validateMulShape(a, b *Dense, legacy bool) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}
	if legacy && a.rows != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}
