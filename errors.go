// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package linalg

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> missing storage -> index/shape violations.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used
	// where a matrix was required.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrEmptyMatrix indicates that an operand carries no backing storage
	// (the empty/unallocated state) where a populated matrix was required.
	ErrEmptyMatrix = errors.New("linalg: matrix has no backing storage")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// recorded bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a
	// ragged row set passed to NewFromRows.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrInvalidDimensions indicates that a requested dimension is non-positive
	// where a positive one is required (NewIdentity).
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")
)
