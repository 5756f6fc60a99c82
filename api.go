// SPDX-License-Identifier: MIT
// Package linalg — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common construction
//     tasks. Each facade delegates to the canonical implementation; no loop
//     or validation logic is duplicated here.

package linalg

// NewZeros returns a new zero-initialized Dense of size rows×cols.
// It is a thin alias of New with an intention-revealing name; the empty-state
// rule for non-positive dimensions applies unchanged.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) *Dense {
	return New(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros
// elsewhere). Unlike New, an identity of non-positive order is meaningless,
// so n <= 0 yields ErrInvalidDimensions rather than an empty matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	id := New(n, n)
	for i := 0; i < n; i++ { // fixed i order
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// NewFromRows copy-constructs a Dense from a 2D slice. The input is copied,
// never retained; the result owns independent storage.
//
// Errors:
//   - ErrEmptyMatrix when rows is empty or the first row has no columns.
//   - ErrDimensionMismatch when the input is ragged (any row length differs
//     from the first).
//
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, opErrorf("NewFromRows", ErrEmptyMatrix)
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows { // fixed i order
		if len(row) != cols {
			return nil, opErrorf("NewFromRows", ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same recorded shape as m.
// A nil m yields nil; an empty m yields an empty matrix with the same
// recorded dimensions. Handy to preallocate staging buffers.
// Complexity: O(r*c) zeroing.
func ZerosLike(m *Dense) *Dense {
	if m == nil {
		return nil
	}

	return New(m.rows, m.cols)
}

// Equal reports exact shape-and-entry equality of a and b. Two nil handles
// are equal; nil never equals non-nil. Empty matrices compare by recorded
// shape and storage state, so New(2, 2) does not equal New(0, 2) even though
// neither holds differing entries.
// Complexity: Time O(r*c), Space O(1).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	if (a.data == nil) != (b.data == nil) {
		return false
	}
	for idx := range a.data { // exact comparison, no tolerance
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
