// SPDX-License-Identifier: MIT

// Package linalg - Dense storage (row-major), lifecycle & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Model the empty/unallocated state (non-positive dimensions, no storage)
//     as a first-class, observable condition distinct from a zero matrix.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep teardown permissive and idempotent: Release/Destroy never fail.
//
// Complexity quicksheet:
//   - New/Reset: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package linalg

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The wrapper keeps a stable "Dense.<method>(row,col): underlying" shape and
// preserves the sentinel via %w for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - rows, cols hold the recorded dimensions; either may be non-positive in
//     the empty state (the construction request is retained verbatim).
//   - data is a flat buffer of length rows*cols in row-major order
//     (offset = i*cols + j), or nil in the empty/unallocated state.
//
// Invariant: data != nil ⇔ rows > 0 && cols > 0 after New/Reset/Release.
type Dense struct {
	rows, cols int       // recorded dimensions (may be <= 0 when empty)
	data       []float64 // contiguous row-major storage, nil when empty
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates a rows×cols matrix with zero-initialized storage.
// Stage 1 (Record): retain the requested dimensions verbatim.
// Stage 2 (Allocate): zero-fill a flat buffer only when both dimensions are
// positive; otherwise the matrix is left in the empty/unallocated state.
//
// New never fails: a non-positive request is a legal empty matrix, observable
// via IsEmpty, and every accessor on it reports ErrIndexOutOfBounds.
// Complexity: O(r*c) time and memory; O(1) for the empty state.
func New(rows, cols int) *Dense {
	m := &Dense{rows: rows, cols: cols}
	// Empty state: dimensions recorded, no backing storage.
	if rows <= 0 || cols <= 0 {
		return m
	}
	// make() zero-fills deterministically.
	m.data = make([]float64, rows*cols)

	return m
}

// Reset reconfigures m to the given dimensions, following the same
// empty-state rule as New. Any previous storage is dropped first, so calling
// Reset on a live matrix is legal and leak-free (the old buffer is left to
// the garbage collector). Nil-receiver no-op.
// Complexity: O(r*c) time and memory.
func (m *Dense) Reset(rows, cols int) {
	if m == nil {
		return
	}
	// Drop any live buffer before reconfiguring; ownership stays unambiguous.
	m.data = nil
	m.rows = rows
	m.cols = cols
	if rows <= 0 || cols <= 0 {
		return
	}
	m.data = make([]float64, rows*cols)
}

// Release frees the backing storage if present and resets the dimensions to
// zero, returning m to the empty state. Idempotent: releasing an already
// empty or nil matrix is a safe no-op, never an error.
// Complexity: O(1).
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.rows = 0
	m.cols = 0
}

// Destroy performs Release on a heap handle. Under garbage collection the
// handle itself needs no explicit free, so Destroy exists for symmetry with
// explicit-teardown call sites; it is a safe no-op on a nil handle.
// Complexity: O(1).
func Destroy(m *Dense) {
	m.Release() // nil-safe: Release guards the receiver
}

// Rows returns the recorded row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the recorded column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.rows, m.cols }

// IsEmpty reports whether m carries no backing storage (nil handle, a
// non-positive construction request, or a released matrix).
// Complexity: O(1).
func (m *Dense) IsEmpty() bool { return m == nil || m.data == nil }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute row*cols + col.
//
// The empty state needs no separate guard: non-positive recorded dimensions
// reject every index through the plain bounds check.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*cols + j.
	return row*m.cols + col, nil
}

// At returns the value at (row, col).
// Stage 1 (Validate): nil receiver, then bounds via indexOf.
// Stage 2 (Execute): read from the flat buffer.
//
// Errors: ErrNilMatrix on a nil receiver; ErrIndexOutOfBounds otherwise,
// wrapped with method context and coordinates. A zero return value is only
// trustworthy when the error is nil — the empty state and out-of-range
// access are signaled, never silently folded into 0.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col), or returns an error without mutating.
// Validity rules are identical to At.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy with independent storage. The recorded shape is
// preserved exactly, including the empty state (a clone of an empty matrix is
// empty with the same recorded dimensions). Nil in, nil out.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	cp := &Dense{rows: m.rows, cols: m.cols}
	if m.data != nil {
		cp.data = make([]float64, len(m.data))
		copy(cp.data, m.data)
	}

	return cp
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
// Not for hot paths. An empty matrix renders its recorded row count as bare
// brackets (no storage is touched).
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
