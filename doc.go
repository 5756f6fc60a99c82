// Package linalg is a minimal dense-matrix library: allocation, element
// access, and a small set of entry-wise and algebraic operations over
// rectangular arrays of float64 values.
//
// 🚀 What is linalg?
//
//	A small, deterministic, zero-dependency library that provides:
//		• Dense — a row-major float64 matrix with an explicit empty state
//		• Lifecycle: New, Reset, Release, Destroy (idempotent teardown)
//		• Safe accessors: At / Set return sentinel errors, never panic
//		• Algebra: Add, Sub, Mul, Scale, Transpose — pure, fresh results
//		• Norms: L1Norm (entry-wise) and L2Norm (Frobenius)
//		• Facades: NewZeros, NewIdentity, NewFromRows, ZerosLike, Equal
//
// # Storage model
//
// A Dense owns a single contiguous buffer indexed by row*cols + col. When
// either requested dimension is non-positive, the matrix is in the explicit
// empty/unallocated state: the requested dimensions stay recorded, but no
// backing storage exists. The empty state is distinct from a zero-filled
// matrix of positive shape, and every accessor treats it as out of bounds.
//
// # Error contract
//
// All user-triggered failures surface as package-level sentinel errors
// (ErrNilMatrix, ErrEmptyMatrix, ErrIndexOutOfBounds, ErrDimensionMismatch,
// ErrInvalidDimensions), optionally wrapped with call-site context. Match
// them with errors.Is; no operation panics on user input, logs, or retries.
// Release and Destroy are deliberately permissive no-ops on nil or already
// empty input.
//
// # Compatibility mode
//
// Mul and L2Norm accept WithLegacyCompat(), which reproduces two quirks of
// the C library this package descends from: Mul additionally requires
// a.Rows() == b.Cols() (square-compatible shapes only), and L2Norm skips
// operand validation, returning 0 for nil/empty input. The default mode
// implements standard multiplication conformance and validates both norms
// identically; the divergence is deliberate and documented.
//
// # Concurrency
//
// Everything here is synchronous. Distinct Dense values are fully
// independent (no operation aliases storage), so read-only use across
// goroutines is safe per value; concurrent Set, Reset or Release on the
// same value must be serialized by the caller.
package linalg
