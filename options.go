// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for operation behavior.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal) that folds options into defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package linalg

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultLegacyCompat controls whether operations reproduce the quirks of
	// the ancestral C library. false ⇒ corrected semantics: Mul uses the
	// standard inner-dimension rule, and L2Norm validates its operand exactly
	// like L1Norm.
	DefaultLegacyCompat = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options carries the behavioral flags consumed by Mul and L2Norm.
// The zero value equals the documented defaults.
type Options struct {
	legacyCompat bool // faithful-port mode: shipped shape/validation quirks
}

// WithLegacyCompat enables faithful-port mode:
//   - Mul additionally requires a.Rows() == b.Cols(), restricting products to
//     square-compatible shapes (the shipped over-constraint);
//   - L2Norm skips operand validation and returns 0 with a nil error for
//     nil/empty input, preserving the shipped lenient path.
//
// Both quirks are inherited defects of the original library, kept available
// behind this clearly named switch for drop-in compatibility.
func WithLegacyCompat() Option {
	return func(o *Options) { o.legacyCompat = true }
}

// gatherOptions folds the given options into a defaults-initialized Options.
// Deterministic: options apply in argument order. Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{legacyCompat: DefaultLegacyCompat}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
