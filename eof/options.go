// SPDX-License-Identifier: MIT

// Package eof: functional configuration for Decompose.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     data-dependent violations (mode count vs. time axis, mask shape) are
//     runtime errors returned by Decompose, not panics.
//   - Explicit named parameters replace the original's positional-argument
//     sniffing ("is this a mask or a mode count?"): WithModes and WithMask
//     are separate, typed entry points.

package eof

import (
	"math"

	"github.com/katalvlaran/eofield/field"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance below which an eigenvalue
	// of the (positive-semidefinite) Gram matrix is treated as numerical
	// noise and clamped to zero before any division or square root.
	DefaultEpsilon = 1e-12

	// DefaultModes (0) means "all modes": the mode count resolves to the
	// number of time steps T at Decompose time.
	DefaultModes = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicModesInvalid   = "eof: WithModes: n must be ≥ 1"
	panicEpsilonInvalid = "eof: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	modes int         // requested mode count; 0 ⇒ all (resolved to T)
	mask  *field.Mask // spatial selector override; nil ⇒ FiniteMask default
	eps   float64     // eigenvalue clamping tolerance; ≥ 0
}

// ---------- Constructors (WithX) ----------

// WithModes requests the leading n EOF modes instead of the full set.
// Implementation:
//   - Stage 1: validate n ≥ 1 (panic on programmer error).
//   - Stage 2: return a setter that writes n into Options.
//
// Inputs:
//   - n: number of leading modes; must satisfy 1 ≤ n ≤ T at Decompose time
//     (the upper bound is data-dependent and checked there, returning
//     ErrInvalidModeCount).
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithModes(n int) Option {
	if n < 1 {
		panic(panicModesInvalid)
	}

	return func(o *Options) { o.modes = n }
}

// WithMask overrides the default finite-everywhere mask with an explicit
// spatial selector. The mask must match the field's spatial extent; the
// check is data-dependent and performed by Decompose (ErrShapeMismatch).
// A nil mask restores the default behavior.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The mask is used read-only; Decompose never mutates it.
func WithMask(m *field.Mask) Option {
	return func(o *Options) { o.mask = m }
}

// WithEpsilon sets the eigenvalue clamping tolerance: Gram eigenvalues
// below eps are treated as floating-point artifacts of a nominally
// positive-semidefinite operator and clamped to zero.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; deterministic for a given setter sequence.
// Complexity: Time O(k), Space O(1) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		modes: DefaultModes,
		mask:  nil,
		eps:   DefaultEpsilon,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
