// SPDX-License-Identifier: MIT
// Package field: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the field
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package field

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "field: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilField indicates that a nil *Field was passed where data is required.
	ErrNilField = errors.New("field: nil field")

	// ErrNilMask indicates that a nil *Mask was passed where a mask is required.
	ErrNilMask = errors.New("field: nil mask")

	// ErrNilPlane indicates that a nil 2-D matrix was passed where a plane is required.
	ErrNilPlane = errors.New("field: nil plane")

	// ErrBadShape is returned when a requested shape is invalid (rows, cols or
	// steps ≤ 0, or a backing slice whose length disagrees with the shape).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("field: invalid shape")

	// ErrShapeMismatch indicates incompatible extents between two arguments
	// expected to share dimensions (e.g., mask vs. field spatial extent, or a
	// series length vs. the temporal axis).
	ErrShapeMismatch = errors.New("field: shape mismatch")

	// ErrOutOfRange indicates that an index (row, col or step) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrEmptyMask signals that a mask selects zero grid cells, leaving no
	// observations to reshape or analyze.
	ErrEmptyMask = errors.New("field: mask selects no cells")
)
