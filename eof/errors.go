// SPDX-License-Identifier: MIT
// Package eof: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the eof
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Validation happens at the start of each public
// operation (fail fast); no partially-computed result is ever returned
// alongside an error.

package eof

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "eof: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil arguments -> mode-count domain -> mask shape -> empty selection
// -> solver failures.

var (
	// ErrNilField indicates that a nil *field.Field was passed to Decompose.
	ErrNilField = errors.New("eof: nil field")

	// ErrNilModeSet indicates that a nil *ModeSet was passed to Reconstruct.
	ErrNilModeSet = errors.New("eof: nil mode set")

	// ErrInvalidModeCount indicates a requested mode count outside [1, T]:
	// more modes cannot be extracted than there are time samples.
	ErrInvalidModeCount = errors.New("eof: mode count out of range")

	// ErrShapeMismatch indicates that a mask override does not match the
	// field's spatial extent.
	ErrShapeMismatch = errors.New("eof: shape mismatch")

	// ErrEmptyInput signals that no observations remain: the mask selects
	// zero cells, or the time axis is degenerate.
	ErrEmptyInput = errors.New("eof: no data after masking")

	// ErrModeIndex indicates a reconstruction mode number outside
	// [1, ModeSet.Modes()], or an empty mode list.
	ErrModeIndex = errors.New("eof: mode index out of range")

	// ErrEigenFailed indicates that the symmetric eigensolver failed to
	// factorize the Gram matrix. Never swallowed; always propagated.
	ErrEigenFailed = errors.New("eof: eigen decomposition failed")
)
