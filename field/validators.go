// SPDX-License-Identifier: MIT
// Package field: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for nil/shape guards shared by the
//     reshape adapters and by downstream packages (eof).
//   - Return plain sentinel errors (wrapped with a validator tag) so call
//     sites can wrap uniformly and tests can match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing beyond the
//     wrapped error on the failure path.

package field

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag,
// keeping error labeling consistent across the package.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateField ensures the field reference is non-nil and carries a
// positive shape (constructors guarantee the latter; the check protects
// against hand-built zero values).
//
// Errors: ErrNilField, ErrBadShape.
// Complexity: O(1).
func ValidateField(f *Field) error {
	if f == nil {
		return validatorErrorf("ValidateField", ErrNilField)
	}
	if f.rows <= 0 || f.cols <= 0 || f.steps <= 0 {
		return validatorErrorf("ValidateField", ErrBadShape)
	}

	return nil
}

// ValidateMask ensures the mask reference is non-nil and carries a positive
// shape.
//
// Errors: ErrNilMask, ErrBadShape.
// Complexity: O(1).
func ValidateMask(m *Mask) error {
	if m == nil {
		return validatorErrorf("ValidateMask", ErrNilMask)
	}
	if m.rows <= 0 || m.cols <= 0 {
		return validatorErrorf("ValidateMask", ErrBadShape)
	}

	return nil
}

// ValidateMaskShape — composite: ValidateField → ValidateMask → spatial
// extents of mask and field must agree.
//
// Errors: ErrNilField, ErrNilMask, ErrBadShape, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMaskShape(f *Field, m *Mask) error {
	if err := ValidateField(f); err != nil {
		return validatorErrorf("ValidateMaskShape", err)
	}
	if err := ValidateMask(m); err != nil {
		return validatorErrorf("ValidateMaskShape", err)
	}
	if f.rows != m.rows || f.cols != m.cols {
		return validatorErrorf("ValidateMaskShape", ErrShapeMismatch)
	}

	return nil
}
