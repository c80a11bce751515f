// SPDX-License-Identifier: MIT
// Package field: elementwise arithmetic on fields.

package field

import "fmt"

// AddInPlace accumulates g into f elementwise (f += g). Shapes must agree
// on all three axes. NaN propagates per IEEE, so a NaN contribution (e.g.,
// a masked-out cell of an expanded mode) keeps the sum NaN.
//
// Errors:
//   - ErrNilField when either operand is nil.
//   - ErrShapeMismatch when extents differ on any axis.
//
// Complexity: Time O(R*C*T), Space O(1).
func (f *Field) AddInPlace(g *Field) error {
	const op = "AddInPlace"

	if err := ValidateField(f); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := ValidateField(g); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if f.rows != g.rows || f.cols != g.cols || f.steps != g.steps {
		return fmt.Errorf("%s: %dx%dx%d vs %dx%dx%d: %w",
			op, f.rows, f.cols, f.steps, g.rows, g.cols, g.steps, ErrShapeMismatch)
	}

	for i := range f.data {
		f.data[i] += g.data[i]
	}

	return nil
}
