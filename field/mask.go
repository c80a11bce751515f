// SPDX-License-Identifier: MIT
// Package field: the Mask selector and default-mask derivation.
//
// Purpose:
//   - Provide an R×C boolean selector restricting analysis to a subset of
//     grid cells (true = included).
//   - Derive the canonical default mask: a cell participates only when it is
//     finite at every time step (one NaN anywhere in its series excludes it).

package field

import "fmt"

// Mask is a 2-D boolean selector over an R×C grid. true marks a cell
// included in the analysis. The zero value is not usable; construct via
// NewMask, FullMask or FiniteMask. A Mask is derived once per decomposition
// and treated as immutable thereafter.
type Mask struct {
	rows, cols int
	bits       []bool // flat row-major buffer, len = rows*cols
}

// NewMask allocates an all-false mask with the given extents.
// Errors: ErrBadShape when rows or cols ≤ 0.
// Complexity: Time O(R*C), Space O(R*C).
func NewMask(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewMask: %dx%d: %w", rows, cols, ErrBadShape)
	}

	return &Mask{rows: rows, cols: cols, bits: make([]bool, rows*cols)}, nil
}

// FullMask allocates a mask selecting every cell of an R×C grid.
// Errors: ErrBadShape when rows or cols ≤ 0.
// Complexity: Time O(R*C), Space O(R*C).
func FullMask(rows, cols int) (*Mask, error) {
	m, err := NewMask(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.bits {
		m.bits[i] = true
	}

	return m, nil
}

// FiniteMask derives the default analysis mask of a Field: a cell is
// included only if its value is finite across *every* time step. This is
// the mask Decompose applies when no override is supplied.
// Implementation:
//   - Stage 1: validate the field.
//   - Stage 2: scan each cell's contiguous time series; one non-finite
//     sample excludes the cell.
//
// Errors:
//   - ErrNilField from validation.
//
// Complexity: Time O(R*C*T), Space O(R*C).
func FiniteMask(f *Field) (*Mask, error) {
	if err := ValidateField(f); err != nil {
		return nil, fmt.Errorf("FiniteMask: %w", err)
	}

	m := &Mask{rows: f.rows, cols: f.cols, bits: make([]bool, f.rows*f.cols)}
	var r, c, t int
	for r = 0; r < f.rows; r++ { // fixed row-major traversal
		for c = 0; c < f.cols; c++ {
			ok := true
			for t = 0; t < f.steps; t++ {
				if !f.IsFinite(r, c, t) {
					ok = false

					break // one bad sample excludes the cell
				}
			}
			m.bits[r*f.cols+c] = ok
		}
	}

	return m, nil
}

// Rows returns the number of mask rows. Complexity: O(1).
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of mask columns. Complexity: O(1).
func (m *Mask) Cols() int { return m.cols }

// At reports whether cell (r, c) is selected.
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Mask) At(r, c int) (bool, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return false, fmt.Errorf("At(%d,%d): %w", r, c, ErrOutOfRange)
	}

	return m.bits[r*m.cols+c], nil
}

// Set marks cell (r, c) as selected (v=true) or excluded (v=false).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *Mask) Set(r, c int, v bool) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return fmt.Errorf("Set(%d,%d): %w", r, c, ErrOutOfRange)
	}
	m.bits[r*m.cols+c] = v

	return nil
}

// Count returns the number of selected cells (the K of an observation
// matrix). Complexity: O(R*C).
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}

	return n
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(R*C).
func (m *Mask) Clone() *Mask {
	bits := make([]bool, len(m.bits))
	copy(bits, m.bits)

	return &Mask{rows: m.rows, cols: m.cols, bits: bits}
}
