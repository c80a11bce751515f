// SPDX-License-Identifier: MIT
// Package field: the Field container.
//
// Purpose:
//   - Provide a dense R×C×T spatiotemporal array with a flat row-major
//     buffer and O(1) indexed access, the canonical input of the eof core.
//   - Keep the cell time series contiguous in memory so per-cell statistics
//     (temporal means, flattening into observation columns) are cache-local.
//
// Determinism & Performance:
//   - Fixed (row → col → step) element order; index = (r*cols+c)*steps + t.
//   - All accessors are O(1); Clone and TemporalMean are O(R*C*T).

package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Field is a dense three-dimensional numeric array with axes
// (row, col, step). NaN entries mark missing samples. Outputs of the eof
// core are always freshly allocated Fields; no operation mutates its input.
//
// The zero value is not usable; construct via NewField or NewFieldFrom.
type Field struct {
	rows, cols, steps int       // extents; all strictly positive
	data              []float64 // flat buffer, len = rows*cols*steps
}

// NewField allocates a zero-filled Field with the given extents.
// Implementation:
//   - Stage 1: validate all three extents are strictly positive.
//   - Stage 2: allocate the flat buffer and wrap it.
//
// Inputs:
//   - rows, cols: spatial extents of the grid.
//   - steps: number of time steps.
//
// Returns:
//   - *Field: zero-valued field of shape rows×cols×steps.
//
// Errors:
//   - ErrBadShape when any extent is ≤ 0.
//
// Complexity:
//   - Time O(R*C*T) for allocation, Space O(R*C*T).
func NewField(rows, cols, steps int) (*Field, error) {
	if rows <= 0 || cols <= 0 || steps <= 0 {
		return nil, fmt.Errorf("NewField: %dx%dx%d: %w", rows, cols, steps, ErrBadShape)
	}

	return &Field{
		rows:  rows,
		cols:  cols,
		steps: steps,
		data:  make([]float64, rows*cols*steps),
	}, nil
}

// NewFieldFrom builds a Field over a copy of the provided flat buffer.
// The buffer is interpreted in (row, col, step) order with the step axis
// innermost: data[(r*cols+c)*steps+t] holds cell (r,c) at step t.
//
// Errors:
//   - ErrBadShape when extents are ≤ 0 or len(data) != rows*cols*steps.
//
// Complexity: Time O(R*C*T), Space O(R*C*T).
func NewFieldFrom(rows, cols, steps int, data []float64) (*Field, error) {
	if rows <= 0 || cols <= 0 || steps <= 0 {
		return nil, fmt.Errorf("NewFieldFrom: %dx%dx%d: %w", rows, cols, steps, ErrBadShape)
	}
	if len(data) != rows*cols*steps {
		return nil, fmt.Errorf("NewFieldFrom: len(data)=%d want %d: %w",
			len(data), rows*cols*steps, ErrBadShape)
	}

	buf := make([]float64, len(data)) // defensive copy; Field owns its buffer
	copy(buf, data)

	return &Field{rows: rows, cols: cols, steps: steps, data: buf}, nil
}

// Rows returns the number of grid rows. Complexity: O(1).
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of grid columns. Complexity: O(1).
func (f *Field) Cols() int { return f.cols }

// Steps returns the number of time steps (the third-axis extent).
// Complexity: O(1).
func (f *Field) Steps() int { return f.steps }

// index converts (r, c, t) into a flat offset. Callers validate bounds.
func (f *Field) index(r, c, t int) int { return (r*f.cols+c)*f.steps + t }

// inBounds reports whether (r, c, t) addresses a valid element.
func (f *Field) inBounds(r, c, t int) bool {
	return r >= 0 && r < f.rows && c >= 0 && c < f.cols && t >= 0 && t < f.steps
}

// At retrieves the element at (r, c, t).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (f *Field) At(r, c, t int) (float64, error) {
	if !f.inBounds(r, c, t) {
		return 0, fmt.Errorf("At(%d,%d,%d): %w", r, c, t, ErrOutOfRange)
	}

	return f.data[f.index(r, c, t)], nil
}

// Set assigns v at (r, c, t).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (f *Field) Set(r, c, t int, v float64) error {
	if !f.inBounds(r, c, t) {
		return fmt.Errorf("Set(%d,%d,%d): %w", r, c, t, ErrOutOfRange)
	}
	f.data[f.index(r, c, t)] = v

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(R*C*T).
func (f *Field) Clone() *Field {
	buf := make([]float64, len(f.data))
	copy(buf, f.data)

	return &Field{rows: f.rows, cols: f.cols, steps: f.steps, data: buf}
}

// Plane extracts the 2-D slice at third-axis index t as a fresh R×C gonum
// matrix. For a spatiotemporal Field this is the snapshot at one time step;
// for mode maps stored in a Field (third axis = mode) it is one mode's map.
//
// Errors:
//   - ErrOutOfRange when t is outside [0, Steps).
//
// Complexity: Time O(R*C), Space O(R*C).
func (f *Field) Plane(t int) (*mat.Dense, error) {
	if t < 0 || t >= f.steps {
		return nil, fmt.Errorf("Plane(%d): %w", t, ErrOutOfRange)
	}

	out := mat.NewDense(f.rows, f.cols, nil)
	var r, c int
	for r = 0; r < f.rows; r++ { // fixed row-major traversal
		for c = 0; c < f.cols; c++ {
			out.Set(r, c, f.data[f.index(r, c, t)])
		}
	}

	return out, nil
}

// TemporalMean computes the per-cell mean across the time axis, returned as
// an R×C matrix. Cells with any NaN sample yield NaN (IEEE propagation);
// this matches the default-mask semantics of FiniteMask.
//
// Complexity: Time O(R*C*T), Space O(R*C).
func (f *Field) TemporalMean() *mat.Dense {
	out := mat.NewDense(f.rows, f.cols, nil)
	inv := 1.0 / float64(f.steps)

	var (
		r, c, t int
		sum     float64
	)
	for r = 0; r < f.rows; r++ {
		for c = 0; c < f.cols; c++ {
			sum = 0
			base := f.index(r, c, 0) // time series of (r,c) is contiguous
			for t = 0; t < f.steps; t++ {
				sum += f.data[base+t]
			}
			out.Set(r, c, sum*inv)
		}
	}

	return out
}

// IsFinite reports whether the element at (r, c, t) is finite (not NaN, not
// ±Inf). Out-of-range indices report false. Complexity: O(1).
func (f *Field) IsFinite(r, c, t int) bool {
	if !f.inBounds(r, c, t) {
		return false
	}
	v := f.data[f.index(r, c, t)]

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
