// SPDX-License-Identifier: MIT
// Package field: the expansion helper (outer-product broadcaster).

package field

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Expand multiplies a 2-D plane by a 1-D time series, producing an R×C×T
// Field with result[r,c,t] = plane[r,c] * series[t]. NaN broadcasts
// naturally (NaN × anything = NaN), so masked-out cells of an EOF mode map
// stay NaN at every step of the expansion.
// Implementation:
//   - Stage 1: validate plane presence and a non-empty series.
//   - Stage 2: stream the outer product into the flat buffer, cell-major so
//     each cell's series stays contiguous.
//
// Inputs:
//   - plane: R×C matrix (e.g., one EOF mode map).
//   - series: length-T coefficients (e.g., one principal-component row).
//
// Returns:
//   - *Field: R×C×T outer-product field.
//
// Errors:
//   - ErrNilPlane when plane is nil; ErrBadShape when the plane has a
//     non-positive extent or the series is empty.
//
// Complexity:
//   - Time O(R*C*T), Space O(R*C*T).
func Expand(plane mat.Matrix, series []float64) (*Field, error) {
	const op = "Expand"

	// Stage 1: validate.
	if plane == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilPlane)
	}
	rows, cols := plane.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: %dx%d plane: %w", op, rows, cols, ErrBadShape)
	}
	steps := len(series)
	if steps == 0 {
		return nil, fmt.Errorf("%s: empty series: %w", op, ErrBadShape)
	}

	// Stage 2: stream the outer product.
	out := &Field{
		rows:  rows,
		cols:  cols,
		steps: steps,
		data:  make([]float64, rows*cols*steps),
	}
	var (
		r, c, t int
		v       float64
	)
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			v = plane.At(r, c)
			base := out.index(r, c, 0)
			for t = 0; t < steps; t++ {
				out.data[base+t] = v * series[t] // IEEE: NaN*x = NaN
			}
		}
	}

	return out, nil
}
