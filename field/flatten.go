// SPDX-License-Identifier: MIT
// Package field: the Reshape Adapter (Flatten / Unflatten).
//
// Purpose:
//   - Convert an R×C×T Field into a T×K observation matrix (time leading,
//     one column per masked-in cell) and back.
//   - Pin the column order to a single documented traversal so the two
//     directions always agree: row-major over (row, col).
//
// Determinism & Performance:
//   - Fixed (row → col) mask traversal in both directions; stable results.
//   - Neither direction retains a reference to its input; outputs are
//     freshly allocated so the caller may drop the source immediately.

package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Flatten converts a Field into its observation matrix under the given
// mask: a T×K gonum dense matrix where K = mask.Count(), with the time axis
// leading. Column k holds the time series of the k-th masked-in cell in
// row-major (row, col) order — the same order Unflatten consumes.
// Implementation:
//   - Stage 1: validate field/mask presence and spatial agreement; a nil
//     mask means "all cells".
//   - Stage 2: count active cells; reject an empty selection.
//   - Stage 3: copy each selected cell's contiguous time series into its
//     column.
//
// Inputs:
//   - f: source field (R×C×T), read-only.
//   - m: cell selector (R×C) or nil for the full grid.
//
// Returns:
//   - *mat.Dense: T×K observation matrix.
//
// Errors:
//   - ErrNilField, ErrShapeMismatch from validation; ErrEmptyMask when the
//     mask selects zero cells.
//
// Complexity:
//   - Time O(R*C + K*T), Space O(K*T).
func Flatten(f *Field, m *Mask) (*mat.Dense, error) {
	const op = "Flatten"

	// Stage 1: resolve and validate the selector.
	if m == nil {
		if err := ValidateField(f); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		full, err := FullMask(f.rows, f.cols)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		m = full
	} else if err := ValidateMaskShape(f, m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Stage 2: size the output.
	k := m.Count()
	if k == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyMask)
	}
	out := mat.NewDense(f.steps, k, nil)

	// Stage 3: copy selected time series column-by-column.
	var (
		r, c, t int
		col     int // next observation column
	)
	for r = 0; r < f.rows; r++ { // row-major traversal (documented invariant)
		for c = 0; c < f.cols; c++ {
			if !m.bits[r*m.cols+c] {
				continue
			}
			base := f.index(r, c, 0)
			for t = 0; t < f.steps; t++ {
				out.Set(t, col, f.data[base+t])
			}
			col++
		}
	}

	return out, nil
}

// Unflatten is the inverse of Flatten, generalized to any number of planes:
// it maps a P×K matrix (one row per plane — time steps, EOF modes, ...)
// back onto the grid, producing an R×C×P Field. Cells excluded by the mask
// are filled with NaN. Column k must correspond to the k-th masked-in cell
// in row-major (row, col) order, exactly as produced by Flatten.
// Implementation:
//   - Stage 1: validate mask and matrix presence; the matrix column count
//     must equal mask.Count().
//   - Stage 2: pre-fill the output with NaN.
//   - Stage 3: scatter each column into its cell's contiguous series.
//
// Inputs:
//   - planes: P×K matrix, one plane per row.
//   - m: the mask used to produce (or interpret) the columns.
//
// Returns:
//   - *Field: R×C×P field; NaN at masked-out cells on every plane.
//
// Errors:
//   - ErrNilPlane, ErrNilMask, ErrShapeMismatch, ErrBadShape.
//
// Complexity:
//   - Time O(R*C*P), Space O(R*C*P).
func Unflatten(planes mat.Matrix, m *Mask) (*Field, error) {
	const op = "Unflatten"

	// Stage 1: validate inputs.
	if planes == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilPlane)
	}
	if err := ValidateMask(m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p, k := planes.Dims()
	if p <= 0 {
		return nil, fmt.Errorf("%s: %d planes: %w", op, p, ErrBadShape)
	}
	if k != m.Count() {
		return nil, fmt.Errorf("%s: %d columns vs %d masked cells: %w",
			op, k, m.Count(), ErrShapeMismatch)
	}

	// Stage 2: allocate and pre-fill with NaN.
	out := &Field{
		rows:  m.rows,
		cols:  m.cols,
		steps: p,
		data:  make([]float64, m.rows*m.cols*p),
	}
	nan := math.NaN()
	for i := range out.data {
		out.data[i] = nan
	}

	// Stage 3: scatter columns back onto the grid.
	var (
		r, c, j int
		col     int
	)
	for r = 0; r < m.rows; r++ { // same row-major traversal as Flatten
		for c = 0; c < m.cols; c++ {
			if !m.bits[r*m.cols+c] {
				continue
			}
			base := out.index(r, c, 0)
			for j = 0; j < p; j++ {
				out.data[base+j] = planes.At(j, col)
			}
			col++
		}
	}

	return out, nil
}
