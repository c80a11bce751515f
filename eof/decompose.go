// SPDX-License-Identifier: MIT
// Package eof: the decomposition orchestrator.

package eof

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eofield/field"
)

// Decompose performs the EOF decomposition of a spatiotemporal field:
// mode maps, principal-component time series and explained variance.
// Implementation:
//   - Stage 1: validate the field and resolve options (mode count defaults
//     to T; mask defaults to the finite-everywhere FiniteMask).
//   - Stage 2: flatten to a T×K observation matrix and remove the temporal
//     mean of each cell (constant detrend — no linear-trend removal; apply
//     your own detrending upstream if required).
//   - Stage 3: eigendecompose the covariance operator (see covarEigen) for
//     the leading modes.
//   - Stage 4: normalize signs — a mode's pattern and PC are jointly
//     negated when the PC's first sample is negative, making results
//     reproducible regardless of eigensolver internals.
//   - Stage 5: unflatten patterns into R×C×N mode maps (NaN at masked-out
//     cells) and convert eigenvalues to explained-variance percentages.
//
// Behavior highlights:
//   - Pure function over its inputs: nothing is cached, the input field and
//     mask are never mutated, and concurrent calls are safe.
//   - When the field is constant after mean removal, every eigenvalue
//     clamps to zero: the result carries Degenerate=true with zero PCs and
//     zero Explained, rather than an error (warning-level condition).
//   - A mask override may include cells containing NaN samples; those NaNs
//     then flow into the eigenproblem unfiltered. The default FiniteMask
//     never admits such cells.
//
// Inputs:
//   - f: source field (R×C×T), read-only.
//   - opts: WithModes / WithMask / WithEpsilon (see options.go).
//
// Returns:
//   - *ModeSet: maps (R×C×N), PCs (N×T), Explained and Eigenvalues
//     (descending, length N), Degenerate flag.
//
// Errors:
//   - ErrNilField; ErrInvalidModeCount when the requested count is outside
//     [1, T]; ErrShapeMismatch when a mask override does not match the
//     field; ErrEmptyInput when the mask selects zero cells; ErrEigenFailed
//     from the solver. Fail-fast: no partial ModeSet accompanies an error.
//
// Complexity:
//   - Time O(T·K·min(T,K) + min(T,K)³), Space O(K·(T+N)) for K masked-in
//     cells.
func Decompose(f *field.Field, opts ...Option) (*ModeSet, error) {
	const op = "Decompose"

	// Stage 1: validate and resolve configuration.
	if f == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilField)
	}
	o := gatherOptions(opts...)

	steps := f.Steps()
	modes := o.modes
	if modes == DefaultModes {
		modes = steps // default: the full spectrum
	}
	if modes < 1 || modes > steps {
		return nil, fmt.Errorf("%s: %d modes of %d time steps: %w", op, modes, steps, ErrInvalidModeCount)
	}

	mask := o.mask
	if mask == nil {
		var err error
		if mask, err = field.FiniteMask(f); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if mask.Rows() != f.Rows() || mask.Cols() != f.Cols() {
		return nil, fmt.Errorf("%s: mask %dx%d vs field %dx%d: %w",
			op, mask.Rows(), mask.Cols(), f.Rows(), f.Cols(), ErrShapeMismatch)
	}
	if mask.Count() == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}

	// Stage 2: reshape and mean-center. The flattened copy is the only
	// retained buffer; the 3-D source is not referenced past this point.
	obs, err := field.Flatten(f, mask)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	centerColumns(obs)

	// Stage 3: eigendecompose the covariance operator.
	vecs, pcs, eig, total, err := covarEigen(obs, modes, o.eps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Stage 4: deterministic sign normalization, applied jointly to the
	// pattern column and its PC row before the patterns hit the grid.
	k, _ := vecs.Dims()
	var m, i int
	for m = 0; m < modes; m++ {
		if pcs.At(m, 0) >= 0 {
			continue
		}
		for i = 0; i < k; i++ {
			vecs.Set(i, m, -vecs.At(i, m))
		}
		floats.Scale(-1, pcs.RawRowView(m))
	}

	// Stage 5: mode maps and explained variance.
	maps, err := field.Unflatten(vecs.T(), mask) // N×K planes → R×C×N
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	explained := make([]float64, modes)
	if total > 0 {
		for i = 0; i < modes; i++ {
			explained[i] = 100 * eig[i] / total
		}
	}

	return &ModeSet{
		Maps:        maps,
		PCs:         pcs,
		Explained:   explained,
		Eigenvalues: eig,
		Degenerate:  eig[0] == 0, // largest eigenvalue clamped ⇒ all clamped
	}, nil
}
