// SPDX-License-Identifier: MIT
// Package eof: field reconstruction from a mode subset.

package eof

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eofield/field"
)

// Reconstruct re-synthesizes a spatiotemporal field from the chosen modes
// of a decomposition: the sum over requested modes of the outer product of
// each mode's map (R×C) and its principal-component series (length T).
// Mode numbers are 1-based — Reconstruct(ms, []int{1, 2}) sums the two
// leading modes — mirroring how modes are labeled in plots and in the
// Explained vector (mode m ↔ Explained[m-1]).
// Implementation:
//   - Stage 1: validate the set and every requested mode number (fail fast
//     before any allocation).
//   - Stage 2: expand each mode via field.Expand and accumulate.
//
// Behavior highlights:
//   - Pure function: no side effects, no validation against any original
//     source field. The result is whatever the requested modes produce —
//     only a full-spectrum, unmasked decomposition round-trips exactly
//     (after re-adding the temporal mean removed by Decompose).
//   - Masked-out cells are NaN in every mode map, hence NaN in every
//     contribution and in the sum (no NaN handling beyond inheritance).
//
// Inputs:
//   - ms: a ModeSet produced by Decompose.
//   - modes: non-empty list of 1-based mode numbers, each ≤ ms.Modes();
//     duplicates are summed as given.
//
// Returns:
//   - *field.Field: R×C×T reconstruction.
//
// Errors:
//   - ErrNilModeSet; ErrModeIndex for an empty list or any number outside
//     [1, ms.Modes()].
//
// Complexity:
//   - Time O(len(modes)·R·C·T), Space O(R·C·T).
func Reconstruct(ms *ModeSet, modes []int) (*field.Field, error) {
	const op = "Reconstruct"

	// Stage 1: validate.
	if ms == nil || ms.Maps == nil || ms.PCs == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilModeSet)
	}
	avail := ms.Modes()
	if len(modes) == 0 {
		// A sum over zero modes has no contribution to carry the NaN mask,
		// so an empty request is rejected rather than answered with zeros.
		return nil, fmt.Errorf("%s: empty mode list: %w", op, ErrModeIndex)
	}
	for _, m := range modes {
		if m < 1 || m > avail {
			return nil, fmt.Errorf("%s: mode %d of %d available: %w", op, m, avail, ErrModeIndex)
		}
	}

	// Stage 2: expand and accumulate.
	var (
		acc    *field.Field
		series = make([]float64, ms.Steps())
	)
	for _, m := range modes {
		plane, err := ms.Maps.Plane(m - 1) // third axis of Maps indexes modes
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		mat.Row(series, m-1, ms.PCs)

		contrib, err := field.Expand(plane, series)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if acc == nil {
			acc = contrib

			continue
		}
		if err = acc.AddInPlace(contrib); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return acc, nil
}
