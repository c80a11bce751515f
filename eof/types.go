// SPDX-License-Identifier: MIT

// Package eof: result types of the decomposition.

package eof

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eofield/field"
)

// ModeSet is the principal output of Decompose. All members are freshly
// allocated value types: a ModeSet holds no back-pointer to its source
// field, and nothing is cached or shared between calls.
//
// Invariants (established by Decompose, relied upon by Reconstruct):
//   - Maps has shape R×C×N with the third axis indexing modes; masked-out
//     cells are NaN on every mode plane.
//   - PCs has shape N×T: row m is the principal-component time series of
//     mode m+1, in the temporal order of the input.
//   - Modes are ordered by descending eigenvalue, so Explained is
//     non-increasing.
//   - PCs.At(m, 0) ≥ 0 for every m (deterministic sign normalization).
type ModeSet struct {
	// Maps holds the spatial EOF patterns, one R×C plane per mode
	// (third axis = mode). Extract a single map with Maps.Plane(m).
	Maps *field.Field

	// PCs holds the principal-component time series, one row per mode
	// (N×T), the projection of the mean-centered data onto each pattern.
	PCs *mat.Dense

	// Explained holds per-mode explained variance in percent:
	// 100·λ_m / Σλ. Sums to ≈100 when all available variance is captured;
	// entries are 0 for modes beyond the data's rank.
	Explained []float64

	// Eigenvalues holds the N leading eigenvalues of the covariance
	// operator's Gram matrix, descending, clamped at zero. Useful for
	// scree plots and rank diagnostics.
	Eigenvalues []float64

	// Degenerate reports that every eigenvalue clamped to zero, i.e. the
	// field is constant after mean removal. The ModeSet is still fully
	// populated (zero PCs, zero Explained) rather than an error.
	Degenerate bool
}

// Modes returns the number of modes in the set. Complexity: O(1).
func (ms *ModeSet) Modes() int {
	if ms == nil || ms.PCs == nil {
		return 0
	}
	n, _ := ms.PCs.Dims()

	return n
}

// Steps returns the temporal length of the principal components.
// Complexity: O(1).
func (ms *ModeSet) Steps() int {
	if ms == nil || ms.PCs == nil {
		return 0
	}
	_, t := ms.PCs.Dims()

	return t
}
