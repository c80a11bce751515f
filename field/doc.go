// Package field provides the spatiotemporal containers and reshape adapters
// for github.com/katalvlaran/eofield.
//
// The field package provides:
//
//   - Field — an immutable-by-convention dense R×C×T array (rows × cols ×
//     time steps) backed by a flat row-major buffer, with NaN marking
//     missing/land/out-of-domain samples.
//   - Mask — an R×C boolean selector restricting analysis to a subset of
//     grid cells, plus FiniteMask for the canonical "finite at every time
//     step" default.
//   - Flatten / Unflatten — lossless conversion between a Field and a
//     gonum observation matrix (time × active-cells), the bridge into
//     linear-algebra routines.
//   - Expand — outer-product broadcasting of a 2-D plane and a time series
//     back into a Field (NaN × anything = NaN).
//
// Traversal order is fixed and documented: Flatten and Unflatten both walk
// the mask row-major over (row, col), so a round trip restores every
// masked-in cell exactly and fills NaN elsewhere.
//
// See the examples in this package and eof for usage patterns.
package field
