// Package eof implements Empirical Orthogonal Function analysis for
// github.com/katalvlaran/eofield.
//
// The eof package provides:
//
//   - Decompose — EOF/PCA decomposition of a spatiotemporal Field into mode
//     maps, principal-component time series and explained variance, with
//     masking, mode truncation and deterministic sign normalization.
//   - Reconstruct — re-synthesis of a field from any subset of modes and
//     their principal components.
//
// The covariance eigenproblem is solved on the smaller of the two Gram
// matrices (AᵀA when T ≥ K, AAᵀ otherwise, recovering spatial patterns via
// the projection trick), so memory stays bounded by min(T, K)² even on
// grids with millions of cells.
//
// Preprocessing removes only the temporal mean of each cell — no
// linear-trend removal happens here; detrend beforehand if that is desired.
//
// Sign convention: a mode's map and principal component are jointly negated
// whenever the PC's first sample is negative, so results are reproducible
// regardless of eigensolver internals.
//
// See the examples in this package and field for usage patterns.
package eof
