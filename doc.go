// Package eofield is a compact toolkit for Empirical Orthogonal Function
// (EOF) analysis of gridded spatiotemporal data — the dimensionality
// reduction behind climate-science "mode" maps (ENSO, NAO, and friends).
//
// 🚀 What is eofield?
//
//	A small, deterministic numerical library that brings together:
//		• Spatiotemporal containers: dense R×C×T fields with NaN-aware masking
//		• Reshape adapters: field ⇄ observation-matrix conversion (Flatten/Unflatten)
//		• EOF decomposition: covariance eigenanalysis with mode truncation,
//		  explained-variance accounting and deterministic sign normalization
//		• Reconstruction: re-synthesis of a field from any subset of modes
//
// ✨ Why choose eofield?
//
//   - Deterministic by design – fixed traversal orders, reproducible signs
//   - Memory-aware – eigendecomposes the smaller Gram matrix (T×T or K×K)
//   - Typed failures – sentinel errors matched with errors.Is, no panics on data
//   - Pure functions – no global state; concurrent calls are trivially safe
//
// Everything is organized under two subpackages:
//
//	field/ — Field and Mask containers, Flatten/Unflatten, Expand, temporal means
//	eof/   — Decompose (EOF modes, PCs, explained variance) and Reconstruct
//
// Quick sketch of the pipeline:
//
//	R×C×T field ──Flatten──▶ T×K matrix ──eigen──▶ modes ──Reconstruct──▶ R×C×T
//
// Dive into the per-package docs and runnable examples for usage patterns.
//
//	go get github.com/katalvlaran/eofield
package eofield
