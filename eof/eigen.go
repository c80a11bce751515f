// SPDX-License-Identifier: MIT
// Package eof: the covariance eigensolver.
// Computes the leading eigenpairs of the covariance operator of a
// mean-centered observation matrix by eigendecomposing the smaller of its
// two Gram matrices.
//
// Algorithm and why: forming the full K×K covariance is wasteful when
// T ≪ K (the common climate case: few time steps, many grid cells). For a
// centered T×K matrix A:
//   - T ≥ K: eigendecompose AᵀA (K×K) directly.
//   - T < K: eigendecompose AAᵀ (T×T), then recover the spatial patterns
//     via the projection trick V = Aᵀ·U / √λ, never forming K×K storage.
//
// Both Gram matrices share their non-zero spectrum, and the sum of ALL
// eigenvalues equals ‖A‖²_F (the trace of either Gram), which is how the
// explained-variance denominator is obtained without a full decomposition
// of the larger operator.

package eof

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// centerColumns removes the temporal mean of each column of a in place and
// returns the means. This constant detrend is mandatory preprocessing for
// EOF/PCA validity; no linear-trend removal happens here.
// Complexity: Time O(T*K), Space O(K).
func centerColumns(a *mat.Dense) []float64 {
	t, k := a.Dims()
	means := make([]float64, k)

	var i int
	for i = 0; i < t; i++ { // deterministic row order
		floats.Add(means, a.RawRowView(i))
	}
	floats.Scale(1.0/float64(t), means)
	for i = 0; i < t; i++ {
		floats.Sub(a.RawRowView(i), means)
	}

	return means
}

// covarEigen computes the n leading eigenpairs of the covariance operator
// of the centered observation matrix a (T×K), plus the principal-component
// projections and the total variance.
// Implementation:
//   - Stage 1: measure total variance ‖A‖²_F (= Σ of all Gram eigenvalues).
//   - Stage 2: build the smaller Gram matrix (K×K or T×T) and run a full
//     symmetric eigendecomposition on it (gonum exposes no partial
//     symmetric solver; the Gram choice keeps the problem ≤ min(T,K)²).
//   - Stage 3: harvest the top min(n, rank-bound) pairs in descending
//     order, clamping eigenvalues below eps to zero; in the T < K branch,
//     recover spatial patterns via V = Aᵀ·u/√λ (unit-norm by construction).
//   - Stage 4: project the centered data onto the patterns: PCs = (A·V)ᵀ.
//
// Inputs:
//   - a: centered T×K observation matrix (read-only here).
//   - n: requested mode count, 1 ≤ n ≤ T (validated by the caller).
//   - eps: eigenvalue clamping tolerance, ≥ 0.
//
// Returns:
//   - vecs: K×n spatial eigenvectors, unit-norm columns, descending λ;
//     columns beyond the data's rank are zero.
//   - pcs: n×T principal-component series.
//   - eig: length-n descending eigenvalues, clamped at zero.
//   - total: Σ of all Gram eigenvalues (explained-variance denominator).
//
// Errors:
//   - ErrEigenFailed when the factorization does not succeed.
//
// Complexity:
//   - Time O(T·K·min(T,K) + min(T,K)³), Space O(min(T,K)² + K·n).
func covarEigen(a *mat.Dense, n int, eps float64) (vecs, pcs *mat.Dense, eig []float64, total float64, err error) {
	t, k := a.Dims()

	// Stage 1: total variance. The buffer of a freshly built Dense is
	// contiguous, so a single dot product covers every element.
	raw := a.RawMatrix()
	total = floats.Dot(raw.Data, raw.Data)

	// Stage 2: eigendecompose the smaller Gram matrix.
	small := t
	if k < t {
		small = k
	}
	zero := mat.NewSymDense(small, nil)
	gram := mat.NewSymDense(small, nil)
	if t >= k {
		gram.SymRankK(zero, 1, a.T()) // AᵀA, K×K
	} else {
		gram.SymRankK(zero, 1, a) // AAᵀ, T×T
	}

	var es mat.EigenSym
	if ok := es.Factorize(gram, true); !ok {
		return nil, nil, nil, 0, fmt.Errorf("covarEigen: %dx%d Gram: %w", small, small, ErrEigenFailed)
	}
	vals := es.Values(nil) // ascending order
	var evec mat.Dense
	es.VectorsTo(&evec) // column j pairs with vals[j]

	// Stage 3: harvest the top pairs, descending.
	nEff := n
	if small < nEff {
		nEff = small // rank bound; remaining modes are zero-padded
	}
	vecs = mat.NewDense(k, n, nil)
	eig = make([]float64, n)

	var (
		j, i int
		lam  float64
	)
	for j = 0; j < nEff; j++ {
		idx := small - 1 - j // descending walk over the ascending spectrum
		lam = vals[idx]
		if lam < eps {
			lam = 0 // clamp numerical noise of a PSD operator
		}
		eig[j] = lam

		if t >= k {
			// Direct branch: eigenvectors of AᵀA are the spatial patterns.
			for i = 0; i < k; i++ {
				vecs.Set(i, j, evec.At(i, idx))
			}

			continue
		}
		// Projection trick: v = Aᵀ·u/√λ. A zero eigenvalue carries no
		// signal; its pattern stays the zero vector (no division).
		if lam == 0 {
			continue
		}
		var v mat.VecDense
		v.MulVec(a.T(), evec.ColView(idx))
		v.ScaleVec(1.0/math.Sqrt(lam), &v)
		for i = 0; i < k; i++ {
			vecs.Set(i, j, v.AtVec(i))
		}
	}

	// Stage 4: principal components, pcs = (A·V)ᵀ (n×T).
	var proj mat.Dense
	proj.Mul(a, vecs) // T×n
	pcs = mat.NewDense(n, t, nil)
	pcs.Copy(proj.T())

	return vecs, pcs, eig, total, nil
}
