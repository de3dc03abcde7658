package fisher

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by EstimateVariance.
var (
	// ErrNonPositiveSigma indicates sigma ≤ 0. The reciprocal of sigma is
	// the diagonal loading, so a non-positive value is a configuration
	// error, rejected before any arithmetic.
	ErrNonPositiveSigma = errors.New("fisher: sigma must be positive")

	// ErrDimensionMismatch indicates probability or feature shapes that
	// disagree with the declared label count or feature count.
	ErrDimensionMismatch = errors.New("fisher: dimension mismatch")

	// ErrSingularMatrix indicates a factorization failure despite the
	// 1/sigma diagonal loading. It should not occur; when it does, it is
	// surfaced rather than coerced to a zero or NaN estimate.
	ErrSingularMatrix = errors.New("fisher: information matrix is not positive definite")
)

// EstimateVariance returns the trace of the regularized inverse Fisher
// information matrix — the 'trace' optimality criterion. Lower values
// mean a tighter expected posterior over the model parameters after the
// hypothetical new sample is added.
//
// Inputs:
//
//   - sigma        — regularization; 1/sigma is added to every diagonal (> 0).
//   - probs        — n×labelCount predicted probabilities for the labeled samples.
//   - x            — n×featureCount labeled feature matrix, rows parallel to probs.
//   - queryProbs   — per-class predicted probabilities for the new sample (len labelCount).
//   - queryX       — the new sample's feature vector (len featureCount).
//   - labelCount   — number of classes k (≥ 2).
//   - featureCount — feature dimensionality d (≥ 1).
//
// Per class c the information block is
//
//	F_c = Σ_i p_ic·(1−p_ic)·x_i·x_iᵀ + q_c·(1−q_c)·ex·exᵀ + (1/sigma)·I_d
//
// and the result is Σ_c tr(F_c⁻¹). The blocks are symmetric positive
// definite by construction, so each is inverted through its Cholesky
// factorization.
//
// The function is stateless: it never retains or mutates its inputs.
func EstimateVariance(sigma float64, probs mat.Matrix, x mat.Matrix, queryProbs, queryX []float64, labelCount, featureCount int) (float64, error) {
	// 1) Configuration validation: sigma is the invertibility guarantee.
	if sigma <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNonPositiveSigma, sigma)
	}
	if labelCount < 2 || featureCount < 1 {
		return 0, fmt.Errorf("%w: labelCount=%d, featureCount=%d", ErrDimensionMismatch, labelCount, featureCount)
	}

	// 2) Shape validation: every input must agree on n, k and d.
	if probs == nil || x == nil {
		return 0, fmt.Errorf("%w: nil probability or feature matrix", ErrDimensionMismatch)
	}
	n, k := probs.Dims()
	xn, d := x.Dims()
	if xn != n {
		return 0, fmt.Errorf("%w: %d probability rows but %d feature rows", ErrDimensionMismatch, n, xn)
	}
	if k != labelCount {
		return 0, fmt.Errorf("%w: %d probability columns, label count %d", ErrDimensionMismatch, k, labelCount)
	}
	if d != featureCount {
		return 0, fmt.Errorf("%w: %d feature columns, feature count %d", ErrDimensionMismatch, d, featureCount)
	}
	if len(queryProbs) != labelCount {
		return 0, fmt.Errorf("%w: %d query probabilities, label count %d", ErrDimensionMismatch, len(queryProbs), labelCount)
	}
	if len(queryX) != featureCount {
		return 0, fmt.Errorf("%w: query vector length %d, feature count %d", ErrDimensionMismatch, len(queryX), featureCount)
	}

	// 3) Accumulate per-class blocks and their inverse traces.
	var (
		info    = mat.NewSymDense(d, nil)
		inverse mat.SymDense
		chol    mat.Cholesky
		row     = make([]float64, d)
		qv      = mat.NewVecDense(d, queryX)
		total   float64
	)
	for c := 0; c < labelCount; c++ {
		info.Zero()

		// 3a) Labeled contributions: p(1−p)-weighted outer products.
		for i := 0; i < n; i++ {
			p := probs.At(i, c)
			w := p * (1 - p)
			if w == 0 {
				continue // saturated prediction carries no curvature
			}
			mat.Row(row, i, x)
			info.SymRankOne(info, w, mat.NewVecDense(d, row))
		}

		// 3b) The hypothetical new sample's contribution.
		if qw := queryProbs[c] * (1 - queryProbs[c]); qw != 0 {
			info.SymRankOne(info, qw, qv)
		}

		// 3c) Diagonal loading: 1/sigma keeps the block invertible even
		//     when the raw information is rank-deficient.
		for j := 0; j < d; j++ {
			info.SetSym(j, j, info.At(j, j)+1/sigma)
		}

		// 3d) Invert through Cholesky and accumulate the trace.
		if ok := chol.Factorize(info); !ok {
			return 0, fmt.Errorf("class %d: %w", c, ErrSingularMatrix)
		}
		if err := chol.InverseTo(&inverse); err != nil {
			return 0, fmt.Errorf("class %d: %w", c, ErrSingularMatrix)
		}
		total += mat.Trace(&inverse)
	}

	return total, nil
}
