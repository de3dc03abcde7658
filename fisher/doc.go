// Package fisher estimates parameter-posterior variance for logistic
// models via the trace of a regularized inverse Fisher information
// matrix.
//
// 🚀 What is the Fisher information here?
//
//	For a logistic model, the information carried by a sample x with
//	predicted class probability p is p·(1−p)·x·xᵀ — the outer product of
//	the feature vector, weighted by the Bernoulli curvature at p. Summed
//	over the observed samples (plus one hypothetical new sample), its
//	inverse approximates the covariance of the parameter estimate; the
//	trace of that inverse is the scalar "how uncertain are we" summary
//	used by trace-optimal (A-optimal) experiment design.
//
// Linearization:
//
//	Multi-class problems use a one-vs-rest linearization: one d×d
//	information block per class, each weighted by that class's p·(1−p)
//	curvature. The blocks are independent, so the total trace is the sum
//	of the per-block inverse traces.
//
// Regularization:
//
//	1/sigma is added to every diagonal before inversion. With few
//	labeled samples the raw information matrix is routinely
//	rank-deficient; the diagonal loading makes every block symmetric
//	positive definite, so inversion (via Cholesky) is the designed
//	behavior, not a lucky case. As sigma → ∞ the estimate converges to
//	the unregularized trace (when that inverse exists); as sigma → 0
//	the 1/sigma term dominates and the estimate approaches
//	labelCount·featureCount·sigma.
//
// The estimator is stateless and side-effect-free: one call consumes a
// snapshot of probabilities and features and produces one scalar.
//
// Errors (sentinel):
//
//   - ErrNonPositiveSigma  if sigma ≤ 0 (a configuration error).
//   - ErrDimensionMismatch if probability/feature shapes disagree with
//     the declared label and feature counts.
//   - ErrSingularMatrix    if factorization fails despite regularization
//     (detected and reported, never coerced to 0 or NaN).
//
// Complexity: O(labelCount · (n·d² + d³)) time, O(d²) memory, for
// n labeled samples and d features.
package fisher
