package varred

// ExpectedRisk exposes the unexported per-candidate evaluator so the
// external test package can verify the probability-weighted
// decomposition without widening the production API.
var ExpectedRisk = (*VarianceReduction).expectedRisk
