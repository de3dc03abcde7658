package fisher_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/activelearn/fisher"
)

// benchmarkEstimateVariance runs the estimator on an n×d labeled set with
// k classes and synthetic, well-conditioned probabilities.
func benchmarkEstimateVariance(b *testing.B, n, d, k int) {
	probs := mat.NewDense(n, k, nil)
	x := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for c := 0; c < k; c++ {
			probs.Set(i, c, 0.3+0.4*float64((i+c)%2)) // alternate 0.3 / 0.7
		}
		for j := 0; j < d; j++ {
			x.Set(i, j, float64((i*j)%7)-3)
		}
	}
	queryProbs := make([]float64, k)
	queryX := make([]float64, d)
	for c := range queryProbs {
		queryProbs[c] = 0.5
	}
	for j := range queryX {
		queryX[j] = float64(j%3) - 1
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := fisher.EstimateVariance(1.0, probs, x, queryProbs, queryX, k, d); err != nil {
			b.Fatalf("EstimateVariance failed: %v", err)
		}
	}
}

// BenchmarkEstimateVariance_Small benchmarks a 50-sample, 5-feature pool.
func BenchmarkEstimateVariance_Small(b *testing.B) {
	benchmarkEstimateVariance(b, 50, 5, 2)
}

// BenchmarkEstimateVariance_Medium benchmarks a 200-sample, 10-feature pool.
func BenchmarkEstimateVariance_Medium(b *testing.B) {
	benchmarkEstimateVariance(b, 200, 10, 2)
}

// BenchmarkEstimateVariance_MultiClass benchmarks a 4-class configuration.
func BenchmarkEstimateVariance_MultiClass(b *testing.B) {
	benchmarkEstimateVariance(b, 100, 8, 4)
}
