package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Configuration errors for LogisticRegression options.
var (
	// ErrBadLearnRate indicates a non-positive gradient-descent step size.
	ErrBadLearnRate = errors.New("model: learn rate must be positive")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("model: iterations must be positive")

	// ErrBadL2Penalty indicates a negative ridge penalty.
	ErrBadL2Penalty = errors.New("model: L2 penalty must be non-negative")
)

// Options configures LogisticRegression training.
//
// LearnRate  — gradient-descent step size (> 0).
// Iterations — full-batch passes over the training set (> 0).
// L2         — ridge penalty on the weights, bias excluded (≥ 0).
type Options struct {
	LearnRate  float64
	Iterations int
	L2         float64
}

// Option is a functional option for NewLogisticRegression.
type Option func(*Options)

// WithLearnRate sets the gradient-descent step size. Must be positive.
func WithLearnRate(lr float64) Option {
	return func(o *Options) {
		if lr <= 0 {
			panic(ErrBadLearnRate.Error())
		}
		o.LearnRate = lr
	}
}

// WithIterations sets the number of full-batch passes. Must be positive.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadIterations.Error())
		}
		o.Iterations = n
	}
}

// WithL2 sets the ridge penalty applied to the weights (bias excluded).
// Must be non-negative; zero disables the penalty.
func WithL2(lambda float64) Option {
	return func(o *Options) {
		if lambda < 0 {
			panic(ErrBadL2Penalty.Error())
		}
		o.L2 = lambda
	}
}

// DefaultOptions returns the training defaults:
//
//   - LearnRate:  0.1
//   - Iterations: 500
//   - L2:         1e-4
func DefaultOptions() Options {
	return Options{
		LearnRate:  0.1,
		Iterations: 500,
		L2:         1e-4,
	}
}

// LogisticRegression is a deterministic logistic-regression classifier
// trained by full-batch gradient descent from zero-initialized weights.
//
// Two classes use a single weight vector and (−s, s) score pairs, so the
// sigmoid-transformed scores of a row sum to one. More than two classes
// fall back to a one-vs-rest reduction with one weight vector per class.
//
// The zero initialization matters: identical training data always yields
// identical weights, which query strategies rely on for determinism.
type LogisticRegression struct {
	opts    Options
	weights [][]float64 // one row per binary subproblem; d weights + bias
	classes int         // class count fixed at Train time (≥ 2)
	dim     int         // feature width fixed at Train time
}

// NewLogisticRegression creates an untrained LogisticRegression with the
// given options applied over DefaultOptions.
func NewLogisticRegression(opts ...Option) *LogisticRegression {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &LogisticRegression{opts: cfg}
}

// Train fits the classifier on x (rows = samples) and the 0-based label
// vector y. The class count becomes max(y)+1, floored at two.
//
// Complexity: O(Iterations · n · d) per binary subproblem.
func (m *LogisticRegression) Train(x mat.Matrix, y []int) error {
	if x == nil {
		return ErrEmptyTrainingSet
	}
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return ErrEmptyTrainingSet
	}
	if len(y) != n {
		return fmt.Errorf("%w: %d rows but %d labels", ErrDimensionMismatch, n, len(y))
	}

	// 1) Scan labels: reject negatives, find the class count.
	maxLabel := 0
	for _, yi := range y {
		if yi < 0 {
			return fmt.Errorf("%w: got %d", ErrBadLabel, yi)
		}
		if yi > maxLabel {
			maxLabel = yi
		}
	}
	k := maxLabel + 1
	if k < 2 {
		k = 2
	}

	// 2) Materialize rows once; gradient passes reread them many times.
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, x)
	}

	// 3) One binary subproblem for two classes, one per class otherwise.
	problems := 1
	if k > 2 {
		problems = k
	}
	weights := make([][]float64, problems)
	for c := range weights {
		weights[c] = m.fitBinary(rows, y, c, problems)
	}

	m.weights = weights
	m.classes = k
	m.dim = d

	return nil
}

// fitBinary runs full-batch gradient descent for one binary subproblem
// and returns d weights plus a trailing bias term.
//
// For the single binary problem the positive class is label 1; under
// one-vs-rest the positive class is label c.
func (m *LogisticRegression) fitBinary(rows [][]float64, y []int, c, problems int) []float64 {
	n := len(rows)
	d := len(rows[0])
	positive := c
	if problems == 1 {
		positive = 1
	}

	w := make([]float64, d+1) // zero init; keeps training deterministic
	grad := make([]float64, d+1)
	for it := 0; it < m.opts.Iterations; it++ {
		for i := range grad {
			grad[i] = 0
		}
		// Accumulate ∂BCE/∂w = Σ (σ(s)−t)·x over the batch.
		for i, row := range rows {
			s := floats.Dot(w[:d], row) + w[d]
			t := 0.0
			if y[i] == positive {
				t = 1.0
			}
			g := Sigmoid(s) - t
			floats.AddScaled(grad[:d], g, row)
			grad[d] += g
		}
		floats.Scale(1/float64(n), grad)
		if m.opts.L2 > 0 {
			floats.AddScaled(grad[:d], m.opts.L2, w[:d]) // bias not penalized
		}
		floats.AddScaled(w, -m.opts.LearnRate, grad)
	}

	return w
}

// PredictReal returns per-class real-valued scores for x: one row per
// sample, one column per class. Binary models emit (−s, s) pairs.
func (m *LogisticRegression) PredictReal(x mat.Matrix) (*mat.Dense, error) {
	if m.weights == nil {
		return nil, ErrNotTrained
	}
	if x == nil {
		return nil, fmt.Errorf("%w: nil input matrix", ErrDimensionMismatch)
	}
	n, d := x.Dims()
	if d != m.dim {
		return nil, fmt.Errorf("%w: trained on %d features, got %d", ErrDimensionMismatch, m.dim, d)
	}

	out := mat.NewDense(n, m.classes, nil)
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, x)
		if len(m.weights) == 1 {
			s := floats.Dot(m.weights[0][:d], row) + m.weights[0][d]
			out.Set(i, 0, -s)
			out.Set(i, 1, s)

			continue
		}
		for c, w := range m.weights {
			out.Set(i, c, floats.Dot(w[:d], row)+w[d])
		}
	}

	return out, nil
}

// Clone returns an independent, trainable copy: options, trained weights
// and shape metadata are duplicated, so training the copy never touches
// the receiver or any sibling copy.
func (m *LogisticRegression) Clone() Classifier {
	cp := &LogisticRegression{
		opts:    m.opts,
		classes: m.classes,
		dim:     m.dim,
	}
	if m.weights != nil {
		cp.weights = make([][]float64, len(m.weights))
		for i, w := range m.weights {
			cp.weights[i] = append([]float64(nil), w...)
		}
	}

	return cp
}
