package model

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors shared by the classifiers in this package.
var (
	// ErrEmptyTrainingSet indicates Train was called with no samples.
	ErrEmptyTrainingSet = errors.New("model: training set is empty")

	// ErrDimensionMismatch indicates disagreeing matrix/vector shapes,
	// or prediction input whose width differs from the training width.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrBadLabel indicates a negative training label; labels are 0-based.
	ErrBadLabel = errors.New("model: label must be non-negative")

	// ErrNotTrained indicates prediction before a successful Train call.
	ErrNotTrained = errors.New("model: classifier has not been trained")

	// ErrUnknownModel indicates a registry lookup for an unregistered name.
	ErrUnknownModel = errors.New("model: unknown model name")
)

// Classifier is the model contract query strategies depend on.
// See the package documentation for the full semantics of each method,
// in particular the independence guarantee of Clone.
type Classifier interface {
	// Train fits the classifier on X (rows = samples) and labels y.
	Train(x mat.Matrix, y []int) error

	// PredictReal returns real-valued per-class scores for X: one row per
	// sample, one column per class. Scores are pre-sigmoid; apply Sigmoid
	// to obtain probabilities.
	PredictReal(x mat.Matrix) (*mat.Dense, error)

	// Clone returns an independent, trainable copy sharing no mutable
	// state with the receiver. Clone must be safe to call concurrently
	// on a receiver that is not being trained at the time.
	Clone() Classifier
}

// Sigmoid maps a real-valued score to (0, 1): 1 / (1 + e^(−x)).
// It is the named transform between PredictReal scores and the
// probabilities query strategies weight with.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
