package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/activelearn/model"
)

// TestSigmoid pins the named score→probability transform.
func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, model.Sigmoid(0), "sigmoid at zero is exactly one half")
	assert.InDelta(t, 1.0, model.Sigmoid(50), 1e-12, "large positive scores saturate to 1")
	assert.InDelta(t, 0.0, model.Sigmoid(-50), 1e-12, "large negative scores saturate to 0")

	for _, x := range []float64{-3.5, -1, 0.25, 2, 7} {
		assert.InDelta(t, 1.0, model.Sigmoid(x)+model.Sigmoid(-x), 1e-15,
			"sigmoid(x)+sigmoid(-x) must sum to one")
	}
	assert.Less(t, model.Sigmoid(-1), model.Sigmoid(1), "sigmoid is monotone increasing")
}

// TestLogisticRegression_TrainValidation walks the fail-fast paths of Train.
func TestLogisticRegression_TrainValidation(t *testing.T) {
	clf := model.NewLogisticRegression()

	assert.ErrorIs(t, clf.Train(nil, nil), model.ErrEmptyTrainingSet, "nil matrix")

	x := mat.NewDense(2, 1, []float64{-1, 1})
	assert.ErrorIs(t, clf.Train(x, []int{0}), model.ErrDimensionMismatch, "label vector shorter than rows")
	assert.ErrorIs(t, clf.Train(x, []int{0, -1}), model.ErrBadLabel, "negative label")
}

// TestLogisticRegression_PredictBeforeTrain verifies the not-trained guard.
func TestLogisticRegression_PredictBeforeTrain(t *testing.T) {
	clf := model.NewLogisticRegression()
	_, err := clf.PredictReal(mat.NewDense(1, 1, []float64{1}))
	assert.ErrorIs(t, err, model.ErrNotTrained, "prediction requires a trained model")
}

// TestLogisticRegression_PredictDimensionMismatch verifies that prediction
// input must match the training width.
func TestLogisticRegression_PredictDimensionMismatch(t *testing.T) {
	clf := model.NewLogisticRegression()
	require.NoError(t, clf.Train(mat.NewDense(2, 2, []float64{-1, -1, 1, 1}), []int{0, 1}))

	_, err := clf.PredictReal(mat.NewDense(1, 3, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, model.ErrDimensionMismatch, "3 features against a 2-feature model")
}

// TestLogisticRegression_LearnsSeparableData trains on a trivially
// separable 1-D problem and checks the decision direction.
func TestLogisticRegression_LearnsSeparableData(t *testing.T) {
	clf := model.NewLogisticRegression()
	x := mat.NewDense(4, 1, []float64{-2, -1, 1, 2})
	require.NoError(t, clf.Train(x, []int{0, 0, 1, 1}))

	scores, err := clf.PredictReal(mat.NewDense(2, 1, []float64{-3, 3}))
	require.NoError(t, err)

	assert.Greater(t, model.Sigmoid(scores.At(0, 0)), 0.5, "x=-3 should favor class 0")
	assert.Greater(t, model.Sigmoid(scores.At(1, 1)), 0.5, "x=+3 should favor class 1")
}

// TestLogisticRegression_BinaryScoresAntisymmetric verifies the (−s, s)
// score layout: sigmoid of a row sums to one.
func TestLogisticRegression_BinaryScoresAntisymmetric(t *testing.T) {
	clf := model.NewLogisticRegression()
	require.NoError(t, clf.Train(mat.NewDense(2, 1, []float64{-1, 1}), []int{0, 1}))

	scores, err := clf.PredictReal(mat.NewDense(3, 1, []float64{-2, 0.5, 4}))
	require.NoError(t, err)

	n, k := scores.Dims()
	require.Equal(t, 2, k, "binary model emits two score columns")
	for i := 0; i < n; i++ {
		assert.Equal(t, -scores.At(i, 0), scores.At(i, 1), "columns must be (−s, s)")
		assert.InDelta(t, 1.0, model.Sigmoid(scores.At(i, 0))+model.Sigmoid(scores.At(i, 1)), 1e-12,
			"sigmoid of a binary row sums to one")
	}
}

// TestLogisticRegression_OneVsRest checks the multi-class reduction on
// three well-separated clusters.
func TestLogisticRegression_OneVsRest(t *testing.T) {
	clf := model.NewLogisticRegression(model.WithIterations(2000))
	x := mat.NewDense(9, 2, []float64{
		0, 0, 0.2, 0, 0, 0.2, // class 0 around (0,0)
		5, 0, 5.2, 0, 5, 0.2, // class 1 around (5,0)
		0, 5, 0.2, 5, 0, 5.2, // class 2 around (0,5)
	})
	y := []int{0, 0, 0, 1, 1, 1, 2, 2, 2}
	require.NoError(t, clf.Train(x, y))

	centers := mat.NewDense(3, 2, []float64{0, 0, 5, 0, 0, 5})
	scores, err := clf.PredictReal(centers)
	require.NoError(t, err)

	_, k := scores.Dims()
	require.Equal(t, 3, k, "three classes yield three score columns")
	for i := 0; i < 3; i++ {
		best := 0
		for c := 1; c < k; c++ {
			if scores.At(i, c) > scores.At(i, best) {
				best = c
			}
		}
		assert.Equal(t, i, best, "cluster center %d must score highest for its own class", i)
	}
}

// TestLogisticRegression_DeterministicTraining verifies that identical
// data always produces identical scores — the zero initialization at work.
func TestLogisticRegression_DeterministicTraining(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{-1, 0, -2, 1, 1, 0, 2, -1})
	y := []int{0, 0, 1, 1}
	probe := mat.NewDense(2, 2, []float64{0.5, 0.5, -3, 2})

	a := model.NewLogisticRegression()
	b := model.NewLogisticRegression()
	require.NoError(t, a.Train(x, y))
	require.NoError(t, b.Train(x, y))

	sa, err := a.PredictReal(probe)
	require.NoError(t, err)
	sb, err := b.PredictReal(probe)
	require.NoError(t, err)
	assert.True(t, mat.Equal(sa, sb), "two identically trained models must agree exactly")
}

// TestLogisticRegression_CloneIndependence verifies the behavioral
// contract of Clone: training a copy never leaks into the original.
func TestLogisticRegression_CloneIndependence(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{-2, -1, 1, 2})
	probe := mat.NewDense(1, 1, []float64{1.5})

	base := model.NewLogisticRegression()
	require.NoError(t, base.Train(x, []int{0, 0, 1, 1}))
	before, err := base.PredictReal(probe)
	require.NoError(t, err)
	want := before.At(0, 1)

	// Retrain the clone with flipped labels.
	cp := base.Clone()
	require.NoError(t, cp.Train(x, []int{1, 1, 0, 0}))

	after, err := base.PredictReal(probe)
	require.NoError(t, err)
	assert.Equal(t, want, after.At(0, 1), "training a clone must not change the original")

	flipped, err := cp.PredictReal(probe)
	require.NoError(t, err)
	assert.Less(t, flipped.At(0, 1), 0.0, "the clone must have actually learned the flipped labels")

	// A clone of an untrained model is itself untrained.
	_, err = model.NewLogisticRegression().Clone().PredictReal(probe)
	assert.ErrorIs(t, err, model.ErrNotTrained, "untrained clones stay untrained")
}

// TestLogisticRegression_OptionPanics verifies invalid option arguments
// panic at configuration time.
func TestLogisticRegression_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { model.NewLogisticRegression(model.WithLearnRate(0)) }, "zero learn rate")
	assert.Panics(t, func() { model.NewLogisticRegression(model.WithIterations(0)) }, "zero iterations")
	assert.Panics(t, func() { model.NewLogisticRegression(model.WithL2(-1)) }, "negative L2")
}

// TestLogisticRegression_L2ShrinksWeights sanity-checks the ridge term:
// a heavily penalized model produces scores closer to zero.
func TestLogisticRegression_L2ShrinksWeights(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{-2, -1, 1, 2})
	y := []int{0, 0, 1, 1}
	probe := mat.NewDense(1, 1, []float64{2})

	loose := model.NewLogisticRegression(model.WithL2(0))
	tight := model.NewLogisticRegression(model.WithL2(5))
	require.NoError(t, loose.Train(x, y))
	require.NoError(t, tight.Train(x, y))

	ls, err := loose.PredictReal(probe)
	require.NoError(t, err)
	ts, err := tight.PredictReal(probe)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(ls.At(0, 1)), math.Abs(ts.At(0, 1)),
		"a heavy ridge penalty must shrink the decision score")
}
