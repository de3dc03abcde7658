package varred

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/activelearn/dataset"
	"github.com/katalvlaran/activelearn/fisher"
	"github.com/katalvlaran/activelearn/model"
)

// VarianceReduction is the query strategy. Construct with New; the zero
// value is not usable. A VarianceReduction is immutable after New and
// safe for concurrent MakeQuery calls: every call clones the configured
// classifier before training anything.
type VarianceReduction struct {
	clf   model.Classifier
	sigma float64
	nJobs int
}

// New builds a VarianceReduction strategy, validating the whole
// configuration up front — before any training or dispatch can happen.
//
// Validation order:
//  1. Sigma > 0                    (ErrNonPositiveSigma)
//  2. Optimality == OptimalityTrace (ErrUnsupportedOptimality)
//  3. NJobs ≥ 1                    (ErrBadNJobs)
//  4. Model resolution: an explicit Model wins; otherwise ModelName
//     (default model.LogisticRegressionName) is resolved through the
//     registry and an unknown name fails with model.ErrUnknownModel.
func New(opts ...Option) (*VarianceReduction, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Sigma <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveSigma, cfg.Sigma)
	}
	if cfg.Optimality != OptimalityTrace {
		return nil, fmt.Errorf("%w: %q (only %q is supported)", ErrUnsupportedOptimality, cfg.Optimality, OptimalityTrace)
	}
	if cfg.NJobs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNJobs, cfg.NJobs)
	}

	clf := cfg.Model
	if clf == nil {
		name := cfg.ModelName
		if name == "" {
			name = model.LogisticRegressionName
		}
		var err error
		if clf, err = model.NewByName(name); err != nil {
			return nil, err
		}
	}

	return &VarianceReduction{
		clf:   clf,
		sigma: cfg.Sigma,
		nJobs: cfg.NJobs,
	}, nil
}

// MakeQuery returns the id of the unlabeled entry whose acquisition is
// expected to reduce parameter variance the most — the minimizer of the
// expected Fisher-based risk over the unlabeled pool.
//
// Candidate evaluations run on a bounded worker pool of width NJobs.
// Each worker reads only immutable snapshots (labeled matrix, label
// vector, its candidate's features, the shared read-only baseline) and
// writes one scalar into its own slot, so no locking is needed and the
// result is independent of completion order. The first evaluation error
// aborts the query, wrapped with the offending entry id; Wait drains the
// pool on every exit path.
//
// Classifier errors from baseline training (for example an empty labeled
// set) propagate unchanged.
func (vr *VarianceReduction) MakeQuery(ds *dataset.Dataset) (int, error) {
	if ds == nil {
		return 0, ErrNilDataset
	}

	// 1) Snapshot the dataset: labeled matrix/labels, unlabeled ids/pool.
	labeledX, labels := ds.LabeledEntries()
	ids, pool := ds.UnlabeledEntries()
	if len(ids) == 0 {
		return 0, ErrNoUnlabeledEntries
	}
	labelCount := ds.LabelCount()

	// 2) Train the baseline on the current labeled set. The baseline is
	//    read-only from here on: workers only ever train clones of it.
	//    Training errors (an empty labeled set included) propagate as-is.
	baseline := vr.clf.Clone()
	if err := baseline.Train(labeledX, labels); err != nil {
		return 0, err
	}
	if labelCount < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrBadLabelCount, labelCount)
	}

	// 3) Fan out one evaluation per candidate, at most nJobs at a time.
	//    risks is index-addressed: slot i belongs to candidate i alone.
	risks := make([]float64, len(pool))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(vr.nJobs)
	for i := range pool {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err // a sibling already failed; stop early
			}
			risk, err := vr.expectedRisk(labeledX, labels, pool[i], baseline, labelCount)
			if err != nil {
				return fmt.Errorf("varred: candidate id %d: %w", ids[i], err)
			}
			risks[i] = risk

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	// 4) Argmin with strict '<': exact ties keep the lowest index.
	best := 0
	for i := 1; i < len(risks); i++ {
		if risks[i] < risks[best] {
			best = i
		}
	}

	return ids[best], nil
}

// expectedRisk evaluates one candidate: the expected trace of the
// regularized inverse Fisher information over all hypothetical labels,
// weighted by the baseline's predicted label distribution at qx.
//
// The function is pure given its inputs. It never mutates labeledX,
// labels, qx or baseline — every hypothetical retraining happens on a
// fresh clone — which is what makes the parallel dispatch above safe.
func (vr *VarianceReduction) expectedRisk(labeledX *mat.Dense, labels []int, qx []float64, baseline model.Classifier, labelCount int) (float64, error) {
	// A classifier lenient enough to train on nothing still cannot be
	// evaluated against zero labeled rows.
	if labeledX == nil {
		return 0, fmt.Errorf("%w: no labeled rows to evaluate against", model.ErrEmptyTrainingSet)
	}
	d := len(qx)

	// 1) Baseline label distribution at the candidate: sigmoid of the
	//    real-valued scores, the explicit score→probability transform.
	scores, err := baseline.PredictReal(mat.NewDense(1, d, qx))
	if err != nil {
		return 0, err
	}
	if _, cols := scores.Dims(); cols < labelCount {
		return 0, fmt.Errorf("%w: baseline scores %d classes, label count %d", model.ErrDimensionMismatch, cols, labelCount)
	}
	weights := make([]float64, labelCount)
	for c := range weights {
		weights[c] = model.Sigmoid(scores.At(0, c))
	}

	// 2) The augmented training set: labeled rows plus the candidate.
	n, _ := labeledX.Dims()
	augX := mat.NewDense(n+1, d, nil)
	for i := 0; i < n; i++ {
		augX.SetRow(i, labeledX.RawRowView(i))
	}
	augX.SetRow(n, qx)
	augY := make([]int, n+1)
	copy(augY, labels)

	// 3) One hypothetical retraining per label value.
	var risk float64
	for label := 0; label < labelCount; label++ {
		augY[n] = label

		clf := baseline.Clone() // private copy; hypotheses never interact
		if err = clf.Train(augX, augY); err != nil {
			return 0, fmt.Errorf("hypothetical label %d: %w", label, err)
		}
		hypScores, err := clf.PredictReal(augX)
		if err != nil {
			return 0, fmt.Errorf("hypothetical label %d: %w", label, err)
		}
		if _, hypCols := hypScores.Dims(); hypCols < labelCount {
			return 0, fmt.Errorf("%w: retrained scores %d classes, label count %d", model.ErrDimensionMismatch, hypCols, labelCount)
		}

		// 3a) Sigmoid-transform all scores; split the candidate's row out.
		probs := mat.NewDense(n, labelCount, nil)
		for i := 0; i < n; i++ {
			for c := 0; c < labelCount; c++ {
				probs.Set(i, c, model.Sigmoid(hypScores.At(i, c)))
			}
		}
		queryProbs := make([]float64, labelCount)
		for c := range queryProbs {
			queryProbs[c] = model.Sigmoid(hypScores.At(n, c))
		}

		// 3b) Weight the hypothetical posterior variance by its likelihood.
		phi, err := fisher.EstimateVariance(vr.sigma, probs, labeledX, queryProbs, qx, labelCount, d)
		if err != nil {
			return 0, fmt.Errorf("hypothetical label %d: %w", label, err)
		}
		risk += weights[label] * phi
	}

	return risk, nil
}
