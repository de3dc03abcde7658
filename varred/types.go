package varred

import (
	"errors"

	"github.com/katalvlaran/activelearn/model"
)

// Sentinel errors returned by New and MakeQuery.
var (
	// ErrNonPositiveSigma indicates a sigma ≤ 0; 1/sigma is the Fisher
	// diagonal loading, so a non-positive value cannot regularize.
	ErrNonPositiveSigma = errors.New("varred: sigma must be positive")

	// ErrUnsupportedOptimality indicates an optimality criterion other
	// than OptimalityTrace. Determinant and eigenvalue designs are not
	// implemented.
	ErrUnsupportedOptimality = errors.New("varred: unsupported optimality criterion")

	// ErrBadNJobs indicates a worker-pool width < 1.
	ErrBadNJobs = errors.New("varred: NJobs must be at least 1")

	// ErrNilDataset indicates MakeQuery was called with a nil dataset.
	ErrNilDataset = errors.New("varred: dataset is nil")

	// ErrNoUnlabeledEntries indicates an empty unlabeled pool — there is
	// nothing to query.
	ErrNoUnlabeledEntries = errors.New("varred: no unlabeled entries to query")

	// ErrBadLabelCount indicates a dataset reporting fewer than two
	// labels; hypothetical-label enumeration needs a real label space.
	ErrBadLabelCount = errors.New("varred: dataset must define at least two labels")
)

// Optimality selects the scalar summary of the inverse Fisher
// information used to rank candidates.
type Optimality string

// OptimalityTrace is the A-optimal design: the trace of the inverse
// Fisher information matrix. It is the only supported criterion.
const OptimalityTrace Optimality = "trace"

// DefaultSigma is the default Fisher regularization.
//
// The reference implementation documents 100.0 but constructs with 1.0;
// this package follows the constructor and fixes the default at 1.0.
const DefaultSigma = 1.0

// Options configures a VarianceReduction strategy.
//
// Model      — classifier instance to duplicate per query. Takes priority
//
//	over ModelName when both are set.
//
// ModelName  — registry name to instantiate (model.NewByName); resolved
//
//	and validated by New. Empty means model.LogisticRegressionName.
//
// Sigma      — Fisher regularization, must be > 0. Default DefaultSigma.
// Optimality — ranking criterion; only OptimalityTrace is accepted.
// NJobs      — worker-pool width for candidate evaluation, ≥ 1. Default 1.
type Options struct {
	Model      model.Classifier
	ModelName  string
	Sigma      float64
	Optimality Optimality
	NJobs      int
}

// Option is a functional option for New.
type Option func(*Options)

// WithModel sets an explicit classifier instance. The strategy only ever
// trains clones of it; the instance itself is never mutated.
func WithModel(clf model.Classifier) Option {
	return func(o *Options) { o.Model = clf }
}

// WithModelName selects a registered classifier by name. New resolves
// the name immediately and fails fast with model.ErrUnknownModel.
func WithModelName(name string) Option {
	return func(o *Options) { o.ModelName = name }
}

// WithSigma sets the Fisher regularization. Must be positive; New
// rejects anything else with ErrNonPositiveSigma.
func WithSigma(sigma float64) Option {
	return func(o *Options) { o.Sigma = sigma }
}

// WithOptimality sets the ranking criterion. Only OptimalityTrace passes
// validation; anything else fails New with ErrUnsupportedOptimality.
func WithOptimality(criterion Optimality) Option {
	return func(o *Options) { o.Optimality = criterion }
}

// WithNJobs sets the worker-pool width used per MakeQuery call. Must be
// at least 1; New rejects anything else with ErrBadNJobs.
func WithNJobs(n int) Option {
	return func(o *Options) { o.NJobs = n }
}

// DefaultOptions returns the configuration defaults:
//
//   - Model:      nil (resolved from ModelName)
//   - ModelName:  "" (meaning model.LogisticRegressionName)
//   - Sigma:      DefaultSigma (1.0)
//   - Optimality: OptimalityTrace
//   - NJobs:      1 (sequential evaluation)
func DefaultOptions() Options {
	return Options{
		Sigma:      DefaultSigma,
		Optimality: OptimalityTrace,
		NJobs:      1,
	}
}
