// Package varred implements the variance-reduction active-learning
// query strategy: among all unlabeled samples, select the one whose
// label, once acquired, is expected to shrink the classifier's
// parameter uncertainty the most.
//
// 🚀 How it decides
//
//	For every unlabeled candidate, the strategy asks "what if?" for each
//	possible label: retrain a private copy of the baseline classifier on
//	the labeled set plus the candidate with that hypothetical label,
//	then score the retrained model's parameter uncertainty with the
//	trace of the regularized inverse Fisher information
//	(fisher.EstimateVariance). Weighting each hypothetical outcome by
//	the baseline's predicted probability yields the candidate's expected
//	risk; the candidate with the minimum expected risk wins.
//
// Algorithm outline (one MakeQuery call):
//  1. Pull the labeled matrix/labels and the unlabeled ids/features
//     from the Dataset.
//  2. Train one baseline classifier on the labeled set.
//  3. Evaluate every candidate's expected risk on a bounded worker
//     pool of width NJobs. Results land in an index-addressed slice,
//     so candidate order is positional and completion order is
//     irrelevant.
//  4. Return the id of the first candidate attaining the minimum
//     (exact ties go to the lowest enumeration index).
//
// Determinism:
//
//	Every evaluation is pure given its inputs — each worker owns private
//	classifier copies and shares only immutable snapshots — so the
//	selected id is identical for NJobs=1 and NJobs=32.
//
// Configuration (validated by New, before any training):
//
//   - WithModel / WithModelName — the classifier (default: the
//     registered "LogisticRegression").
//   - WithSigma — Fisher regularization, > 0. Default 1.0.
//   - WithOptimality — only OptimalityTrace is supported.
//   - WithNJobs — worker-pool width, ≥ 1. Default 1.
//
// Errors (sentinel):
//
//   - ErrNonPositiveSigma      if sigma ≤ 0.
//   - ErrUnsupportedOptimality for any criterion other than 'trace'.
//   - ErrBadNJobs              if the pool width is < 1.
//   - model.ErrUnknownModel    if WithModelName names nothing registered.
//   - ErrNilDataset            if MakeQuery receives a nil dataset.
//   - ErrNoUnlabeledEntries    if there is nothing left to query.
//   - ErrBadLabelCount         if the dataset reports fewer than two labels.
//
// Classifier errors (for example an empty labeled set at baseline
// training) propagate unchanged; evaluation failures abort the query
// wrapped with the offending candidate's entry id.
//
// Complexity per MakeQuery: O(u · k) classifier trainings and
// O(u · k · (n·d² + d³)) Fisher arithmetic, for u unlabeled candidates,
// k classes, n labeled samples and d features — divided across NJobs
// workers.
//
// References:
//
//	Schein & Ungar, "Active learning for logistic regression: an
//	evaluation", Machine Learning 68(3), 2007.
//	Settles, "Active learning literature survey", UW-Madison, 2010.
package varred
