// Package model defines the probabilistic-classifier contract used by
// query strategies, the sigmoid transform that turns real-valued scores
// into probabilities, a deterministic logistic-regression implementation,
// and a name→constructor registry for configuration-driven model choice.
//
// The Classifier contract:
//
//   - Train(X, y)     — fit on a feature matrix (rows = samples) and a
//     parallel 0-based label vector.
//   - PredictReal(X)  — per-class real-valued (pre-sigmoid) scores, one
//     row per sample, one column per class.
//   - Clone()         — an independent, trainable copy. After Clone, no
//     mutable state is shared: training the copy must never affect the
//     original or any sibling copy. This behavioral independence is the
//     whole contract; how deeply state is copied is an implementation
//     detail.
//
// Scores vs probabilities:
//
//	PredictReal deliberately returns raw scores. Callers that need a
//	probability apply Sigmoid explicitly, keeping the numerical step
//	auditable and testable in isolation. For a binary model the two
//	columns are (−s, s), so sigmoid of the rows sums to one.
//
// Registry:
//
//	Register("MyModel", ctor) makes a model selectable by name;
//	NewByName resolves a name or fails with ErrUnknownModel. Lookup is
//	explicit and validated at configuration time — there is no dynamic
//	reflection involved.
//
// Errors (sentinel):
//
//   - ErrEmptyTrainingSet  if Train receives no rows (or a nil matrix).
//   - ErrDimensionMismatch if matrix/label shapes disagree.
//   - ErrBadLabel          if a training label is negative.
//   - ErrNotTrained        if PredictReal runs before a successful Train.
//   - ErrUnknownModel      if NewByName sees an unregistered name.
package model
