// Package dataset provides the ordered, partially labeled sample
// collection that active-learning query strategies operate on.
//
// A Dataset is a sequence of entries. Every entry carries a feature
// vector and a stable integer id; an entry is either labeled (it also
// carries a discrete label) or unlabeled (a candidate for querying).
// Ids never change once assigned, so a strategy's answer remains
// meaningful after further entries are appended or labeled.
//
// Invariants:
//
//   - Ids are unique within one Dataset and stable for its lifetime.
//   - All feature vectors share one dimensionality, fixed by the first
//     entry (or by explicit entries passed to FromEntries).
//   - Labels are dense and 0-based: a problem with k classes uses the
//     labels 0..k-1. LabelCount reports k — either the explicit value
//     set via WithLabelCount, or the inferred max(label)+1.
//
// Concurrency:
//
//	All methods are safe for concurrent use; the Dataset is guarded by
//	a single RWMutex. Accessors return copies, never internal slices.
//
// Errors (sentinel):
//
//   - ErrEmptyFeatures     if a feature vector is empty or nil.
//   - ErrDimensionMismatch if a feature vector disagrees with the fixed width.
//   - ErrBadLabel          if a label is negative or ≥ the explicit label count.
//   - ErrBadLabelCount     if WithLabelCount receives a value < 2.
//   - ErrDuplicateID       if FromEntries sees the same id twice.
//   - ErrUnknownID         if SetLabel targets an id that does not exist.
package dataset
