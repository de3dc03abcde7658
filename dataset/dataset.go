package dataset

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Dataset operations.
var (
	// ErrEmptyFeatures indicates a nil or zero-length feature vector.
	ErrEmptyFeatures = errors.New("dataset: feature vector is empty")

	// ErrDimensionMismatch indicates a feature vector whose length disagrees
	// with the dimensionality fixed by the first entry.
	ErrDimensionMismatch = errors.New("dataset: feature dimension mismatch")

	// ErrBadLabel indicates a negative label, or a label outside
	// [0, LabelCount) when an explicit label count was configured.
	ErrBadLabel = errors.New("dataset: label out of range")

	// ErrBadLabelCount indicates WithLabelCount was given a value < 2.
	ErrBadLabelCount = errors.New("dataset: label count must be at least 2")

	// ErrDuplicateID indicates two entries with the same id.
	ErrDuplicateID = errors.New("dataset: duplicate entry id")

	// ErrUnknownID indicates an id with no matching entry.
	ErrUnknownID = errors.New("dataset: unknown entry id")
)

// Entry is one sample of a Dataset: a stable id, a feature vector and,
// when Labeled is true, a discrete 0-based label.
type Entry struct {
	ID       int       // unique, stable identifier
	Features []float64 // feature vector; length fixed per Dataset
	Label    int       // valid only when Labeled is true
	Labeled  bool      // whether Label holds a ground-truth value
}

// Options configures a Dataset at construction time.
//
// LabelCount — explicit number of classes k (labels 0..k-1). Zero means
// "infer from the labeled entries" (max label + 1).
type Options struct {
	LabelCount int
}

// Option is a functional option for New and FromEntries.
type Option func(*Options)

// WithLabelCount fixes the number of classes up front. Labels added later
// must fall inside [0, k). Values < 2 are rejected at construction.
func WithLabelCount(k int) Option {
	return func(o *Options) { o.LabelCount = k }
}

// DefaultOptions returns the construction defaults: no explicit label
// count (inferred from labeled entries).
func DefaultOptions() Options {
	return Options{LabelCount: 0}
}

// Dataset is an ordered, partially labeled sample collection.
// See the package documentation for invariants and concurrency notes.
type Dataset struct {
	mu         sync.RWMutex
	entries    []Entry     // insertion order; feature slices are owned copies
	byID       map[int]int // id → position in entries
	dim        int         // feature dimensionality; 0 until the first entry
	labelCount int         // explicit class count; 0 = infer
	nextID     int         // next auto-assigned id
}

// New creates an empty Dataset.
// Returns an error only for invalid options (ErrBadLabelCount).
func New(opts ...Option) (*Dataset, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.LabelCount != 0 && cfg.LabelCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLabelCount, cfg.LabelCount)
	}

	return &Dataset{
		byID:       make(map[int]int),
		labelCount: cfg.LabelCount,
	}, nil
}

// FromEntries creates a Dataset from explicit entries, preserving their
// order and ids. Every entry is validated: non-empty features, one shared
// dimensionality, unique ids, labels within range. Auto-assigned ids of
// later Add* calls continue after the largest explicit id.
func FromEntries(entries []Entry, opts ...Option) (*Dataset, error) {
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = d.insert(e.ID, e.Features, e.Label, e.Labeled); err != nil {
			return nil, fmt.Errorf("entry id %d: %w", e.ID, err)
		}
	}

	return d, nil
}

// AddLabeled appends a labeled entry and returns its auto-assigned id.
func (d *Dataset) AddLabeled(features []float64, label int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	if err := d.insertLocked(id, features, label, true); err != nil {
		return 0, err
	}

	return id, nil
}

// AddUnlabeled appends an unlabeled entry and returns its auto-assigned id.
func (d *Dataset) AddUnlabeled(features []float64) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	if err := d.insertLocked(id, features, 0, false); err != nil {
		return 0, err
	}

	return id, nil
}

// SetLabel attaches a label to the entry with the given id — the feedback
// step of an active-learning loop. Relabeling a labeled entry is allowed.
func (d *Dataset) SetLabel(id, label int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	pos, ok := d.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	if err := d.checkLabel(label); err != nil {
		return err
	}
	d.entries[pos].Label = label
	d.entries[pos].Labeled = true

	return nil
}

// insert acquires the lock and delegates to insertLocked.
func (d *Dataset) insert(id int, features []float64, label int, labeled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.insertLocked(id, features, label, labeled)
}

// insertLocked validates and appends one entry. Caller holds d.mu.
func (d *Dataset) insertLocked(id int, features []float64, label int, labeled bool) error {
	if len(features) == 0 {
		return ErrEmptyFeatures
	}
	if d.dim != 0 && len(features) != d.dim {
		return fmt.Errorf("%w: want %d features, got %d", ErrDimensionMismatch, d.dim, len(features))
	}
	if _, dup := d.byID[id]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if labeled {
		if err := d.checkLabel(label); err != nil {
			return err
		}
	}

	// Own the feature data: callers may reuse their slice afterwards.
	owned := make([]float64, len(features))
	copy(owned, features)

	d.byID[id] = len(d.entries)
	d.entries = append(d.entries, Entry{ID: id, Features: owned, Label: label, Labeled: labeled})
	if d.dim == 0 {
		d.dim = len(features)
	}
	if id >= d.nextID {
		d.nextID = id + 1
	}

	return nil
}

// checkLabel rejects negative labels, and labels ≥ the explicit class count.
func (d *Dataset) checkLabel(label int) error {
	if label < 0 {
		return fmt.Errorf("%w: %d", ErrBadLabel, label)
	}
	if d.labelCount != 0 && label >= d.labelCount {
		return fmt.Errorf("%w: %d (label count %d)", ErrBadLabel, label, d.labelCount)
	}

	return nil
}

// Len reports the total number of entries, labeled and unlabeled.
func (d *Dataset) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.entries)
}

// FeatureCount reports the shared feature dimensionality (0 while empty).
func (d *Dataset) FeatureCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.dim
}

// LabelCount reports the number of classes k: the explicit WithLabelCount
// value when set, otherwise max(label)+1 over the labeled entries
// (0 when nothing is labeled yet).
func (d *Dataset) LabelCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.labelCount != 0 {
		return d.labelCount
	}
	maxLabel := -1
	for i := range d.entries {
		if d.entries[i].Labeled && d.entries[i].Label > maxLabel {
			maxLabel = d.entries[i].Label
		}
	}

	return maxLabel + 1
}

// LabeledEntries returns the labeled portion as a feature matrix (one row
// per labeled entry, in insertion order) and the parallel label vector.
// Both are fresh copies. Returns (nil, nil) when nothing is labeled.
func (d *Dataset) LabeledEntries() (*mat.Dense, []int) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := 0
	for i := range d.entries {
		if d.entries[i].Labeled {
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}

	x := mat.NewDense(n, d.dim, nil)
	y := make([]int, 0, n)
	row := 0
	for i := range d.entries {
		if !d.entries[i].Labeled {
			continue
		}
		x.SetRow(row, d.entries[i].Features)
		y = append(y, d.entries[i].Label)
		row++
	}

	return x, y
}

// UnlabeledEntries returns the unlabeled portion as parallel slices of
// ids and feature vectors, in insertion order. Both are fresh copies;
// the index-to-id correspondence is the enumeration order query
// strategies must preserve.
func (d *Dataset) UnlabeledEntries() ([]int, [][]float64) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var ids []int
	var features [][]float64
	for i := range d.entries {
		if d.entries[i].Labeled {
			continue
		}
		row := make([]float64, d.dim)
		copy(row, d.entries[i].Features)
		ids = append(ids, d.entries[i].ID)
		features = append(features, row)
	}

	return ids, features
}
