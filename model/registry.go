package model

import (
	"fmt"
	"sort"
	"sync"
)

// LogisticRegressionName is the registry name of the built-in
// logistic-regression classifier.
const LogisticRegressionName = "LogisticRegression"

// registry maps model names to constructors. Guarded by registryMu so
// Register and NewByName are safe from init funcs and tests alike.
var (
	registryMu sync.RWMutex
	registry   = map[string]func() Classifier{}
)

func init() {
	Register(LogisticRegressionName, func() Classifier { return NewLogisticRegression() })
}

// Register makes a classifier constructor selectable by name through
// NewByName. Registering an existing name replaces the previous
// constructor. A nil constructor or empty name panics: both are
// programmer errors, not runtime conditions.
func Register(name string, ctor func() Classifier) {
	if name == "" || ctor == nil {
		panic("model: Register requires a non-empty name and a non-nil constructor")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = ctor
}

// NewByName instantiates the classifier registered under name.
// Unknown names fail with ErrUnknownModel, listing what is available —
// configuration surfaces call this before any training begins.
func NewByName(name string) (Classifier, error) {
	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownModel, name, Names())
	}

	return ctor(), nil
}

// Names returns the sorted names of all registered classifiers.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
