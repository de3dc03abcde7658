// Package activelearn is an in-memory toolkit for pool-based active
// learning — pick the next sample to label so that each annotation
// buys the most model improvement.
//
// 🚀 What is activelearn?
//
//	A compact, deterministic library that brings together:
//		• Dataset bookkeeping: ordered entries, stable ids, labeled/unlabeled views
//		• Probabilistic models: a small Classifier contract + logistic regression
//		• Fisher information: regularized inverse-trace variance estimates
//		• Query strategies: variance reduction with a bounded worker pool
//
// ✨ Why choose activelearn?
//
//   - Deterministic – identical inputs select identical samples, at any parallelism
//   - Fail-fast – configuration is validated before a single model is trained
//   - Pure Go – gonum for the linear algebra, no cgo
//   - Extensible – register your own Classifier under a name and select it by config
//
// Everything is organized under four subpackages:
//
//	dataset/ — ordered sample collection with labeled/unlabeled bookkeeping
//	model/   — Classifier interface, sigmoid transform, logistic regression, registry
//	fisher/  — trace of the regularized inverse Fisher information matrix
//	varred/  — the variance-reduction query strategy (the decision maker)
//
// Quick sketch of one active-learning round:
//
//	ds, _ := dataset.New()                   // seed with a few labeled points
//	vr, _ := varred.New(varred.WithNJobs(4)) // strategy with a 4-wide pool
//	id, _ := vr.MakeQuery(ds)                // the sample worth labeling next
//	ds.SetLabel(id, oracle(id))              // feed the answer back in
//
// Dive into each package's doc.go for contracts, error taxonomy and
// complexity notes.
//
//	go get github.com/katalvlaran/activelearn
package activelearn
