package varred_test

import (
	"fmt"

	"github.com/katalvlaran/activelearn/dataset"
	"github.com/katalvlaran/activelearn/varred"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleVarianceReduction_MakeQuery
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-class problem with two labeled seeds and two unlabeled
//	candidates that are byte-identical. Identical candidates produce
//	exactly equal expected risks, so the result demonstrates the two
//	selection guarantees at once: the answer always comes from the
//	unlabeled pool, and exact ties go to the candidate enumerated first.
//
// Configuration:
//   - default model (registered logistic regression)
//   - Sigma = 1.0 (default), Optimality = 'trace', NJobs = 1
func ExampleVarianceReduction_MakeQuery() {
	ds, err := dataset.FromEntries([]dataset.Entry{
		{ID: 0, Features: []float64{0, 0}, Label: 0, Labeled: true},
		{ID: 1, Features: []float64{1, 1}, Label: 1, Labeled: true},
		{ID: 7, Features: []float64{0.5, 0.5}},
		{ID: 8, Features: []float64{0.5, 0.5}},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	vr, err := varred.New()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	id, err := vr.MakeQuery(ds)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("query id=%d\n", id)
	// Output:
	// query id=7
}
