/*
Package verdict compiles complete truth tables into compact decision logic:
executable conditional code or an equivalent flowchart.

Given every combination of N boolean inputs mapped to an output value (with an
optional don't-care marker), Verdict builds a reduced decision diagram for
every possible variable testing order, scores each diagram by the number of
terminal branches a merge-aware renderer would emit, and renders the orders
achieving the minimum. Chained conditions sharing a fallback collapse into one
combined test, so "if (a && b) return X; return Y" counts and renders as two
branches, not three.

# Usage

	eng := verdict.New(
		verdict.WithFuncName("grade"),
		verdict.WithParams([]string{"passed", "honors"}),
	)

	js, err := eng.Code([]string{"A+", "A", "B", "B"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(js)

	chart, err := eng.Flowchart([]string{"A+", "A", "B", "B"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(chart)

Tables are row-major with row 0 holding the output for the all-true
assignment. The reserved token "*" (configurable via WithDontCare) marks an
unconstrained output that reduction may absorb.

The search is exhaustive over all k! variable orders, so practical table
widths are bounded by the factorial, not by memory. Computation is pure and
single-threaded; every call builds fresh immutable trees.
*/
package verdict
