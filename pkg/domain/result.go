package domain

// Result records the outcome of compiling a truth table under one variable
// order. Results are created once during the order search and never mutated;
// renderers receive the minimum-score subset.
type Result struct {
	// ID is a 1-based sequential identifier assigned in permutation
	// generation order.
	ID int `json:"id"`

	// Order lists original variable indices in the order they are tested
	// from the root of the tree downward.
	Order []int `json:"order"`

	// Root is the reduced decision diagram for this order.
	Root *Node `json:"-"`

	// Score is the predicted number of terminal branches a merge-aware
	// renderer emits for Root.
	Score int `json:"score"`
}
