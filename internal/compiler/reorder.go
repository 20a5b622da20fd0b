package compiler

import "github.com/aretw0/verdict/pkg/domain"

// Reorder bit-permutes a table of 2^k outputs so that recursively halving the
// result reproduces depth-first branching on order[0], order[1], and so on.
//
// Each destination index is read as a k-bit path: bit (k-1-depth) is set when
// the low (false) branch is taken at that depth. The matching source index
// sets bit (k-1-order[depth]) for every set path bit. Row 0 is therefore the
// all-true assignment in both layouts. The mapping depends on the order, so
// it is recomputed for every permutation.
func Reorder(outputs []domain.Value, order []int) []domain.Value {
	k := len(order)
	reordered := make([]domain.Value, len(outputs))
	for dst := range reordered {
		src := 0
		for depth, v := range order {
			if dst&(1<<(k-1-depth)) != 0 {
				src |= 1 << (k - 1 - v)
			}
		}
		reordered[dst] = outputs[src]
	}
	return reordered
}
