package compiler

import "github.com/aretw0/verdict/pkg/domain"

// Build assembles a reduced decision diagram from a table of 2^k outputs.
// The table must already be arranged (see Reorder) so that halving at depth d
// branches on order[d]: the first half holds the rows where that variable is
// true, the second half the rows where it is false.
func Build(outputs []domain.Value, order []int) *domain.Node {
	return build(outputs, order, 0)
}

func build(outputs []domain.Value, order []int, depth int) *domain.Node {
	if len(outputs) == 1 {
		return domain.Terminal(outputs[0])
	}
	half := len(outputs) / 2
	high := build(outputs[:half], order, depth+1)
	low := build(outputs[half:], order, depth+1)
	return Reduce(order[depth], high, low)
}
