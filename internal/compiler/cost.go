package compiler

import "github.com/aretw0/verdict/pkg/domain"

// Cost predicts how many terminal branches a merge-aware renderer emits for
// the tree rooted at n. A terminal counts one. A decision node whose low
// child shares its fallback with the high child's own low terminal
// contributes no branch of its own: the emitted fallback is shared with the
// child's. Applying that single-level check at every node collapses chains of
// any length one step at a time, matching the full-chain walk in ChainAt.
//
// Cost is the renderer-agnostic contract the order search minimizes; it must
// agree with both emitters branch-for-branch.
func Cost(n *domain.Node) int {
	if n.Kind == domain.KindTerminal {
		return 1
	}
	if sharesFallback(n) {
		return Cost(n.High)
	}
	return Cost(n.High) + Cost(n.Low)
}

// sharesFallback is the single-level merge condition: n's low child is a
// terminal and n's high child is a decision whose own low child is a terminal
// with the same value.
func sharesFallback(n *domain.Node) bool {
	return n.Low.Kind == domain.KindTerminal &&
		n.High.Kind == domain.KindDecision &&
		n.High.Low.Kind == domain.KindTerminal &&
		n.High.Low.Value == n.Low.Value
}
