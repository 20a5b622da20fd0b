package compiler

import (
	"sort"

	"github.com/aretw0/verdict/pkg/domain"
)

// Chain is a maximal run of decision nodes sharing one low-branch fallback,
// collapsible by a merge-aware renderer into a single combined condition.
type Chain struct {
	// Vars holds the tested-variable indices of every node on the chain,
	// sorted ascending so that equivalent conditions render identically
	// regardless of the order the tree happened to test them.
	Vars []int

	// Fallback is the shared low-branch value, the alternative outcome once
	// the combined condition fails.
	Fallback domain.Value

	// Consequence is the subtree reached when the combined condition holds:
	// the high child of the last node on the chain.
	Consequence *domain.Node
}

// ChainAt walks the merge chain rooted at n. It applies when n is a decision
// node whose low child is a terminal; the walk then follows high children for
// as long as they are decision nodes whose own low child is a terminal with
// the same fallback value. The first node breaking the pattern ends the
// chain and its high child becomes the consequence.
//
// Both renderers collapse exactly the chains this function reports, which is
// what keeps their emitted branch counts equal to Cost.
func ChainAt(n *domain.Node) (Chain, bool) {
	if n.Kind != domain.KindDecision || n.Low.Kind != domain.KindTerminal {
		return Chain{}, false
	}
	fallback := n.Low.Value
	vars := []int{n.Var}
	cur := n
	for cur.High.Kind == domain.KindDecision &&
		cur.High.Low.Kind == domain.KindTerminal &&
		cur.High.Low.Value == fallback {
		cur = cur.High
		vars = append(vars, cur.Var)
	}
	sort.Ints(vars)
	return Chain{Vars: vars, Fallback: fallback, Consequence: cur.High}, true
}
