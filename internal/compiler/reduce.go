package compiler

import "github.com/aretw0/verdict/pkg/domain"

// Reduce canonicalizes a prospective decision over variable v with the given
// already-reduced children. Rules, in order:
//
//  1. A don't-care high child is absorbed: any value satisfies it, so the
//     constrained low side wins. (When both sides are don't-care this returns
//     the low side, which is the same don't-care terminal.)
//  2. Symmetrically, a don't-care low child is absorbed into the high side.
//  3. Structurally equal children collapse: testing v cannot change the
//     outcome, so either child stands for the whole.
//  4. Otherwise a fresh decision node over v is allocated.
//
// Reduce is pure; it never mutates its arguments.
func Reduce(v int, high, low *domain.Node) *domain.Node {
	if high.IsDontCare() {
		return low
	}
	if low.IsDontCare() {
		return high
	}
	if high.Equal(low) {
		return high
	}
	return &domain.Node{Kind: domain.KindDecision, Var: v, High: high, Low: low}
}
