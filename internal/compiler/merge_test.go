package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/verdict/internal/compiler"
	"github.com/aretw0/verdict/pkg/domain"
)

func TestChainAt_WalksWholeChain(t *testing.T) {
	x := domain.Terminal(domain.NewLiteral("X"))
	y := domain.NewLiteral("Y")

	// var2 and var1 share the fallback "Y"; the tree tests them in
	// descending order but the combined condition must sort ascending.
	inner := &domain.Node{Kind: domain.KindDecision, Var: 1, High: x, Low: domain.Terminal(y)}
	root := &domain.Node{Kind: domain.KindDecision, Var: 2, High: inner, Low: domain.Terminal(y)}

	chain, ok := compiler.ChainAt(root)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, chain.Vars)
	assert.Equal(t, y, chain.Fallback)
	assert.Same(t, x, chain.Consequence)
}

func TestChainAt_StopsAtDifferentFallback(t *testing.T) {
	x := domain.Terminal(domain.NewLiteral("X"))
	inner := &domain.Node{
		Kind: domain.KindDecision, Var: 1,
		High: x,
		Low:  domain.Terminal(domain.NewLiteral("Z")),
	}
	root := &domain.Node{
		Kind: domain.KindDecision, Var: 0,
		High: inner,
		Low:  domain.Terminal(domain.NewLiteral("Y")),
	}

	chain, ok := compiler.ChainAt(root)
	require.True(t, ok)
	assert.Equal(t, []int{0}, chain.Vars)
	assert.Equal(t, "Y", chain.Fallback.Literal)
	assert.Same(t, inner, chain.Consequence)
}

func TestChainAt_RequiresTerminalLow(t *testing.T) {
	x := domain.Terminal(domain.NewLiteral("X"))
	y := domain.Terminal(domain.NewLiteral("Y"))
	z := domain.Terminal(domain.NewLiteral("Z"))
	low := &domain.Node{Kind: domain.KindDecision, Var: 1, High: y, Low: z}
	root := &domain.Node{Kind: domain.KindDecision, Var: 0, High: x, Low: low}

	_, ok := compiler.ChainAt(root)
	assert.False(t, ok)
}

// countBranches walks merge chains the way the renderers do and counts the
// return-equivalent leaves they would emit.
func countBranches(n *domain.Node) int {
	if n.Kind == domain.KindTerminal {
		return 1
	}
	if chain, ok := compiler.ChainAt(n); ok {
		return countBranches(chain.Consequence) + 1
	}
	return countBranches(n.High) + countBranches(n.Low)
}

func TestCost_AgreesWithMergeWalk(t *testing.T) {
	tables := [][]string{
		{"A", "A", "B", "B"},
		{"X", "Y", "Y", "Y"},
		{"X", "X", "X", "X"},
		{"A", "*", "B", "B"},
		{"A", "B", "C", "A", "B", "B", "A", "C"},
		{"Y", "Y", "Y", "N", "Y", "N", "N", "N"},
		{"1", "2", "3", "4", "5", "6", "7", "8"},
	}

	for _, values := range tables {
		results, err := compiler.Analyze(literals(values...))
		require.NoError(t, err)
		for _, r := range results {
			assert.Equal(t, countBranches(r.Root), r.Score,
				"table %v, order %v", values, r.Order)
		}
	}
}
