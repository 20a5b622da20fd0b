package compiler

import (
	"math/bits"

	"github.com/aretw0/verdict/pkg/domain"
)

// Depth validates the table length and returns k such that len == 2^k.
// A zero or non-power-of-two length yields domain.InvalidTableSizeError.
func Depth(length int) (int, error) {
	if length < 1 || length&(length-1) != 0 {
		return 0, &domain.InvalidTableSizeError{Length: length}
	}
	return bits.TrailingZeros(uint(length)), nil
}

// Analyze compiles the table under every permutation of its k input
// variables: reorder, build, cost. Records carry 1-based IDs assigned in
// permutation generation order. The walk is exhaustive (k! orders), so the
// practical bound on k is the factorial, not memory.
func Analyze(outputs []domain.Value) ([]domain.Result, error) {
	k, err := Depth(len(outputs))
	if err != nil {
		return nil, err
	}
	perms := Permutations(k)
	results := make([]domain.Result, 0, len(perms))
	for i, order := range perms {
		root := Build(Reorder(outputs, order), order)
		results = append(results, domain.Result{
			ID:    i + 1,
			Order: order,
			Root:  root,
			Score: Cost(root),
		})
	}
	return results, nil
}

// Optimal filters Analyze down to the records sharing the minimum score.
// Ties are expected: several orders often reach the same cost, and all of
// them are kept for rendering.
func Optimal(outputs []domain.Value) ([]domain.Result, error) {
	results, err := Analyze(outputs)
	if err != nil {
		return nil, err
	}
	return Best(results), nil
}

// Best returns the minimum-score subset of results, preserving ID order.
func Best(results []domain.Result) []domain.Result {
	min := results[0].Score
	for _, r := range results[1:] {
		if r.Score < min {
			min = r.Score
		}
	}
	best := make([]domain.Result, 0, len(results))
	for _, r := range results {
		if r.Score == min {
			best = append(best, r)
		}
	}
	return best
}

// Permutations materializes every permutation of 0..k-1 in lexicographic
// order using the classic next-permutation step. Deterministic, exhaustive,
// duplicate-free; k=0 yields the single empty order.
func Permutations(k int) [][]int {
	cur := make([]int, k)
	for i := range cur {
		cur[i] = i
	}
	perms := [][]int{clone(cur)}
	for nextPermutation(cur) {
		perms = append(perms, clone(cur))
	}
	return perms
}

// nextPermutation advances p to its lexicographic successor in place,
// returning false when p is already the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}

func clone(p []int) []int {
	c := make([]int, len(p))
	copy(c, p)
	return c
}
