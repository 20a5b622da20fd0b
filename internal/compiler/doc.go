/*
Package compiler turns a complete truth table into reduced decision diagrams.

The pipeline for one variable order is: Reorder (bit-permute the table so that
recursive halving follows the order), Build (assemble a tree bottom-up through
Reduce), Cost (predict how many terminal branches a merge-aware renderer will
emit). Analyze runs that pipeline for every permutation of the input variables
and Optimal keeps the orders achieving the minimum cost.

ChainAt is the shared merge-detection contract: both renderers collapse the
same fallback chains the cost model accounts for, so the score of a Result is
exactly the number of return-equivalent branches its renderings contain.
*/
package compiler
