// Package param maps variable indices to the names both emitters print.
// Supplied parameter names bind positionally; indices beyond the supplied
// names fall back to a positional arguments reference so that every variable
// stays addressable.
package param

import (
	"fmt"
	"strings"
)

// Name returns the printable name of variable idx.
func Name(idx int, params []string) string {
	if idx < len(params) {
		return params[idx]
	}
	return fmt.Sprintf("arguments[%d]", idx)
}

// Condition joins the names of the given variable indices with &&. Callers
// pass indices already sorted ascending (see compiler.Chain), so equivalent
// conditions produce identical text and deduplicate.
func Condition(vars []int, params []string) string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = Name(v, params)
	}
	return strings.Join(names, " && ")
}
