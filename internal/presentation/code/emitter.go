// Package code emits executable JavaScript for optimal compilation results.
package code

import (
	"fmt"
	"strings"

	"github.com/aretw0/verdict/internal/compiler"
	"github.com/aretw0/verdict/internal/presentation/param"
	"github.com/aretw0/verdict/pkg/domain"
)

const indentStep = "  "

// Options configure the emitted function surface.
type Options struct {
	// FuncName names the emitted function (default "decide").
	FuncName string
	// Params are positional parameter names for the input variables.
	// Variables without a name render as arguments[i].
	Params []string
}

// Generate renders one self-contained function per result: a header comment
// carrying the result ID, the declaration, and the body. Results whose bodies
// are textually identical (the header aside) are emitted once, keeping the
// lowest ID; distinct optimal orders frequently reduce to the same logic.
func Generate(results []domain.Result, opts Options) string {
	name := opts.FuncName
	if name == "" {
		name = "decide"
	}

	var sb strings.Builder
	seen := make(map[string]bool)
	for _, r := range results {
		body := renderFunction(r.Root, name, opts.Params)
		if seen[body] {
			continue
		}
		seen[body] = true
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "// solution %d\n", r.ID)
		sb.WriteString(body)
	}
	return sb.String()
}

func renderFunction(root *domain.Node, name string, params []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "function %s(%s) {\n", name, strings.Join(params, ", "))
	writeNode(&sb, root, params, 1)
	sb.WriteString("}\n")
	return sb.String()
}

// writeNode renders one subtree. Merged chains become a single combined test
// with a nested consequence and a trailing fallback return; an unmerged
// decision renders its true branch as a nested block followed by the low
// branch unconditionally; terminals return their value.
func writeNode(sb *strings.Builder, n *domain.Node, params []string, depth int) {
	indent := strings.Repeat(indentStep, depth)

	if n.Kind == domain.KindTerminal {
		fmt.Fprintf(sb, "%sreturn %s;\n", indent, literal(n.Value))
		return
	}

	if chain, ok := compiler.ChainAt(n); ok {
		fmt.Fprintf(sb, "%sif (%s) {\n", indent, param.Condition(chain.Vars, params))
		writeNode(sb, chain.Consequence, params, depth+1)
		fmt.Fprintf(sb, "%s}\n", indent)
		fmt.Fprintf(sb, "%sreturn %s;\n", indent, literal(chain.Fallback))
		return
	}

	fmt.Fprintf(sb, "%sif (%s) {\n", indent, param.Name(n.Var, params))
	writeNode(sb, n.High, params, depth+1)
	fmt.Fprintf(sb, "%s}\n", indent)
	writeNode(sb, n.Low, params, depth)
}

func literal(v domain.Value) string {
	if v.DontCare {
		return "null"
	}
	return fmt.Sprintf("%q", v.Literal)
}
