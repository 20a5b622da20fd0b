// Package graph emits Mermaid flowcharts for optimal compilation results.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/verdict/internal/compiler"
	"github.com/aretw0/verdict/internal/presentation/param"
	"github.com/aretw0/verdict/pkg/domain"
)

// Generate produces one Mermaid flowchart (graph TD) per result: a synthetic
// start node wired to the root, rectangles for terminal values, diamonds for
// conditions, a solid edge labeled "true" to the high branch and a dotted
// edge labeled "false" to the low branch. Merge chains collapse into a single
// diamond carrying the combined condition; the intermediate nodes are skipped
// entirely, mirroring the code emitter.
//
// Results whose graph bodies are textually identical (excluding the solution
// comment) are emitted once, keeping the lowest ID.
func Generate(results []domain.Result, params []string) string {
	var sb strings.Builder
	seen := make(map[string]bool)
	for _, r := range results {
		body := renderGraph(r.Root, params)
		if seen[body] {
			continue
		}
		seen[body] = true
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%%%% solution %d\n", r.ID)
		sb.WriteString(body)
	}
	return sb.String()
}

// writer threads the label counter through one graph rendering. Labels are
// assigned at first visit; a diagram is a tree, so every node is visited
// exactly once and no identity map is needed.
type writer struct {
	sb     strings.Builder
	next   int
	params []string
}

func renderGraph(root *domain.Node, params []string) string {
	w := &writer{params: params}
	w.sb.WriteString("graph TD\n")
	rootLabel := w.walk(root)
	fmt.Fprintf(&w.sb, "    S((start)) --> %s\n", rootLabel)
	return w.sb.String()
}

// walk emits the subtree rooted at n and returns its local label.
func (w *writer) walk(n *domain.Node) string {
	label := fmt.Sprintf("N%d", w.next)
	w.next++

	if n.Kind == domain.KindTerminal {
		fmt.Fprintf(&w.sb, "    %s[\"%s\"]\n", label, terminalText(n.Value))
		return label
	}

	if chain, ok := compiler.ChainAt(n); ok {
		fmt.Fprintf(&w.sb, "    %s{\"%s\"}\n", label, escape(param.Condition(chain.Vars, w.params)))
		high := w.walk(chain.Consequence)
		fmt.Fprintf(&w.sb, "    %s -->|true| %s\n", label, high)
		low := w.walk(domain.Terminal(chain.Fallback))
		fmt.Fprintf(&w.sb, "    %s -.->|false| %s\n", label, low)
		return label
	}

	fmt.Fprintf(&w.sb, "    %s{\"%s\"}\n", label, escape(param.Name(n.Var, w.params)))
	high := w.walk(n.High)
	fmt.Fprintf(&w.sb, "    %s -->|true| %s\n", label, high)
	low := w.walk(n.Low)
	fmt.Fprintf(&w.sb, "    %s -.->|false| %s\n", label, low)
	return label
}

func terminalText(v domain.Value) string {
	if v.DontCare {
		return "null"
	}
	return escape(v.Literal)
}

// escape keeps Mermaid labels parseable: double quotes would end the label.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
