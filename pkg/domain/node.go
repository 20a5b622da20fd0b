package domain

// Kind discriminates the two node variants. Consumers switch on Kind rather
// than relying on type assertions or pointer identity.
type Kind int

const (
	// KindTerminal is a leaf holding an output Value.
	KindTerminal Kind = iota
	// KindDecision is an internal node testing one input variable.
	KindDecision
)

// Node is one vertex of a decision diagram.
//
// For KindTerminal only Value is meaningful. For KindDecision, Var is the
// index of the original input variable this node tests (independent of the
// order in which variables were evaluated during construction), High is the
// subtree taken when that variable is true and Low the subtree when it is
// false. Both children are owned exclusively by their parent: diagrams are
// trees, not shared graphs.
//
// Nodes are immutable once built. Every Node in a compiled diagram is
// produced by compiler.Reduce, which guarantees that no decision node has two
// structurally equal children and that don't-care terminals survive only when
// an entire subtree is unconstrained.
type Node struct {
	Kind  Kind
	Value Value
	Var   int
	High  *Node
	Low   *Node
}

// Terminal builds a leaf node holding v.
func Terminal(v Value) *Node {
	return &Node{Kind: KindTerminal, Value: v}
}

// IsDontCare reports whether n is the don't-care terminal.
func (n *Node) IsDontCare() bool {
	return n.Kind == KindTerminal && n.Value.DontCare
}

// Equal reports deep structural equality: same variant and, recursively, same
// content. Two distinct objects with identical shape are equal.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil || n.Kind != o.Kind {
		return false
	}
	if n.Kind == KindTerminal {
		return n.Value == o.Value
	}
	return n.Var == o.Var && n.High.Equal(o.High) && n.Low.Equal(o.Low)
}
