package domain

// Value is the output carried by a terminal node. It is a tagged pair rather
// than a bare string so that the don't-care sentinel can never collide with a
// legal literal, including the literal token users type for don't-care (that
// token is translated away at ingestion, see pkg/table).
//
// Values compare structurally: two Values are equal iff == reports them equal.
type Value struct {
	DontCare bool   `json:"dont_care,omitempty" yaml:"dont_care,omitempty"`
	Literal  string `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// AnyValue is the don't-care sentinel.
var AnyValue = Value{DontCare: true}

// NewLiteral wraps an opaque output string. The string is never interpreted
// further (no numeric parsing, no trimming).
func NewLiteral(s string) Value {
	return Value{Literal: s}
}

// String renders the value for logs and the analyze table. Renderers do not
// use this; they have their own output contracts.
func (v Value) String() string {
	if v.DontCare {
		return "<any>"
	}
	return v.Literal
}
