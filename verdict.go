package verdict

import (
	"log/slog"

	"github.com/aretw0/verdict/internal/compiler"
	"github.com/aretw0/verdict/internal/logging"
	"github.com/aretw0/verdict/internal/presentation/code"
	"github.com/aretw0/verdict/internal/presentation/graph"
	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/table"
)

// Engine is the high-level entry point for the Verdict library. It wraps the
// internal compiler and provides a simplified API for consumers: translate
// raw outputs, search variable orders, render the winners.
type Engine struct {
	logger   *slog.Logger
	dontCare string
	funcName string
	params   []string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDontCare overrides the reserved don't-care token (default "*").
func WithDontCare(token string) Option {
	return func(e *Engine) {
		e.dontCare = token
	}
}

// WithFuncName sets the function name used by the code emitter.
func WithFuncName(name string) Option {
	return func(e *Engine) {
		e.funcName = name
	}
}

// WithParams sets positional parameter names for the input variables.
func WithParams(params []string) Option {
	return func(e *Engine) {
		e.params = params
	}
}

// New initializes a new Verdict Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		dontCare: table.DefaultDontCare,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Analyze compiles the table under every variable order and returns one
// result per order. Fails only when the table length is not a power of two.
func (e *Engine) Analyze(values []string) ([]domain.Result, error) {
	results, err := compiler.Analyze(table.Translate(values, e.dontCare))
	if err != nil {
		return nil, err
	}
	e.logger.Debug("analyzed truth table",
		"rows", len(values),
		"orders", len(results),
	)
	return results, nil
}

// Optimal returns the minimum-score subset of Analyze. Ties are kept.
func (e *Engine) Optimal(values []string) ([]domain.Result, error) {
	results, err := e.Analyze(values)
	if err != nil {
		return nil, err
	}
	best := compiler.Best(results)
	e.logger.Debug("selected optimal orders",
		"score", best[0].Score,
		"count", len(best),
	)
	return best, nil
}

// Code renders the optimal results as JavaScript functions, one per distinct
// body.
func (e *Engine) Code(values []string) (string, error) {
	best, err := e.Optimal(values)
	if err != nil {
		return "", err
	}
	return code.Generate(best, code.Options{FuncName: e.funcName, Params: e.params}), nil
}

// Flowchart renders the optimal results as Mermaid flowcharts, one per
// distinct graph.
func (e *Engine) Flowchart(values []string) (string, error) {
	best, err := e.Optimal(values)
	if err != nil {
		return "", err
	}
	return graph.Generate(best, e.params), nil
}
