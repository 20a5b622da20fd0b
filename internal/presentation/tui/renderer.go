package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects light/dark terminal backgrounds.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return "", fmt.Errorf("failed to build terminal renderer: %w", err)
		}
		return r.Render(markdown)
	}
}

// RenderFence wraps body in a fenced code block with the given language and
// renders it for the terminal. Used by the --pretty CLI flag to show emitted
// JavaScript and Mermaid with highlighting.
func RenderFence(lang, body string) (string, error) {
	render := NewRenderer()
	return render(fmt.Sprintf("```%s\n%s\n```\n", lang, body))
}
