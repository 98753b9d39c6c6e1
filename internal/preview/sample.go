// ABOUTME: Embedded sample document for the preview when stdin is a terminal
// ABOUTME: Rendered through glamour so the preview exercises styled ANSI input

package preview

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed sample.md
var sampleMarkdown string

// SampleText renders the embedded markdown document into styled
// terminal text. Wrapping is disabled so the preview operations control
// the line width themselves. On any renderer error the raw markdown is
// returned.
func SampleText(theme string) string {
	if theme == "" {
		theme = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return sampleMarkdown
	}

	rendered, err := renderer.Render(sampleMarkdown)
	if err != nil {
		return sampleMarkdown
	}

	return strings.TrimRight(rendered, "\n ") + "\n"
}
