package tui

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	markdownRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	markdownRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// getMarkdownRenderer returns a cached glamour renderer.
// The renderer is initialized once and reused across all calls.
func getMarkdownRenderer() *glamour.TermRenderer {
	markdownRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			markdownRenderer = r
		}
	})
	return markdownRenderer
}

// RenderMarkdown renders a Markdown body for terminal display.
// Falls back to the raw text when the renderer is unavailable or fails.
func RenderMarkdown(body string) string {
	renderer := getMarkdownRenderer()
	if renderer == nil {
		return body
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return rendered
}
