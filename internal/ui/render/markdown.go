package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders md for the terminal with the named glamour style, wrapped
// at width. The source text is returned unchanged when rendering fails.
func Markdown(md, style string, width int) string {
	if style == "" {
		style = "dark"
	}
	if width < 0 {
		width = 0
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
