package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GroupRenderer handles rendering of group headers
type GroupRenderer struct {
	styles *Styles
}

// NewGroupRenderer creates a new group renderer
func NewGroupRenderer(styles *Styles) *GroupRenderer {
	return &GroupRenderer{
		styles: styles,
	}
}

// RenderGroupHeader renders a header as size lines of the given width.
// Pinned headers get a background so rows scrolling under them stay distinct.
func (g *GroupRenderer) RenderGroupHeader(name string, sticky bool, size, width int) []string {
	style := g.styles.GroupHeader
	if sticky {
		style = g.styles.StickyHeader
	}

	line := truncate(name, width)
	if sticky {
		line = pad(line, width)
	}

	lines := make([]string, max(size, 1))
	lines[0] = style.Render(line)
	for i := 1; i < len(lines); i++ {
		lines[i] = style.Render(strings.Repeat(" ", max(width, 0)))
	}
	return lines
}

// pad fills line with spaces up to width cells
func pad(line string, width int) string {
	if w := lipgloss.Width(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
