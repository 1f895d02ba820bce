package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// OptionRow is the render input for one option row
type OptionRow struct {
	Label     string
	Focused   bool
	Selected  bool
	Disabled  bool
	Multi     bool
	Indent    bool
	Size      int
	HlStart   int // byte span of the search match in Label
	HlEnd     int
	Highlight bool
}

// OptionRenderer handles rendering of option rows
type OptionRenderer struct {
	styles *Styles
}

// NewOptionRenderer creates a new option renderer
func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{
		styles: styles,
	}
}

// RenderOption renders an option as row.Size lines of the given width
func (o *OptionRenderer) RenderOption(row OptionRow, width int) []string {
	var prefix strings.Builder
	if row.Indent {
		prefix.WriteString("  ")
	}
	switch {
	case row.Multi && row.Selected:
		prefix.WriteString("[x] ")
	case row.Multi:
		prefix.WriteString("[ ] ")
	case row.Selected:
		prefix.WriteString("✓ ")
	default:
		prefix.WriteString("  ")
	}

	avail := width - runewidth.StringWidth(prefix.String())
	label := truncate(row.Label, avail)

	style := o.styles.Option
	switch {
	case row.Disabled:
		style = o.styles.OptionDisabled
	case row.Selected:
		style = o.styles.OptionSelected
	}
	if row.Focused {
		style = style.Inherit(o.styles.OptionFocused)
	}

	// Highlight only when the whole match survived truncation
	body := style.Render(label)
	if row.Highlight && !row.Disabled && row.HlEnd <= len(row.Label) && strings.HasPrefix(label, row.Label[:row.HlEnd]) {
		body = style.Render(label[:row.HlStart]) +
			o.styles.Highlight.Inherit(style).Render(label[row.HlStart:row.HlEnd]) +
			style.Render(label[row.HlEnd:])
	}

	first := style.Render(prefix.String()) + body
	if row.Focused {
		first = first + style.Render(strings.Repeat(" ", max(0, avail-runewidth.StringWidth(label))))
	}

	lines := make([]string, max(row.Size, 1))
	lines[0] = first
	for i := 1; i < len(lines); i++ {
		blank := strings.Repeat(" ", max(width, 0))
		if row.Focused {
			blank = style.Render(blank)
		}
		lines[i] = blank
	}
	return lines
}

// truncate shortens s to width cells with a trailing ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}
