package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vselect/internal/ui/input/types"
	"vselect/internal/ui/services/window"
)

// Row is the render input for one materialised row
type Row struct {
	Header bool
	Group  string
	Option OptionRow
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width int

	Open          bool
	Disabled      bool
	Multi         bool
	TriggerLabel  string
	HasSelection  bool
	FocusedRegion types.Mode

	ShowSearch     bool
	SearchDisabled bool
	SearchView     string

	Window         window.State
	ViewportHeight int
	RowAt          func(index int) Row // only called for rendered indexes
	RowCount       int
	OptionCount    int

	NoOptionsMessage string

	ShowButtons       bool
	FocusedButton     types.Button
	SelectAllDisabled bool
	ClearDisabled     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	optRender   *OptionRenderer
	groupRender *GroupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		optRender:   NewOptionRenderer(styles),
		groupRender: NewGroupRenderer(styles),
	}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete widget view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 40
	}

	trigger := r.RenderTrigger(state, width)
	if !state.Open {
		return trigger
	}

	inner := width - 2 // box border
	var parts []string
	if state.ShowSearch {
		parts = append(parts, r.renderSearch(state, inner))
	}
	if state.RowCount == 0 {
		parts = append(parts, r.styles.NoOptions.Render(truncate(state.NoOptionsMessage, inner)))
	} else {
		parts = append(parts, strings.Join(r.RenderWindow(state, inner), "\n"))
		parts = append(parts, r.renderScrollInfo(state, inner))
	}
	if state.ShowButtons {
		parts = append(parts, r.renderButtons(state, inner))
	}

	box := r.styles.Box.Width(inner).Render(strings.Join(parts, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, trigger, box)
}

// RenderTrigger renders the closed-state control
func (r *Renderer) RenderTrigger(state ViewState, width int) string {
	style := r.styles.Trigger
	switch {
	case state.Disabled:
		style = r.styles.TriggerDisabled
	case state.Open:
		style = r.styles.TriggerOpen
	}

	arrow := "▾"
	if state.Open {
		arrow = "▴"
	}

	// border and padding take four cells, the arrow two
	avail := width - 6
	label := truncate(state.TriggerLabel, avail)
	text := label
	if !state.HasSelection && !state.Disabled {
		text = r.styles.Placeholder.Render(label)
	}
	text = text + strings.Repeat(" ", max(0, avail-lipgloss.Width(label)))

	return style.Render(text + " " + arrow)
}

// RenderWindow lays out the rendered rows into exactly ViewportHeight lines
func (r *Renderer) RenderWindow(state ViewState, width int) []string {
	height := max(state.ViewportHeight, 0)
	lines := make([]string, height)
	scroll := state.Window.ScrollOffset

	var sticky *window.Item
	for i := range state.Window.Items {
		item := state.Window.Items[i]
		if item.Sticky {
			sticky = &state.Window.Items[i]
		}
		for k, line := range r.renderRow(state.RowAt(item.Index), false, item.Size, width) {
			if y := item.Start + k - scroll; y >= 0 && y < height {
				lines[y] = line
			}
		}
	}

	// The governing header is drawn over the top of the viewport
	if sticky != nil {
		for k, line := range r.renderRow(state.RowAt(sticky.Index), true, sticky.Size, width) {
			if k < height {
				lines[k] = line
			}
		}
	}

	return lines
}

func (r *Renderer) renderRow(row Row, sticky bool, size, width int) []string {
	if row.Header {
		return r.groupRender.RenderGroupHeader(row.Group, sticky, size, width)
	}
	opt := row.Option
	opt.Size = size
	return r.optRender.RenderOption(opt, width)
}

func (r *Renderer) renderSearch(state ViewState, width int) string {
	style := r.styles.Search
	if state.FocusedRegion == types.ModeSearch {
		style = r.styles.SearchFocused
	}
	if state.SearchDisabled {
		style = r.styles.Dim
	}
	return style.Render("/ ") + state.SearchView + "\n" + r.styles.Dim.Render(strings.Repeat("─", max(width, 0)))
}

func (r *Renderer) renderScrollInfo(state ViewState, width int) string {
	vis := state.Window.Visible
	if vis.Empty() {
		return ""
	}
	info := fmt.Sprintf("%d-%d of %d rows", vis.Start+1, vis.End+1, state.RowCount)
	if state.OptionCount > 0 && state.OptionCount != state.RowCount {
		info += fmt.Sprintf(" (%d options)", state.OptionCount)
	}
	return r.styles.Scroll.Render(truncate(info, width))
}

func (r *Renderer) renderButtons(state ViewState, width int) string {
	button := func(label string, b types.Button, disabled bool) string {
		switch {
		case disabled:
			return r.styles.ButtonDisabled.Render(label)
		case state.FocusedRegion == types.ModeButtons && state.FocusedButton == b:
			return r.styles.ButtonFocused.Render(label)
		default:
			return r.styles.Button.Render(label)
		}
	}

	var buttons []string
	for _, b := range visibleButtons(state) {
		disabled := state.ClearDisabled
		if b == types.ButtonSelectAll {
			disabled = state.SelectAllDisabled
		}
		buttons = append(buttons, button(buttonLabels[b], b, disabled))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	return r.styles.Dim.Render(strings.Repeat("─", max(width, 0))) + "\n" + line
}

var buttonLabels = map[types.Button]string{
	types.ButtonSelectAll: "Select all",
	types.ButtonClear:     "Clear",
}

func visibleButtons(state ViewState) []types.Button {
	if state.Multi {
		return []types.Button{types.ButtonSelectAll, types.ButtonClear}
	}
	return []types.Button{types.ButtonClear}
}

// ButtonAt returns the button drawn at column x of the buttons line
func ButtonAt(state ViewState, x int) (types.Button, bool) {
	col := boxBorder
	for _, b := range visibleButtons(state) {
		w := lipgloss.Width(buttonLabels[b]) + 2 // horizontal padding
		if x >= col && x < col+w {
			return b, true
		}
		col += w
	}
	return 0, false
}

// Layout line offsets, relative to the top of the rendered widget
const (
	triggerHeight = 3 // rounded border around one line
	boxBorder     = 1
	searchHeight  = 2 // input and rule
)

// ListOrigin returns the line on which the first viewport line is drawn
func ListOrigin(state ViewState) int {
	y := triggerHeight + boxBorder
	if state.ShowSearch {
		y += searchHeight
	}
	return y
}

// SearchOrigin returns the line of the search input, or -1
func SearchOrigin(state ViewState) int {
	if !state.ShowSearch {
		return -1
	}
	return triggerHeight + boxBorder
}

// ButtonsOrigin returns the line holding the selection buttons, or -1
func ButtonsOrigin(state ViewState) int {
	if !state.ShowButtons {
		return -1
	}
	y := ListOrigin(state)
	if state.RowCount == 0 {
		y++ // no-options message
	} else {
		y += max(state.ViewportHeight, 0) + 1 // viewport and scroll info
	}
	return y + 1 // rule
}

// TriggerHeight is the number of lines the closed widget occupies
func TriggerHeight() int {
	return triggerHeight
}
