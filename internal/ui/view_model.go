package ui

import (
	inputtypes "vselect/internal/ui/input/types"
	"vselect/internal/ui/services/rows"
	"vselect/internal/ui/views"
)

// viewState transforms widget state into view-ready data
func (s *Select[T]) viewState() views.ViewState {
	width := s.width
	if width <= 0 {
		width = DefaultWidth
	}

	state := views.ViewState{
		Width:         width,
		Open:          s.open,
		Disabled:      s.opts.IsDisabled,
		Multi:         s.opts.IsMulti,
		TriggerLabel:  s.selection.TriggerLabel(),
		HasSelection:  !s.selection.Selection().IsEmpty(),
		FocusedRegion: s.inputHandler.CurrentMode(),
	}
	if !s.open {
		return state
	}

	seq := s.rows.Sequence()
	catalog := s.rows.Catalog()

	state.ShowSearch = s.opts.EnableSearch
	state.SearchDisabled = catalog.Len() == 0
	state.SearchView = s.inputHandler.TextInput().View()

	state.Window = s.engine.Compute()
	state.ViewportHeight = s.engine.Viewport()
	state.RowCount = seq.Len()
	state.OptionCount = seq.Len() - len(seq.GroupHeaderIndexes)
	state.RowAt = s.rowAt
	state.NoOptionsMessage = s.opts.NoOptionsMessage

	state.ShowButtons = s.opts.EnableSelectionOptions
	state.FocusedButton = s.inputHandler.FocusedButton()
	state.SelectAllDisabled = s.selection.IsSelectAllDisabled()
	state.ClearDisabled = s.selection.IsClearDisabled()

	return state
}

// rowAt builds the render input for one rendered row
func (s *Select[T]) rowAt(index int) views.Row {
	seq := s.rows.Sequence()
	row, ok := seq.At(index)
	if !ok {
		return views.Row{}
	}

	switch row.Kind {
	case rows.KindGroupHeader:
		return views.Row{Header: true, Group: row.Group}
	case rows.KindOption:
		label := seq.Label(index)
		opt := views.OptionRow{
			Label:    label,
			Focused:  index == s.nav.GetCursor() && s.inputHandler.CurrentMode() != inputtypes.ModeButtons,
			Selected: s.selection.IsSelected(seq.Value(index)),
			Disabled: seq.Disabled(index),
			Multi:    s.opts.IsMulti,
			Indent:   len(seq.GroupHeaderIndexes) > 0,
		}
		opt.HlStart, opt.HlEnd, opt.Highlight = s.search.Highlight(label)
		return views.Row{Option: opt}
	}
	return views.Row{}
}
