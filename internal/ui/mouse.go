package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	inputtypes "vselect/internal/ui/input/types"
	"vselect/internal/ui/views"
)

// wheelLines is how far one wheel notch scrolls the list
const wheelLines = 3

// handleMouse maps pointer events onto the widget regions
func (s *Select[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if s.opts.IsDisabled {
		return nil
	}
	x, y := msg.X-s.originX, msg.Y-s.originY

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if s.open {
			return s.processAction(inputtypes.ScrollAction{Delta: -wheelLines})
		}
	case tea.MouseButtonWheelDown:
		if s.open {
			return s.processAction(inputtypes.ScrollAction{Delta: wheelLines})
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			return s.click(x, y)
		}
	case tea.MouseButtonNone:
		if msg.Action == tea.MouseActionMotion && s.open {
			// Pointer-over moves focus, like hovering an option
			if index := s.indexAtLine(s.viewState(), y); index >= 0 {
				s.nav.FocusIndex(index)
			}
		}
	}
	return nil
}

func (s *Select[T]) click(x, y int) tea.Cmd {
	if y >= 0 && y < views.TriggerHeight() {
		if s.open {
			s.Close()
		} else {
			s.Open()
		}
		return nil
	}
	if !s.open {
		return nil
	}

	state := s.viewState()
	switch {
	case state.ShowSearch && y == views.SearchOrigin(state):
		if !state.SearchDisabled {
			s.inputHandler.SetMode(inputtypes.ModeSearch, s.context())
			return textinput.Blink
		}

	case state.ShowButtons && y == views.ButtonsOrigin(state):
		b, ok := views.ButtonAt(state, x)
		if !ok {
			return nil
		}
		if b == inputtypes.ButtonSelectAll {
			return s.processAction(inputtypes.SelectAllAction{})
		}
		return s.processAction(inputtypes.ClearAction{})

	default:
		index := s.indexAtLine(state, y)
		if !s.nav.IsValid(index) {
			return nil
		}
		s.nav.FocusIndex(index)
		s.inputHandler.SetMode(inputtypes.ModeList, s.context())
		return s.processAction(inputtypes.SelectAction{})
	}
	return nil
}

// indexAtLine returns the row under widget line y, or -1.
// Lines covered by the pinned header never resolve to the row beneath.
func (s *Select[T]) indexAtLine(state views.ViewState, y int) int {
	line := y - views.ListOrigin(state)
	if line < 0 || line >= state.ViewportHeight || state.RowCount == 0 {
		return -1
	}
	for _, item := range state.Window.Items {
		if item.Sticky && line < item.Size {
			return -1
		}
	}
	return s.engine.IndexAtOffset(state.Window.ScrollOffset + line)
}
