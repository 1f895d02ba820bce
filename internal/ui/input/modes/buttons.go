package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vselect/internal/ui/input/types"
)

// ButtonsMode moves between the select-all and clear buttons
type ButtonsMode struct {
	keys    types.KeyMap
	focused types.Button
}

func NewButtonsMode(keys types.KeyMap) *ButtonsMode {
	return &ButtonsMode{keys: keys}
}

func (m *ButtonsMode) Name() string {
	return "buttons"
}

// Focused returns the button that receives enter
func (m *ButtonsMode) Focused() types.Button {
	return m.focused
}

func (m *ButtonsMode) Enter(ctx types.Context) []types.Action {
	// Single selections only have a clear button
	if !ctx.Multi() {
		m.focused = types.ButtonClear
	}
	return []types.Action{types.FocusButtonAction{Button: m.focused}}
}

func (m *ButtonsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ButtonsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Alt {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return closeActions(), true
	case key.Matches(msg, m.keys.NextRegion):
		return changeMode(Cycle(ctx, types.ModeButtons, 1)), true
	case key.Matches(msg, m.keys.PrevRegion):
		return changeMode(Cycle(ctx, types.ModeButtons, -1)), true
	case key.Matches(msg, m.keys.Up):
		return changeMode(types.ModeList), true
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if !ctx.Multi() {
			return nil, true
		}
		if m.focused == types.ButtonSelectAll {
			m.focused = types.ButtonClear
		} else {
			m.focused = types.ButtonSelectAll
		}
		return []types.Action{types.FocusButtonAction{Button: m.focused}}, true
	case key.Matches(msg, m.keys.Select):
		if m.focused == types.ButtonSelectAll && ctx.Multi() {
			return []types.Action{types.SelectAllAction{}}, true
		}
		return []types.Action{types.ClearAction{}}, true
	}

	return nil, false
}
