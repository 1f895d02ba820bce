package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vselect/internal/ui/input/types"
)

// ListMode handles keys while the option list has focus
type ListMode struct {
	keys types.KeyMap
}

func NewListMode(keys types.KeyMap) *ListMode {
	return &ListMode{keys: keys}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Modified presses are left to the host
	if msg.Alt {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return closeActions(), true
	case key.Matches(msg, m.keys.NextRegion):
		return changeMode(Cycle(ctx, types.ModeList, 1)), true
	case key.Matches(msg, m.keys.PrevRegion):
		return changeMode(Cycle(ctx, types.ModeList, -1)), true
	case key.Matches(msg, m.keys.Search):
		if ctx.SearchEnabled() && ctx.SearchAvailable() {
			return changeMode(types.ModeSearch), true
		}
		return nil, false
	}

	if ctx.TotalItems() == 0 {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return navigate("up"), true
	case key.Matches(msg, m.keys.Down):
		return navigate("down"), true
	case key.Matches(msg, m.keys.PageUp):
		return navigate("pageup"), true
	case key.Matches(msg, m.keys.PageDown):
		return navigate("pagedown"), true
	case key.Matches(msg, m.keys.Home):
		return navigate("home"), true
	case key.Matches(msg, m.keys.End):
		return navigate("end"), true
	case key.Matches(msg, m.keys.Select):
		return []types.Action{types.SelectAction{}}, true
	}

	return nil, false
}
