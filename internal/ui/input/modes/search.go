package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vselect/internal/ui/input/types"
)

// SearchMode edits the search text; arrow keys and enter still drive the list
type SearchMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewSearchMode(keys types.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{keys: keys, textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return closeActions(), true
	case key.Matches(msg, m.keys.NextRegion):
		return changeMode(Cycle(ctx, types.ModeSearch, 1)), true
	case key.Matches(msg, m.keys.PrevRegion):
		return changeMode(Cycle(ctx, types.ModeSearch, -1)), true
	}

	if msg.Alt || ctx.TotalItems() == 0 {
		// Let the main handler update the text input
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
	case msg.Type == tea.KeyEnter:
		return []types.Action{types.SelectAction{}}, true
	}

	return nil, false
}
