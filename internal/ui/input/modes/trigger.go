package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vselect/internal/ui/input/types"
)

// TriggerMode handles keys while the list is closed
type TriggerMode struct {
	keys types.KeyMap
}

func NewTriggerMode(keys types.KeyMap) *TriggerMode {
	return &TriggerMode{keys: keys}
}

func (m *TriggerMode) Name() string {
	return "trigger"
}

func (m *TriggerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *TriggerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *TriggerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if ctx.IsDisabled() || msg.Alt {
		return nil, false
	}
	if key.Matches(msg, m.keys.Open) {
		return []types.Action{
			types.OpenAction{},
			types.ChangeModeAction{Mode: EntryRegion(ctx)},
		}, true
	}
	return nil, false
}
