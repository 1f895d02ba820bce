package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vselect/internal/ui/input/types"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openCtx() Snapshot {
	return Snapshot{Open: true, Cursor: -1, Rows: 5, Search: true, HasOptions: true, SelectionButton: true, IsMulti: true}
}

func TestTriggerOpensIntoSearch(t *testing.T) {
	h := New(DefaultKeyMap(), "Search options...")

	actions, cmd := h.HandleKey(keyMsg(tea.KeyEnter), Snapshot{HasOptions: true, Search: true, Rows: 3})
	assert.Equal(t, []types.Action{types.OpenAction{}}, actions)
	assert.NotNil(t, cmd, "entering the search region starts the cursor blink")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
}

func TestTriggerOpensIntoListWithoutSearch(t *testing.T) {
	h := New(DefaultKeyMap(), "")

	h.HandleKey(keyMsg(tea.KeyDown), Snapshot{Rows: 3})
	assert.Equal(t, types.ModeList, h.CurrentMode())

	h.Reset()
	h.HandleKey(keyMsg(tea.KeySpace), Snapshot{Rows: 3, Search: true, HasOptions: false})
	assert.Equal(t, types.ModeList, h.CurrentMode(), "search is skipped when there is nothing to search")
}

func TestDisabledTriggerIgnoresKeys(t *testing.T) {
	h := New(DefaultKeyMap(), "")
	actions, _ := h.HandleKey(keyMsg(tea.KeyEnter), Snapshot{Disabled: true})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeTrigger, h.CurrentMode())
}

func TestListNavigation(t *testing.T) {
	h := New(DefaultKeyMap(), "")
	ctx := openCtx()
	ctx.Search = false
	h.SetMode(types.ModeList, ctx)

	cases := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{keyMsg(tea.KeyDown), types.NavigateAction{Direction: "down"}},
		{keyMsg(tea.KeyUp), types.NavigateAction{Direction: "up"}},
		{keyMsg(tea.KeyPgDown), types.NavigateAction{Direction: "pagedown"}},
		{keyMsg(tea.KeyHome), types.NavigateAction{Direction: "home"}},
		{keyMsg(tea.KeyEnter), types.SelectAction{}},
	}
	for _, tc := range cases {
		actions, _ := h.HandleKey(tc.msg, ctx)
		assert.Equal(t, []types.Action{tc.want}, actions, tc.msg.String())
	}
}

func TestListIgnoresModifiedAndEmpty(t *testing.T) {
	h := New(DefaultKeyMap(), "")
	ctx := openCtx()
	h.SetMode(types.ModeList, ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown, Alt: true}, ctx)
	assert.Empty(t, actions)

	ctx.Rows = 0
	actions, _ = h.HandleKey(keyMsg(tea.KeyDown), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(keyMsg(tea.KeyEnter), ctx)
	assert.Empty(t, actions)
}

func TestSearchTypingUpdatesText(t *testing.T) {
	h := New(DefaultKeyMap(), "")
	ctx := openCtx()
	h.HandleKey(keyMsg(tea.KeyEnter), Snapshot{Search: true, HasOptions: true, Rows: 5})
	require.Equal(t, types.ModeSearch, h.CurrentMode())

	actions, _ := h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "a"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "a "}}, actions, "space types in the search region")

	actions, _ = h.HandleKey(keyMsg(tea.KeyLeft), ctx)
	assert.Empty(t, actions, "cursor movement does not change the text")

	actions, _ = h.HandleKey(keyMsg(tea.KeyDown), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(keyMsg(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.SelectAction{}}, actions)
}

func TestTabCyclesRegions(t *testing.T) {
	h := New(DefaultKeyMap(), "")
	ctx := openCtx()
	h.SetMode(types.ModeSearch, ctx)
	h.HandleKey(runes("q"), ctx)

	h.HandleKey(keyMsg(tea.KeyTab), ctx)
	assert.Equal(t, types.ModeList, h.CurrentMode())
	h.HandleKey(keyMsg(tea.KeyTab), ctx)
	assert.Equal(t, types.ModeButtons, h.CurrentMode())
	h.HandleKey(keyMsg(tea.KeyTab), ctx)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "q", h.TextInput().Value(), "search text survives region changes")

	h.HandleKey(keyMsg(tea.KeyShiftTab), ctx)
	assert.Equal(t, types.ModeButtons, h.CurrentMode())
}

func TestButtonsRegion(t *testing.T) {
	h := New(DefaultKeyMap(), "")
	ctx := openCtx()

	actions := h.SetMode(types.ModeButtons, ctx)
	assert.Equal(t, []types.Action{types.FocusButtonAction{Button: types.ButtonSelectAll}}, actions)

	got, _ := h.HandleKey(keyMsg(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.SelectAllAction{}}, got)

	got, _ = h.HandleKey(keyMsg(tea.KeyRight), ctx)
	assert.Equal(t, []types.Action{types.FocusButtonAction{Button: types.ButtonClear}}, got)
	assert.Equal(t, types.ButtonClear, h.FocusedButton())

	got, _ = h.HandleKey(keyMsg(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.ClearAction{}}, got)

	h.HandleKey(keyMsg(tea.KeyUp), ctx)
	assert.Equal(t, types.ModeList, h.CurrentMode())
}

func TestSingleButtonsOnlyClear(t *testing.T) {
	h := New(DefaultKeyMap(), "")
	ctx := openCtx()
	ctx.IsMulti = false

	h.SetMode(types.ModeButtons, ctx)
	assert.Equal(t, types.ButtonClear, h.FocusedButton())
	got, _ := h.HandleKey(keyMsg(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.ClearAction{}}, got)
}

func TestEscCloses(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeSearch, types.ModeList, types.ModeButtons} {
		h := New(DefaultKeyMap(), "")
		ctx := openCtx()
		h.SetMode(mode, ctx)

		actions, _ := h.HandleKey(keyMsg(tea.KeyEsc), ctx)
		require.NotEmpty(t, actions, mode.String())
		assert.Equal(t, types.CloseAction{}, actions[0], mode.String())
		assert.Equal(t, types.ModeTrigger, h.CurrentMode(), mode.String())
	}
}

func TestResetClearsSearchText(t *testing.T) {
	h := New(DefaultKeyMap(), "")
	ctx := openCtx()
	h.SetMode(types.ModeSearch, ctx)
	h.HandleKey(runes("xyz"), ctx)
	require.Equal(t, "xyz", h.TextInput().Value())

	h.Reset()
	assert.Equal(t, "", h.TextInput().Value())
	assert.Equal(t, types.ModeTrigger, h.CurrentMode())
	assert.False(t, h.TextInput().Focused())
}
