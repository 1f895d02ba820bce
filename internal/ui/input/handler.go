package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vselect/internal/ui/input/modes"
	"vselect/internal/ui/input/types"
)

// KeyMap is the widget key binding set
type KeyMap = types.KeyMap

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return types.DefaultKeyMap()
}

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	buttons     *modes.ButtonsMode
	textInput   *textinput.Model // search text, kept across region changes
	keys        KeyMap
}

func New(keys KeyMap, placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "" // Prompt is handled in the view layer

	h := &Handler{
		currentMode: types.ModeTrigger,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		buttons:     modes.NewButtonsMode(keys),
		keys:        keys,
	}

	// Register all mode handlers
	h.modes[types.ModeTrigger] = modes.NewTriggerMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(keys, h.textInput)
	h.modes[types.ModeList] = modes.NewListMode(keys)
	h.modes[types.ModeButtons] = h.buttons

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	// Unconsumed keys in a text mode edit the search text
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

// SetMode moves focus to a region outside of key handling (mouse, commits)
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		out = append(out, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// CurrentMode returns the focused region
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeTrigger
	}
	return h.currentMode
}

// FocusedButton returns the button under focus in the buttons region
func (h *Handler) FocusedButton() types.Button {
	return h.buttons.Focused()
}

// TextInput returns the shared search input
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the key bindings
func (h *Handler) Keys() KeyMap {
	return h.keys
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Reset returns to the trigger region and clears the search text
func (h *Handler) Reset() {
	h.currentMode = types.ModeTrigger
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
