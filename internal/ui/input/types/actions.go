package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type ScrollAction struct {
	Delta int
}

func (a ScrollAction) Type() string { return "scroll" }

// Selection actions
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

type FocusButtonAction struct {
	Button Button
}

func (a FocusButtonAction) Type() string { return "focus_button" }

// Open state actions
type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

type CloseAction struct{}

func (a CloseAction) Type() string { return "close" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }
