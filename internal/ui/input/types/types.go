package types

import tea "github.com/charmbracelet/bubbletea"

// Mode is the focus region that receives keys
type Mode int

const (
	ModeTrigger Mode = iota // list closed, trigger focused
	ModeSearch
	ModeList
	ModeButtons
)

func (m Mode) String() string {
	switch m {
	case ModeTrigger:
		return "trigger"
	case ModeSearch:
		return "search"
	case ModeList:
		return "list"
	case ModeButtons:
		return "buttons"
	default:
		return "unknown"
	}
}

// Button identifies a selection button
type Button int

const (
	ButtonSelectAll Button = iota
	ButtonClear
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to widget state needed for input handling
type Context interface {
	IsOpen() bool
	IsDisabled() bool
	CurrentIndex() int
	TotalItems() int
	SearchEnabled() bool
	SearchAvailable() bool // false when there are no options to search
	ButtonsEnabled() bool
	Multi() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
