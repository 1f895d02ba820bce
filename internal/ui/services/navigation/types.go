package navigation

// Rows is the view of the row sequence navigation needs
type Rows interface {
	Len() int
	IsHeader(i int) bool
	Disabled(i int) bool
	Value(i int) string
}

// State holds all navigation-related state
type State struct {
	Cursor                    int // -1 when nothing is focused
	Loop                      bool
	InitialFocusOnFirstOption bool
	PageSize                  int
}

// Config configures a navigation service
type Config struct {
	Loop                      bool
	InitialFocusOnFirstOption bool
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// step returns the scan increment for a direction
func (d Direction) step() int {
	switch d {
	case DirectionUp, DirectionPageUp, DirectionEnd:
		return -1
	default:
		return 1
	}
}
