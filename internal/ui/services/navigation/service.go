package navigation

import (
	"vselect/internal/eventbus"
)

// Service owns the focused-row cursor over a row sequence
type Service struct {
	state    *State
	rows     Rows
	bus      eventbus.EventBus
	widgetID string
	scrollFn func(index int) // keeps the focused row in view
}

// NewService creates a new navigation service
func NewService(bus eventbus.EventBus, widgetID string, cfg Config) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{
			Cursor:                    -1,
			Loop:                      cfg.Loop,
			InitialFocusOnFirstOption: cfg.InitialFocusOnFirstOption,
			PageSize:                  10,
		},
		bus:      bus,
		widgetID: widgetID,
	}
}

// SetScrollFunction sets the function used to reveal the focused row
func (s *Service) SetScrollFunction(fn func(index int)) {
	s.scrollFn = fn
}

// SetPageSize sets how many rows PageUp and PageDown skip
func (s *Service) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	s.state.PageSize = n
}

// SetRows installs a rebuilt row sequence and resets the cursor
func (s *Service) SetRows(rows Rows) {
	s.rows = rows
	s.Reset()
}

// Reset moves the cursor back to its initial position
func (s *Service) Reset() {
	s.setCursor(s.InitialIndex())
}

// InitialIndex is -1, or the first content row when initial focus is on
func (s *Service) InitialIndex() int {
	n := s.count()
	if !s.state.InitialFocusOnFirstOption || n == 0 {
		return -1
	}
	if s.rows.IsHeader(0) {
		if n > 1 {
			return 1
		}
		return -1
	}
	return 0
}

// GetCursor returns the focused index
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetState returns a copy of the navigation state
func (s *Service) GetState() State {
	return *s.state
}

// IsValid reports whether index i can hold focus
func (s *Service) IsValid(i int) bool {
	if i < 0 || i >= s.count() {
		return false
	}
	return !s.rows.IsHeader(i) && !s.rows.Disabled(i)
}

// Navigate moves the cursor and returns the new index
func (s *Service) Navigate(direction Direction) int {
	if s.count() == 0 {
		return s.state.Cursor
	}

	var next int
	switch direction {
	case DirectionUp, DirectionDown:
		next = s.nextValid(s.state.Cursor, direction.step())
	case DirectionPageUp, DirectionPageDown:
		next = s.page(direction.step())
	case DirectionHome:
		next = s.scanFrom(0, 1)
	case DirectionEnd:
		next = s.scanFrom(s.count()-1, -1)
	default:
		return s.state.Cursor
	}
	if next < 0 {
		next = s.state.Cursor
	}

	s.setCursor(next)
	if s.state.Cursor >= 0 && s.scrollFn != nil {
		s.scrollFn(s.state.Cursor)
	}
	return s.state.Cursor
}

// FocusIndex focuses a row directly (pointer hover); headers and disabled
// rows are ignored
func (s *Service) FocusIndex(i int) bool {
	if !s.IsValid(i) {
		return false
	}
	return s.setCursor(i)
}

// Activate returns the value to select for the focused row
func (s *Service) Activate(inButtons bool) (string, bool) {
	if inButtons || s.state.Cursor == -1 {
		return "", false
	}
	if !s.IsValid(s.state.Cursor) {
		return "", false
	}
	return s.rows.Value(s.state.Cursor), true
}

// nextValid advances one step from current and scans for a focusable row.
// It returns current when nothing qualifies.
func (s *Service) nextValid(current, step int) int {
	last := s.count() - 1
	next := current

	if !s.state.Loop && current == -1 {
		if step < 0 {
			next = last
		} else {
			next = 0
		}
	} else {
		next += step
	}

	if s.state.Loop {
		next = wrap(next, last)
	} else if next < 0 || next > last {
		return current
	}

	// Bounded so a wrapping scan from -1 over an all-invalid sequence ends
	for checked := 0; !s.IsValid(next); checked++ {
		if checked > last {
			return current
		}
		next += step
		if s.state.Loop {
			next = wrap(next, last)
		} else if next < 0 || next > last {
			return current
		}
		if next == current {
			return current
		}
	}

	return next
}

// page jumps by the page size and settles on the nearest valid row
func (s *Service) page(step int) int {
	last := s.count() - 1
	target := s.state.Cursor + step*s.state.PageSize
	if s.state.Cursor == -1 {
		if step > 0 {
			target = 0
		} else {
			target = last
		}
	}
	target = max(0, min(last, target))

	if i := s.scanFrom(target, step); i >= 0 {
		return i
	}
	return s.scanFrom(target, -step)
}

// scanFrom returns the first valid index from start in the step direction
// without wrapping, or -1
func (s *Service) scanFrom(start, step int) int {
	for i := start; i >= 0 && i < s.count(); i += step {
		if s.IsValid(i) {
			return i
		}
	}
	return -1
}

func (s *Service) setCursor(i int) bool {
	old := s.state.Cursor
	if old == i {
		return false
	}
	s.state.Cursor = i
	s.bus.Publish(eventbus.CursorMovedEvent{
		WidgetID: s.widgetID,
		OldIndex: old,
		NewIndex: i,
	})
	return true
}

func (s *Service) count() int {
	if s.rows == nil {
		return 0
	}
	return s.rows.Len()
}

func wrap(i, last int) int {
	if i > last {
		return 0
	}
	if i < 0 {
		return last
	}
	return i
}
