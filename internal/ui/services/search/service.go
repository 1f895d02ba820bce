package search

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vselect/internal/eventbus"
)

// Service debounces raw search input into committed filter text.
// It holds a single slot: every Input supersedes the pending one.
type Service struct {
	state    *State
	bus      eventbus.EventBus
	owner    string
	delay    time.Duration
	commitFn func(text string) int // applies the text, returns the row count
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus, owner string, delay time.Duration) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if delay < 0 {
		delay = 0
	}
	return &Service{
		state: &State{},
		bus:   bus,
		owner: owner,
		delay: delay,
	}
}

// SetCommitFunction sets the function that applies committed text
func (s *Service) SetCommitFunction(fn func(text string) int) {
	s.commitFn = fn
}

// Delay returns the debounce window
func (s *Service) Delay() time.Duration {
	return s.delay
}

// Input records raw text and schedules its commit.
// A zero delay still commits on the next tick.
func (s *Service) Input(text string) tea.Cmd {
	if s.state.Closed {
		return nil
	}

	s.state.Pending = text
	s.state.Seq++
	msg := CommitMsg{Owner: s.owner, ID: s.state.Seq, Text: text}

	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return msg
	})
}

// Owns reports whether a commit message belongs to this service
func (s *Service) Owns(msg CommitMsg) bool {
	return msg.Owner == s.owner
}

// Accept commits msg if it is the latest scheduled tick
func (s *Service) Accept(msg CommitMsg) (string, bool) {
	if s.state.Closed || !s.Owns(msg) || msg.ID != s.state.Seq {
		return "", false
	}

	s.state.Committed = msg.Text
	rowCount := 0
	if s.commitFn != nil {
		rowCount = s.commitFn(msg.Text)
	}

	log.Printf("search: committed %q (%d rows)", msg.Text, rowCount)
	s.bus.Publish(eventbus.SearchCommittedEvent{
		WidgetID: s.owner,
		Text:     msg.Text,
		RowCount: rowCount,
	})
	return msg.Text, true
}

// Cancel drops any pending commit without closing the service
func (s *Service) Cancel() {
	s.state.Seq++
	s.state.Pending = s.state.Committed
}

// Reset drops pending and committed text, as if nothing was ever typed
func (s *Service) Reset() {
	s.state.Seq++
	s.state.Pending = ""
	s.state.Committed = ""
}

// Close cancels the pending commit; ticks already scheduled are ignored
func (s *Service) Close() {
	s.state.Seq++
	s.state.Closed = true
}

// Committed returns the committed filter text
func (s *Service) Committed() string {
	return s.state.Committed
}

// Pending returns the latest raw input
func (s *Service) Pending() string {
	return s.state.Pending
}

// IsPending reports whether raw input differs from the committed text
func (s *Service) IsPending() bool {
	return s.state.Pending != s.state.Committed
}

// Highlight returns the byte span of the committed text inside label
func (s *Service) Highlight(label string) (int, int, bool) {
	needle := strings.ToLower(strings.TrimSpace(s.state.Committed))
	if needle == "" {
		return 0, 0, false
	}
	lower := strings.ToLower(label)
	if len(lower) != len(label) {
		// case folding changed byte widths, offsets would not line up
		return 0, 0, false
	}
	start := strings.Index(lower, needle)
	if start < 0 {
		return 0, 0, false
	}
	return start, start + len(needle), true
}
