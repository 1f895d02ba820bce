package search

import "time"

// DefaultDelay is the debounce window applied when none is configured
const DefaultDelay = 200 * time.Millisecond

// State holds search state
type State struct {
	Pending   string // latest raw input
	Committed string // text the rows are filtered by
	Seq       uint64 // id of the only tick allowed to commit
	Closed    bool
}

// CommitMsg is delivered when a debounce window elapses.
// Owner routes the message to one widget when several share a program.
type CommitMsg struct {
	Owner string
	ID    uint64
	Text  string
}
