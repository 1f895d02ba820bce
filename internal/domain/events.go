package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventOpenChanged      EventType = "OpenChanged"
	EventSearchCommitted  EventType = "SearchCommitted"
	EventCursorMoved      EventType = "CursorMoved"
	EventOptionsChanged   EventType = "OptionsChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after a selection commit.
// Values holds the full new selection; for single mode it has at most one entry.
type SelectionChangedEvent struct {
	WidgetID string
	Multi    bool
	Values   []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// OpenChangedEvent is emitted when the option list opens or closes
type OpenChangedEvent struct {
	WidgetID string
	Open     bool
}

func (e OpenChangedEvent) Type() EventType { return EventOpenChanged }

// SearchCommittedEvent is emitted when a debounced search text is applied
type SearchCommittedEvent struct {
	WidgetID string
	Text     string
	RowCount int
}

func (e SearchCommittedEvent) Type() EventType { return EventSearchCommitted }

// CursorMovedEvent is emitted when the focused row changes
type CursorMovedEvent struct {
	WidgetID string
	OldIndex int
	NewIndex int
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// OptionsChangedEvent is emitted when the source option set is replaced
type OptionsChangedEvent struct {
	WidgetID string
	Count    int
}

func (e OptionsChangedEvent) Type() EventType { return EventOptionsChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
