package ui

import (
	"time"

	"vselect/internal/eventbus"
	"vselect/internal/ui/input"
	"vselect/internal/ui/services/rows"
	"vselect/internal/ui/services/search"
	"vselect/internal/ui/services/selection"
)

// Construction errors, re-exported so callers only import this package
var (
	ErrMissingValueFunc = rows.ErrMissingValueFunc
	ErrSelectionShape   = selection.ErrSelectionShape
)

// KeyMap is the widget key binding set
type KeyMap = input.KeyMap

// DefaultKeyMap returns the default widget key bindings
func DefaultKeyMap() KeyMap {
	return input.DefaultKeyMap()
}

// Defaults applied when an option is left at its zero value
const (
	DefaultSearchPlaceholder = "Search options..."
	DefaultNoOptionsMessage  = "No options found."
	DefaultMinHeight         = 1
	DefaultMaxHeight         = 6
	DefaultWidth             = 40
)

// Options configures a Select widget.
// Only GetOptionValue is required.
type Options[T any] struct {
	IsMulti bool
	Options []T

	GetOptionValue   func(T) string
	GetOptionLabel   func(T) string
	GetOptionGroup   func(T) string // nil disables grouping
	IsOptionDisabled func(T) bool

	// Selection makes the widget controlled; DefaultSelection seeds an
	// uncontrolled widget. Both must match IsMulti.
	Selection        *selection.Value
	DefaultSelection selection.Value

	EnableSearch      bool
	SearchPlaceholder string
	SearchDebounce    *time.Duration // nil means search.DefaultDelay

	StickyGroups              bool
	InitialFocusOnFirstOption bool
	Loop                      bool

	CloseOnChange          bool
	ForceSelection         bool
	EnableSelectionOptions bool

	// Extents in terminal lines
	GetOptionSize          func(T) int
	DefaultOptionSize      int
	GetOptionGroupSize     func(group string) int
	DefaultOptionGroupSize int
	Gap                    int
	Overscan               int
	MinHeight              int
	MaxHeight              int
	Width                  int

	NoOptionsMessage string
	IsDisabled       bool

	OnSelectionChange func(selection.Value)
	OnOpenChange      func(open bool)

	Bus    eventbus.EventBus
	KeyMap *KeyMap
}

// Debounce returns a pointer for Options.SearchDebounce
func Debounce(d time.Duration) *time.Duration {
	return &d
}

func (o Options[T]) withDefaults() Options[T] {
	if o.SearchPlaceholder == "" {
		o.SearchPlaceholder = DefaultSearchPlaceholder
	}
	if o.NoOptionsMessage == "" {
		o.NoOptionsMessage = DefaultNoOptionsMessage
	}
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinHeight
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	if o.MaxHeight < o.MinHeight {
		o.MaxHeight = o.MinHeight
	}
	if o.DefaultOptionSize <= 0 {
		o.DefaultOptionSize = rows.DefaultOptionSize
	}
	if o.DefaultOptionGroupSize <= 0 {
		o.DefaultOptionGroupSize = rows.DefaultGroupSize
	}
	if o.Bus == nil {
		o.Bus = eventbus.NullBus{}
	}
	return o
}

func (o Options[T]) debounce() time.Duration {
	if o.SearchDebounce == nil {
		return search.DefaultDelay
	}
	return *o.SearchDebounce
}

func (o Options[T]) accessors() rows.Accessors[T] {
	return rows.Accessors[T]{
		Value:             o.GetOptionValue,
		Label:             o.GetOptionLabel,
		Group:             o.GetOptionGroup,
		Disabled:          o.IsOptionDisabled,
		Size:              o.GetOptionSize,
		GroupSize:         o.GetOptionGroupSize,
		DefaultOptionSize: o.DefaultOptionSize,
		DefaultGroupSize:  o.DefaultOptionGroupSize,
	}
}

func (o Options[T]) selectionConfig() selection.Config {
	cfg := selection.Config{
		Multi:                  o.IsMulti,
		Ownership:              selection.Uncontrolled,
		Initial:                o.DefaultSelection,
		ForceSelection:         o.ForceSelection,
		CloseOnChange:          o.CloseOnChange,
		EnableSelectionOptions: o.EnableSelectionOptions,
		OnChange:               o.OnSelectionChange,
	}
	if o.Selection != nil {
		cfg.Ownership = selection.Controlled
		cfg.Initial = *o.Selection
	}
	return cfg
}
