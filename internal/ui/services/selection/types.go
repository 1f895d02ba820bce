package selection

import (
	"errors"
	"strconv"
)

// ErrSelectionShape is returned when a value does not match the controller mode
var ErrSelectionShape = errors.New("selection: value shape does not match single/multi mode")

// Ownership decides who owns the selection state
type Ownership int

const (
	// Uncontrolled keeps a shadow copy seeded from the default value
	Uncontrolled Ownership = iota
	// Controlled reads the caller's value and only emits change requests
	Controlled
)

func (o Ownership) String() string {
	if o == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// CommitEffect tells the widget what to do after a commit
type CommitEffect int

const (
	EffectNone CommitEffect = iota
	EffectClose
	EffectFocusList
)

// Value is a selection in either shape.
// In single mode Values holds zero (null) or one entry.
type Value struct {
	Multi  bool
	Values []string
}

// None is the empty single selection
func None() Value {
	return Value{}
}

// Single builds a single selection
func Single(v string) Value {
	return Value{Values: []string{v}}
}

// Many builds a multi selection
func Many(values ...string) Value {
	if values == nil {
		values = []string{}
	}
	return Value{Multi: true, Values: values}
}

// Get returns the single value, ok is false for null
func (v Value) Get() (string, bool) {
	if len(v.Values) == 0 {
		return "", false
	}
	return v.Values[0], true
}

// Len returns the number of selected values
func (v Value) Len() int {
	return len(v.Values)
}

// IsEmpty reports whether nothing is selected
func (v Value) IsEmpty() bool {
	return len(v.Values) == 0
}

func (v Value) String() string {
	if !v.Multi {
		if s, ok := v.Get(); ok {
			return strconv.Quote(s)
		}
		return "null"
	}
	out := "["
	for i, s := range v.Values {
		if i > 0 {
			out += ", "
		}
		out += strconv.Quote(s)
	}
	return out + "]"
}

// Config configures a selection controller
type Config struct {
	Multi                  bool
	Ownership              Ownership
	Initial                Value // controlled value or uncontrolled default
	ForceSelection         bool
	CloseOnChange          bool
	EnableSelectionOptions bool
	OnChange               func(Value)
}

// Catalog is the view of the option set the controllers need
type Catalog interface {
	Len() int
	LabelOf(value string) (string, bool)
	IsDisabled(value string) bool
}

// Controller is the contract shared by the single and multi variants
type Controller interface {
	Multi() bool
	Ownership() Ownership
	IsSelected(value string) bool
	Select(value string) CommitEffect
	Clear() CommitEffect
	SelectAll() CommitEffect
	IsClearDisabled() bool
	IsSelectAllDisabled() bool
	Selection() Value
	SetControlled(v Value) error
	SetCatalog(c Catalog, enabled []string)
	TriggerLabel() string
}

// Trigger placeholders
const (
	PlaceholderSingle = "Select an option..."
	PlaceholderMulti  = "Select options..."
)
