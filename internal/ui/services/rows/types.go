package rows

import "errors"

// ErrMissingValueFunc is returned when no value accessor is configured
var ErrMissingValueFunc = errors.New("rows: option value function is required")

// Kind tags a row as a group header or an option
type Kind int

const (
	KindOption Kind = iota
	KindGroupHeader
)

func (k Kind) String() string {
	switch k {
	case KindGroupHeader:
		return "header"
	case KindOption:
		return "option"
	default:
		return "unknown"
	}
}

// Row is one entry of the flattened sequence.
// Group is set for headers, Option for option rows.
type Row[T any] struct {
	Kind   Kind
	Group  string
	Option T
}

// Accessors are the caller-supplied strategy functions for an option type.
// Only Value is required.
type Accessors[T any] struct {
	Value     func(T) string
	Label     func(T) string
	Group     func(T) string // nil disables grouping
	Disabled  func(T) bool
	Size      func(T) int
	GroupSize func(group string) int

	DefaultOptionSize int
	DefaultGroupSize  int
}

// Resolved holds accessors with every default filled in
type Resolved[T any] struct {
	Value     func(T) string
	Label     func(T) string
	Group     func(T) string
	Disabled  func(T) bool
	Size      func(T) int
	GroupSize func(string) int
	Grouped   bool
}

// Resolve fills defaults once so hot paths never nil-check
func (a Accessors[T]) Resolve() (*Resolved[T], error) {
	if a.Value == nil {
		return nil, ErrMissingValueFunc
	}

	r := &Resolved[T]{
		Value:     a.Value,
		Label:     a.Label,
		Group:     a.Group,
		Disabled:  a.Disabled,
		Size:      a.Size,
		GroupSize: a.GroupSize,
		Grouped:   a.Group != nil,
	}

	if r.Label == nil {
		r.Label = a.Value
	}
	if r.Group == nil {
		r.Group = func(T) string { return "" }
	}
	if r.Disabled == nil {
		r.Disabled = func(T) bool { return false }
	}

	optionSize := a.DefaultOptionSize
	if optionSize <= 0 {
		optionSize = DefaultOptionSize
	}
	if r.Size == nil {
		r.Size = func(T) int { return optionSize }
	}

	groupSize := a.DefaultGroupSize
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}
	if r.GroupSize == nil {
		r.GroupSize = func(string) int { return groupSize }
	}

	return r, nil
}

// Default extents in terminal lines
const (
	DefaultOptionSize = 1
	DefaultGroupSize  = 1
)

// Sequence is the filtered, grouped row list
type Sequence[T any] struct {
	Rows               []Row[T]
	GroupHeaderIndexes []int // ascending

	acc *Resolved[T]
}

// Len returns the number of rows
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// At returns the row at index i
func (s *Sequence[T]) At(i int) (Row[T], bool) {
	if i < 0 || i >= s.Len() {
		var zero Row[T]
		return zero, false
	}
	return s.Rows[i], true
}

// IsHeader reports whether index i holds a group header
func (s *Sequence[T]) IsHeader(i int) bool {
	row, ok := s.At(i)
	return ok && row.Kind == KindGroupHeader
}

// Option returns the option at index i; ok is false for headers
func (s *Sequence[T]) Option(i int) (T, bool) {
	row, ok := s.At(i)
	if !ok || row.Kind != KindOption {
		var zero T
		return zero, false
	}
	return row.Option, true
}

// Value returns the option value at index i, or "" for headers
func (s *Sequence[T]) Value(i int) string {
	if o, ok := s.Option(i); ok {
		return s.acc.Value(o)
	}
	return ""
}

// Label returns the display text at index i (group name for headers)
func (s *Sequence[T]) Label(i int) string {
	row, ok := s.At(i)
	if !ok {
		return ""
	}
	switch row.Kind {
	case KindGroupHeader:
		return row.Group
	case KindOption:
		return s.acc.Label(row.Option)
	}
	return ""
}

// Disabled reports whether the option at index i is disabled.
// Headers and out-of-range indexes report false.
func (s *Sequence[T]) Disabled(i int) bool {
	if o, ok := s.Option(i); ok {
		return s.acc.Disabled(o)
	}
	return false
}

// Size returns the extent of row i in lines
func (s *Sequence[T]) Size(i int) int {
	row, ok := s.At(i)
	if !ok {
		return 0
	}
	switch row.Kind {
	case KindGroupHeader:
		return s.acc.GroupSize(row.Group)
	case KindOption:
		return s.acc.Size(row.Option)
	}
	return 0
}

// Catalog holds facts derived once per option set
type Catalog struct {
	EnabledValues []string
	labels        map[string]string
	disabled      map[string]struct{}
	count         int
}

// Len returns the number of source options
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.count
}

// LabelOf returns the label for a value
func (c *Catalog) LabelOf(value string) (string, bool) {
	if c == nil {
		return "", false
	}
	label, ok := c.labels[value]
	return label, ok
}

// IsDisabled reports whether value belongs to a disabled option
func (c *Catalog) IsDisabled(value string) bool {
	if c == nil {
		return false
	}
	_, ok := c.disabled[value]
	return ok
}
