package rows

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Service owns the source options and the committed search text,
// and rebuilds the row sequence whenever either changes
type Service[T any] struct {
	acc        *Resolved[T]
	options    []T
	search     string
	seq        *Sequence[T]
	catalog    *Catalog
	generation uint64
}

// NewService creates a row service for the given accessors
func NewService[T any](acc Accessors[T], options []T) (*Service[T], error) {
	resolved, err := acc.Resolve()
	if err != nil {
		return nil, err
	}

	s := &Service[T]{acc: resolved}
	s.SetOptions(options)
	return s, nil
}

// SetOptions replaces the source option set
func (s *Service[T]) SetOptions(options []T) {
	s.options = options
	s.catalog = NewCatalog(options, s.acc)
	s.rebuild()
}

// SetSearch applies a committed search text
func (s *Service[T]) SetSearch(text string) {
	s.search = text
	s.rebuild()
}

// Search returns the committed search text
func (s *Service[T]) Search() string {
	return s.search
}

// Sequence returns the current row sequence
func (s *Service[T]) Sequence() *Sequence[T] {
	return s.seq
}

// Catalog returns facts about the full option set
func (s *Service[T]) Catalog() *Catalog {
	return s.catalog
}

// Options returns the source options
func (s *Service[T]) Options() []T {
	return s.options
}

// Accessors returns the resolved accessors
func (s *Service[T]) Accessors() *Resolved[T] {
	return s.acc
}

// Generation increments on every rebuild
func (s *Service[T]) Generation() uint64 {
	return s.generation
}

func (s *Service[T]) rebuild() {
	s.seq = Build(s.options, s.search, s.acc)
	s.generation++
}

// Filter keeps options whose label contains the trimmed, lowercased search text
func Filter[T any](options []T, search string, acc *Resolved[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return options
	}

	filtered := make([]T, 0, len(options))
	for _, o := range options {
		label := strings.ToLower(strings.TrimSpace(acc.Label(o)))
		if strings.Contains(label, needle) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// Build produces the row sequence for options under a search text
func Build[T any](options []T, search string, acc *Resolved[T]) *Sequence[T] {
	filtered := Filter(options, search, acc)
	seq := &Sequence[T]{acc: acc}

	if len(filtered) == 0 {
		return seq
	}

	if !acc.Grouped {
		seq.Rows = make([]Row[T], len(filtered))
		for i, o := range filtered {
			seq.Rows[i] = Row[T]{Kind: KindOption, Option: o}
		}
		return seq
	}

	// Groups keep first-seen order, members keep filtered order
	groups := orderedmap.New[string, []T]()
	for _, o := range filtered {
		key := acc.Group(o)
		members, _ := groups.Get(key)
		groups.Set(key, append(members, o))
	}

	seq.Rows = make([]Row[T], 0, len(filtered)+groups.Len())
	seq.GroupHeaderIndexes = make([]int, 0, groups.Len())
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		seq.GroupHeaderIndexes = append(seq.GroupHeaderIndexes, len(seq.Rows))
		seq.Rows = append(seq.Rows, Row[T]{Kind: KindGroupHeader, Group: pair.Key})
		for _, o := range pair.Value {
			seq.Rows = append(seq.Rows, Row[T]{Kind: KindOption, Option: o})
		}
	}

	return seq
}

// NewCatalog derives enabled values and labels from an option set
func NewCatalog[T any](options []T, acc *Resolved[T]) *Catalog {
	c := &Catalog{
		EnabledValues: make([]string, 0, len(options)),
		labels:        make(map[string]string, len(options)),
		disabled:      make(map[string]struct{}),
		count:         len(options),
	}
	for _, o := range options {
		value := acc.Value(o)
		c.labels[value] = acc.Label(o)
		if acc.Disabled(o) {
			c.disabled[value] = struct{}{}
			continue
		}
		c.EnabledValues = append(c.EnabledValues, value)
	}
	return c
}
