package selection

import (
	"fmt"
	"log"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"vselect/internal/eventbus"
)

// NewController picks the single or multi variant for cfg
func NewController(bus eventbus.EventBus, widgetID string, cfg Config) (Controller, error) {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if cfg.Initial.Values != nil && cfg.Initial.Multi != cfg.Multi {
		return nil, fmt.Errorf("failed to create selection controller: %w", ErrSelectionShape)
	}
	if !cfg.Multi && cfg.Initial.Len() > 1 {
		return nil, fmt.Errorf("failed to create selection controller: %w", ErrSelectionShape)
	}

	b := base{cfg: cfg, bus: bus, widgetID: widgetID}
	if cfg.Multi {
		m := &MultiService{base: b}
		m.shadow = newOrderedSet(nil)
		if cfg.Ownership == Controlled {
			m.controlled = newOrderedSet(cfg.Initial.Values)
		} else {
			m.shadow = newOrderedSet(cfg.Initial.Values)
		}
		return m, nil
	}

	s := &SingleService{base: b}
	if cfg.Ownership == Controlled {
		s.controlled = cfg.Initial
	} else {
		s.shadow = Value{Values: cfg.Initial.Values}
	}
	return s, nil
}

// base holds what both variants share
type base struct {
	cfg      Config
	bus      eventbus.EventBus
	widgetID string
	catalog  Catalog
	enabled  []string
}

func (b *base) Ownership() Ownership {
	return b.cfg.Ownership
}

func (b *base) SetCatalog(c Catalog, enabled []string) {
	b.catalog = c
	b.enabled = enabled
}

func (b *base) optionCount() int {
	if b.catalog == nil {
		return 0
	}
	return b.catalog.Len()
}

func (b *base) disabled(value string) bool {
	return b.catalog != nil && b.catalog.IsDisabled(value)
}

func (b *base) labelOf(value string) string {
	if b.catalog != nil {
		if label, ok := b.catalog.LabelOf(value); ok {
			return label
		}
	}
	return value
}

// commit notifies the caller, publishes the change and reports the follow-up
func (b *base) commit(next Value) CommitEffect {
	if b.cfg.OnChange != nil {
		b.cfg.OnChange(next)
	}

	log.Printf("selection: committed %s", next)
	b.bus.Publish(eventbus.SelectionChangedEvent{
		WidgetID: b.widgetID,
		Multi:    next.Multi,
		Values:   next.Values,
	})

	if b.cfg.CloseOnChange {
		return EffectClose
	}
	return EffectFocusList
}

// SingleService holds at most one selected value
type SingleService struct {
	base
	shadow     Value
	controlled Value
}

func (s *SingleService) Multi() bool {
	return false
}

func (s *SingleService) current() (string, bool) {
	if s.cfg.Ownership == Controlled {
		return s.controlled.Get()
	}
	return s.shadow.Get()
}

// Selection returns the effective selection
func (s *SingleService) Selection() Value {
	if v, ok := s.current(); ok {
		return Single(v)
	}
	return None()
}

// IsSelected reports whether value is the current selection
func (s *SingleService) IsSelected(value string) bool {
	v, ok := s.current()
	return ok && v == value
}

// Select toggles value; under forced selection the current value stays put
func (s *SingleService) Select(value string) CommitEffect {
	if s.disabled(value) {
		return EffectNone
	}
	if s.IsSelected(value) {
		if s.cfg.ForceSelection {
			return EffectNone
		}
		return s.apply(None())
	}
	return s.apply(Single(value))
}

// Clear empties the selection
func (s *SingleService) Clear() CommitEffect {
	if s.cfg.ForceSelection {
		return EffectNone
	}
	if _, ok := s.current(); !ok {
		return EffectNone
	}
	return s.apply(None())
}

// SelectAll has no meaning for a single selection
func (s *SingleService) SelectAll() CommitEffect {
	return EffectNone
}

func (s *SingleService) IsClearDisabled() bool {
	_, ok := s.current()
	return !s.cfg.EnableSelectionOptions || s.cfg.ForceSelection || !ok || s.optionCount() == 0
}

func (s *SingleService) IsSelectAllDisabled() bool {
	return true
}

// SetControlled replaces the caller-owned value
func (s *SingleService) SetControlled(v Value) error {
	if v.Multi || v.Len() > 1 {
		return ErrSelectionShape
	}
	s.controlled = v
	return nil
}

// TriggerLabel returns the text shown on the closed widget
func (s *SingleService) TriggerLabel() string {
	v, ok := s.current()
	if !ok {
		return PlaceholderSingle
	}
	return s.labelOf(v)
}

func (s *SingleService) apply(next Value) CommitEffect {
	effect := s.commit(next)
	s.shadow = next
	return effect
}

// MultiService holds an ordered set of selected values
type MultiService struct {
	base
	shadow     *orderedSet
	controlled *orderedSet
}

func (m *MultiService) Multi() bool {
	return true
}

func (m *MultiService) current() *orderedSet {
	if m.cfg.Ownership == Controlled {
		return m.controlled
	}
	return m.shadow
}

// Selection returns the effective selection
func (m *MultiService) Selection() Value {
	return Many(m.current().keys()...)
}

// IsSelected reports whether value is in the current set
func (m *MultiService) IsSelected(value string) bool {
	return m.current().has(value)
}

// Select adds value, or removes it; forced selection never empties the set
func (m *MultiService) Select(value string) CommitEffect {
	if m.disabled(value) {
		return EffectNone
	}
	cur := m.current()
	if cur.has(value) {
		if m.cfg.ForceSelection && cur.len() <= 1 {
			return EffectNone
		}
		return m.apply(cur.without(value))
	}
	return m.apply(append(cur.keys(), value))
}

// Clear empties the set
func (m *MultiService) Clear() CommitEffect {
	if m.cfg.ForceSelection || m.current().len() == 0 || m.optionCount() == 0 {
		return EffectNone
	}
	return m.apply([]string{})
}

// SelectAll selects every enabled value
func (m *MultiService) SelectAll() CommitEffect {
	if m.optionCount() == 0 || m.allEnabledSelected() {
		return EffectNone
	}
	return m.apply(slices.Clone(m.enabled))
}

func (m *MultiService) IsClearDisabled() bool {
	return !m.cfg.EnableSelectionOptions || m.cfg.ForceSelection || m.current().len() == 0 || m.optionCount() == 0
}

func (m *MultiService) IsSelectAllDisabled() bool {
	return !m.cfg.EnableSelectionOptions || m.optionCount() == 0 || m.allEnabledSelected()
}

// SetControlled replaces the caller-owned value
func (m *MultiService) SetControlled(v Value) error {
	if !v.Multi {
		return ErrSelectionShape
	}
	m.controlled = newOrderedSet(v.Values)
	return nil
}

// TriggerLabel returns the text shown on the closed widget
func (m *MultiService) TriggerLabel() string {
	cur := m.current()
	switch cur.len() {
	case 0:
		return PlaceholderMulti
	case 1:
		return m.labelOf(cur.m.Oldest().Key)
	default:
		return fmt.Sprintf("%d options selected", cur.len())
	}
}

// allEnabledSelected is true when no enabled value is left unselected,
// including when there are no enabled values at all
func (m *MultiService) allEnabledSelected() bool {
	cur := m.current()
	for _, v := range m.enabled {
		if !cur.has(v) {
			return false
		}
	}
	return true
}

func (m *MultiService) apply(values []string) CommitEffect {
	effect := m.commit(Many(values...))
	m.shadow = newOrderedSet(values)
	return effect
}

// orderedSet keeps insertion order with constant-time membership
type orderedSet struct {
	m *orderedmap.OrderedMap[string, struct{}]
}

func newOrderedSet(values []string) *orderedSet {
	s := &orderedSet{m: orderedmap.New[string, struct{}]()}
	for _, v := range values {
		// Set keeps the first position of a repeated value
		s.m.Set(v, struct{}{})
	}
	return s
}

func (s *orderedSet) has(v string) bool {
	if s == nil {
		return false
	}
	_, ok := s.m.Get(v)
	return ok
}

func (s *orderedSet) len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

// keys returns a fresh slice in insertion order
func (s *orderedSet) keys() []string {
	out := make([]string, 0, s.len())
	if s == nil {
		return out
	}
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

func (s *orderedSet) without(v string) []string {
	return slices.DeleteFunc(s.keys(), func(x string) bool { return x == v })
}
