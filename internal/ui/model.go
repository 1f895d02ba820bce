package ui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"vselect/internal/eventbus"
	"vselect/internal/ui/input"
	"vselect/internal/ui/input/modes"
	inputtypes "vselect/internal/ui/input/types"
	"vselect/internal/ui/services/navigation"
	"vselect/internal/ui/services/rows"
	"vselect/internal/ui/services/search"
	"vselect/internal/ui/services/selection"
	"vselect/internal/ui/services/window"
	"vselect/internal/ui/views"
)

// Select is a windowed select widget over options of type T
type Select[T any] struct {
	id   string
	opts Options[T]
	bus  eventbus.EventBus

	// Services
	rows      *rows.Service[T]
	engine    *window.Engine
	nav       *navigation.Service
	search    *search.Service
	selection selection.Controller

	inputHandler *input.Handler
	renderer     *views.Renderer

	open      bool
	destroyed bool
	width     int
	originX   int // where the host draws the widget, for mouse hit tests
	originY   int
}

// New creates a Select widget
func New[T any](opts Options[T]) (*Select[T], error) {
	opts = opts.withDefaults()

	rowService, err := rows.NewService(opts.accessors(), opts.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to create select: %w", err)
	}

	id := uuid.NewString()
	controller, err := selection.NewController(opts.Bus, id, opts.selectionConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create select: %w", err)
	}

	keys := input.DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	s := &Select[T]{
		id:        id,
		opts:      opts,
		bus:       opts.Bus,
		rows:      rowService,
		selection: controller,
		engine: window.NewEngine(window.Config{
			Gap:      opts.Gap,
			Overscan: opts.Overscan,
			Sticky:   opts.StickyGroups,
		}),
		nav: navigation.NewService(opts.Bus, id, navigation.Config{
			Loop:                      opts.Loop,
			InitialFocusOnFirstOption: opts.InitialFocusOnFirstOption,
		}),
		search:       search.NewService(opts.Bus, id, opts.debounce()),
		inputHandler: input.New(keys, opts.SearchPlaceholder),
		renderer:     views.NewRenderer(),
		width:        opts.Width,
	}

	s.nav.SetScrollFunction(func(index int) {
		s.engine.ScrollToIndex(index)
	})
	s.search.SetCommitFunction(s.commitSearch)

	catalog := rowService.Catalog()
	controller.SetCatalog(catalog, catalog.EnabledValues)
	s.syncRows()

	return s, nil
}

// ID returns the widget instance id carried on its events
func (s *Select[T]) ID() string {
	return s.id
}

// Init returns an initial command
func (s *Select[T]) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (s *Select[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if s.destroyed {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		if s.opts.Width > 0 && s.opts.Width < msg.Width {
			s.width = s.opts.Width
		}
		return s, nil

	case tea.KeyMsg:
		actions, cmd := s.inputHandler.HandleKey(msg, s.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := s.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return s, tea.Batch(cmds...)

	case tea.MouseMsg:
		return s, s.handleMouse(msg)

	case search.CommitMsg:
		// Commits for other widgets in the same program are ignored
		if s.search.Owns(msg) {
			s.search.Accept(msg)
		}
		return s, nil

	default:
		return s, s.inputHandler.Update(msg)
	}
}

// View renders the widget
func (s *Select[T]) View() string {
	return s.renderer.Render(s.viewState())
}

// Open shows the option list. Disabled widgets stay closed.
func (s *Select[T]) Open() {
	if s.open || s.opts.IsDisabled || s.destroyed {
		return
	}
	s.open = true

	// The list starts from a clean search every time it opens
	s.search.Reset()
	if s.rows.Search() != "" {
		s.rows.SetSearch("")
	}
	s.syncRows()
	s.engine.SetScrollOffset(0)
	s.inputHandler.SetMode(modes.EntryRegion(s.context()), s.context())

	log.Printf("select: opened (%d rows)", s.rows.Sequence().Len())
	s.notifyOpen()
}

// Close hides the option list and drops any pending search
func (s *Select[T]) Close() {
	if !s.open {
		return
	}
	s.open = false
	s.search.Cancel()
	s.inputHandler.Reset()

	log.Printf("select: closed")
	s.notifyOpen()
}

// IsOpen reports whether the option list is shown
func (s *Select[T]) IsOpen() bool {
	return s.open
}

// IsSearching reports whether keys are going to the search input
func (s *Select[T]) IsSearching() bool {
	return s.open && s.inputHandler.CurrentMode() == inputtypes.ModeSearch
}

// Mode returns the focused region
func (s *Select[T]) Mode() inputtypes.Mode {
	return s.inputHandler.CurrentMode()
}

// Keys returns the widget key bindings
func (s *Select[T]) Keys() KeyMap {
	return s.inputHandler.Keys()
}

// SetOptions replaces the option set; the committed search still applies
func (s *Select[T]) SetOptions(options []T) {
	s.rows.SetOptions(options)
	catalog := s.rows.Catalog()
	s.selection.SetCatalog(catalog, catalog.EnabledValues)
	s.syncRows()

	// The search input is unavailable without options
	if s.IsSearching() && catalog.Len() == 0 {
		s.inputHandler.SetMode(inputtypes.ModeList, s.context())
	}

	log.Printf("select: options replaced (%d options)", catalog.Len())
	s.bus.Publish(eventbus.OptionsChangedEvent{WidgetID: s.id, Count: catalog.Len()})
}

// SetSelection updates the value of a controlled widget
func (s *Select[T]) SetSelection(v selection.Value) error {
	if err := s.selection.SetControlled(v); err != nil {
		return fmt.Errorf("failed to set selection: %w", err)
	}
	return nil
}

// Selection returns the effective selection
func (s *Select[T]) Selection() selection.Value {
	return s.selection.Selection()
}

// Cursor returns the focused row index, -1 when none
func (s *Select[T]) Cursor() int {
	return s.nav.GetCursor()
}

// Window returns the current window state
func (s *Select[T]) Window() window.State {
	return s.engine.Compute()
}

// Rows returns the current row sequence
func (s *Select[T]) Rows() *rows.Sequence[T] {
	return s.rows.Sequence()
}

// SetOrigin tells the widget where the host draws it
func (s *Select[T]) SetOrigin(x, y int) {
	s.originX = x
	s.originY = y
}

// Destroy cancels pending work; later messages are ignored
func (s *Select[T]) Destroy() {
	if s.destroyed {
		return
	}
	s.search.Close()
	s.open = false
	s.destroyed = true
	log.Printf("select: destroyed")
}

// processAction processes an action from the input handler
func (s *Select[T]) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		s.nav.Navigate(navigation.Direction(a.Direction))

	case inputtypes.ScrollAction:
		s.engine.ScrollBy(a.Delta)

	case inputtypes.SelectAction:
		inButtons := s.inputHandler.CurrentMode() == inputtypes.ModeButtons
		if value, ok := s.nav.Activate(inButtons); ok {
			s.applyEffect(s.selection.Select(value))
		}

	case inputtypes.SelectAllAction:
		s.applyEffect(s.selection.SelectAll())

	case inputtypes.ClearAction:
		s.applyEffect(s.selection.Clear())

	case inputtypes.OpenAction:
		s.Open()

	case inputtypes.CloseAction:
		s.Close()

	case inputtypes.UpdateTextAction:
		return s.search.Input(a.Text)

	case inputtypes.FocusButtonAction:
		// The renderer reads the focused button from the handler
	}

	return nil
}

func (s *Select[T]) applyEffect(effect selection.CommitEffect) {
	switch effect {
	case selection.EffectClose:
		s.Close()
	case selection.EffectFocusList:
		s.inputHandler.SetMode(inputtypes.ModeList, s.context())
	}
}

// commitSearch applies debounced search text and returns the row count
func (s *Select[T]) commitSearch(text string) int {
	s.rows.SetSearch(text)
	s.syncRows()
	s.engine.ScrollToIndex(0)
	return s.rows.Sequence().Len()
}

// syncRows hands a rebuilt sequence to the cursor and the window engine
func (s *Select[T]) syncRows() {
	seq := s.rows.Sequence()
	s.nav.SetRows(seq)
	s.engine.SetRows(seq.Len(), seq.Size, seq.GroupHeaderIndexes)

	// Viewport is the content extent bounded by the height limits
	height := min(max(s.engine.TotalExtent(), s.opts.MinHeight), s.opts.MaxHeight)
	s.engine.SetViewport(height)
	s.nav.SetPageSize(max(1, height/s.opts.DefaultOptionSize))
}

func (s *Select[T]) notifyOpen() {
	if s.opts.OnOpenChange != nil {
		s.opts.OnOpenChange(s.open)
	}
	s.bus.Publish(eventbus.OpenChangedEvent{WidgetID: s.id, Open: s.open})
}

func (s *Select[T]) context() input.Snapshot {
	return input.Snapshot{
		Open:            s.open,
		Disabled:        s.opts.IsDisabled,
		Cursor:          s.nav.GetCursor(),
		Rows:            s.rows.Sequence().Len(),
		Search:          s.opts.EnableSearch,
		HasOptions:      s.rows.Catalog().Len() > 0,
		SelectionButton: s.opts.EnableSelectionOptions,
		IsMulti:         s.opts.IsMulti,
	}
}
