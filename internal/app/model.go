package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vselect/internal/domain"
	"vselect/internal/eventbus"
	"vselect/internal/ui"
	"vselect/internal/ui/services/selection"
)

// Widget is the part of the select widget the host drives
type Widget interface {
	tea.Model
	IsOpen() bool
	IsSearching() bool
	Selection() selection.Value
	Keys() ui.KeyMap
	SetOrigin(x, y int)
	Destroy()
}

// Lines above the widget: title and a blank line
const widgetTop = 2

// Model hosts one select widget with a help footer
type Model struct {
	widget  Widget
	title   string
	keys    KeyMap
	help    help.Model
	helpOps *HelpOps
	helpTxt *HelpRenderer

	width       int
	height      int
	status      string
	inPagerMode bool // tracks if we're currently in pager mode
	quitting    bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a host model around widget
func NewModel(widget Widget, title string) *Model {
	widget.SetOrigin(0, widgetTop)
	return &Model{
		widget:  widget,
		title:   title,
		keys:    DefaultKeyMap(widget.Keys()),
		help:    help.New(),
		helpTxt: NewHelpRenderer(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Selection returns the widget selection
func (m *Model) Selection() selection.Value {
	return m.widget.Selection()
}

// Status returns the last event summary shown under the widget
func (m *Model) Status() string {
	return m.status
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.widget.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, cmd := m.widget.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			return m.quit()
		}
		// Printable keys belong to the search input while it has focus
		if !m.widget.IsSearching() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m.quit()
			case key.Matches(msg, m.keys.Help):
				return m, m.fetchHelpPager(m.helpTxt.RenderHelpContent(m.title, m.keys))
			}
		}
		_, cmd := m.widget.Update(msg)
		return m, cmd

	case ui.EventMsg:
		m.status = describe(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() handles the actual resuming
		m.inPagerMode = false
		return m, nil

	default:
		_, cmd := m.widget.Update(msg)
		return m, cmd
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode || m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.widget.View())
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.widget.Destroy()
	return m, tea.Quit
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

// describe renders a one-line summary of a widget event
func describe(e eventbus.DomainEvent) string {
	switch e := e.(type) {
	case domain.SelectionChangedEvent:
		if len(e.Values) == 0 {
			return "selection cleared"
		}
		return fmt.Sprintf("selected: %s", strings.Join(e.Values, ", "))
	case domain.SearchCommittedEvent:
		if strings.TrimSpace(e.Text) == "" {
			return fmt.Sprintf("%d rows", e.RowCount)
		}
		return fmt.Sprintf("%d rows match %q", e.RowCount, e.Text)
	case domain.OpenChangedEvent:
		if e.Open {
			return "list opened"
		}
		return "list closed"
	case domain.OptionsChangedEvent:
		return fmt.Sprintf("%d options loaded", e.Count)
	default:
		return string(e.Type())
	}
}
