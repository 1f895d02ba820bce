package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the widget
type Styles struct {
	Trigger         lipgloss.Style
	TriggerOpen     lipgloss.Style
	TriggerDisabled lipgloss.Style
	Placeholder     lipgloss.Style
	Box             lipgloss.Style
	Search          lipgloss.Style
	SearchFocused   lipgloss.Style
	Dim             lipgloss.Style
	GroupHeader     lipgloss.Style
	StickyHeader    lipgloss.Style
	Option          lipgloss.Style
	OptionFocused   lipgloss.Style
	OptionSelected  lipgloss.Style
	OptionDisabled  lipgloss.Style
	Highlight       lipgloss.Style
	Button          lipgloss.Style
	ButtonFocused   lipgloss.Style
	ButtonDisabled  lipgloss.Style
	Scroll          lipgloss.Style
	NoOptions       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Trigger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		TriggerOpen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		TriggerDisabled: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("241")).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Search:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		SearchFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dim:            lipgloss.NewStyle().Faint(true),
		GroupHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		StickyHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Background(lipgloss.Color("236")),
		Option:         lipgloss.NewStyle(),
		OptionFocused:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		OptionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		OptionDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Button:         lipgloss.NewStyle().Padding(0, 1),
		ButtonFocused:  lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("33")),
		ButtonDisabled: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("238")),
		Scroll:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		NoOptions:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
