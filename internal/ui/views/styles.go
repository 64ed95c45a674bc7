package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	PaneBorder    lipgloss.Style
	PaneTitle     lipgloss.Style
	Row           lipgloss.Style
	Selected      lipgloss.Style
	CommandName   lipgloss.Style
	CommandString lipgloss.Style
	Match         lipgloss.Style
	Dim           lipgloss.Style
	Scroll        lipgloss.Style
	HelpBar       lipgloss.Style
	StatusLeft    lipgloss.Style
	StatusRight   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")), // green
		PaneBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		PaneTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true), // light yellow
		Row:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:      lipgloss.NewStyle().Background(lipgloss.Color("238")),
		CommandName:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		CommandString: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Match:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Dim:           lipgloss.NewStyle().Faint(true),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		HelpBar:       lipgloss.NewStyle().Bold(true),
		StatusLeft:    lipgloss.NewStyle().Bold(true),
		StatusRight:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	}
}

// WithSelection returns s with the row selection background applied
func (s *Styles) WithSelection(style lipgloss.Style, selected bool) lipgloss.Style {
	if !selected {
		return style
	}
	return style.Background(s.Selected.GetBackground())
}
