package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// GroupRenderer handles rendering of group rows
type GroupRenderer struct {
	styles *Styles
}

// NewGroupRenderer creates a new group renderer
func NewGroupRenderer(styles *Styles) *GroupRenderer {
	return &GroupRenderer{
		styles: styles,
	}
}

// RenderGroup renders one row of the group pane, padded to width
func (g *GroupRenderer) RenderGroup(name string, isSelected bool, width int) string {
	line := name
	if width > 0 && lipgloss.Width(line) > width {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	if width > 0 {
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
	}

	style := g.styles.WithSelection(g.styles.Row, isSelected)
	return style.Render(line)
}
