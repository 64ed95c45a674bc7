package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"ch/internal/ui/logic"
)

// CommandRenderer handles rendering of command rows
type CommandRenderer struct {
	styles *Styles
}

// NewCommandRenderer creates a new command renderer
func NewCommandRenderer(styles *Styles) *CommandRenderer {
	return &CommandRenderer{
		styles: styles,
	}
}

// RenderCommand renders "name - command" with matches of query highlighted
// inside name. The row is truncated and padded to width.
func (c *CommandRenderer) RenderCommand(name, command, query string, isSelected bool, width int) string {
	nameStyle := c.styles.WithSelection(c.styles.CommandName, isSelected)
	matchStyle := c.styles.WithSelection(c.styles.Match, isSelected)
	plainStyle := c.styles.WithSelection(c.styles.Row, isSelected)
	cmdStyle := c.styles.WithSelection(c.styles.CommandString, isSelected)

	var b strings.Builder
	spans := logic.MatchSpans(name, query)
	if len(spans) == 0 {
		b.WriteString(nameStyle.Render(name))
	} else {
		last := 0
		for _, sp := range spans {
			if last < sp.Start {
				b.WriteString(plainStyle.Render(name[last:sp.Start]))
			}
			b.WriteString(matchStyle.Render(name[sp.Start:sp.End]))
			last = sp.End
		}
		if last < len(name) {
			b.WriteString(plainStyle.Render(name[last:]))
		}
	}
	b.WriteString(plainStyle.Render(" - "))
	b.WriteString(cmdStyle.Render(command))

	line := b.String()
	if width <= 0 {
		return line
	}
	if lipgloss.Width(line) > width {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	if w := lipgloss.Width(line); w < width {
		line += plainStyle.Render(strings.Repeat(" ", width-w))
	}
	return line
}
