package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"ch/internal/domain"
	"ch/internal/ui/logic"
	"ch/internal/ui/state"
)

const (
	minWidth  = 20
	minHeight = 6

	groupPanePercent = 30
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Catalog          *domain.Catalog
	GroupNames       []string
	Visible          []domain.Entry
	State            state.NavigationState
	HighlightedGroup int    // index into GroupNames, -1 for none
	HelpView         string // rendered short help
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	groupRender   *GroupRenderer
	commandRender *CommandRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		groupRender:   NewGroupRenderer(styles),
		commandRender: NewCommandRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	if vs.Width <= 0 || vs.Height <= 0 {
		return "Loading..."
	}
	if vs.Width < minWidth || vs.Height < minHeight {
		return r.styles.Dim.Render(fitWidth("Terminal too small", vs.Width))
	}

	bodyHeight := vs.Height - 2
	groupWidth := vs.Width * groupPanePercent / 100
	commandWidth := vs.Width - groupWidth

	groups := r.renderGroupPane(vs, groupWidth, bodyHeight)
	commands := r.renderCommandPane(vs, commandWidth, bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, groups, commands)

	return strings.Join([]string{
		r.renderTopBar(vs),
		body,
		r.renderBottomBar(vs),
	}, "\n")
}

func (r *Renderer) renderTopBar(vs ViewState) string {
	line := r.styles.Title.Render("  Operation: ") + vs.HelpView
	if lipgloss.Width(line) > vs.Width {
		line = truncate.StringWithTail(line, uint(vs.Width), "…")
	}
	return line
}

func (r *Renderer) renderGroupPane(vs ViewState, width, height int) string {
	innerW, innerH := width-2, height-2
	total := len(vs.GroupNames)

	anchor := vs.HighlightedGroup
	if anchor < 0 {
		anchor = 0
	}
	offset := logic.ScrollOffset(anchor, innerH, total)

	var rows []string
	if total == 0 {
		rows = append(rows, r.styles.Dim.Render(fitWidth("No groups configured", innerW)))
	}
	for i := offset; i < total && len(rows) < innerH; i++ {
		rows = append(rows, r.groupRender.RenderGroup(vs.GroupNames[i], i == vs.HighlightedGroup, innerW))
	}
	return r.box("Groups", scrollInfo(offset, len(rows), total, innerH), rows, width, height)
}

func (r *Renderer) renderCommandPane(vs ViewState, width, height int) string {
	innerW, innerH := width-2, height-2
	total := len(vs.Visible)
	s := vs.State

	title := "Commands"
	query := ""
	if s.SearchActive {
		title = "Search Result"
		query = s.SearchQuery
	}
	selectedRow := -1
	if logic.CommandHighlighted(s) {
		selectedRow = s.CurrentSelection
	}
	offset := logic.ScrollOffset(s.CurrentSelection, innerH, total)

	var rows []string
	if total == 0 && s.SearchActive && s.SearchQuery != "" {
		rows = append(rows, r.styles.Dim.Render(fitWidth("No matches", innerW)))
	}
	for i := offset; i < total && len(rows) < innerH; i++ {
		entry := vs.Visible[i]
		cmd, ok := vs.Catalog.Lookup(entry.Group, entry.Command)
		if !ok {
			cmd = entry.Command
		}
		rows = append(rows, r.commandRender.RenderCommand(entry.Command, cmd, query, i == selectedRow, innerW))
	}
	return r.box(title, scrollInfo(offset, len(rows), total, innerH), rows, width, height)
}

func (r *Renderer) renderBottomBar(vs ViewState) string {
	left := "Press / into search mode"
	if vs.State.SearchActive {
		left = fmt.Sprintf("Press ESC exit search mode | Search: %s", vs.State.SearchQuery)
	}
	right := fmt.Sprintf("Menu: %s", vs.State.Focus)

	// two columns of margin on the left, one on the right
	avail := vs.Width - 3
	rightW := lipgloss.Width(right)
	leftW := avail - rightW - 1
	if leftW < 0 {
		leftW = 0
	}
	left = fitWidth(left, leftW)

	return "  " + r.styles.StatusLeft.Render(left) + " " + r.styles.StatusRight.Render(right) + " "
}

// box draws rows inside a rounded border with title set into the top edge
func (r *Renderer) box(title, info string, rows []string, width, height int) string {
	border := lipgloss.RoundedBorder()
	innerW, innerH := width-2, height-2
	if innerW < 0 {
		innerW = 0
	}

	titleSeg := " " + title + " "
	dashes := innerW - lipgloss.Width(titleSeg) - lipgloss.Width(info) - 1
	if dashes < 0 {
		info = ""
		dashes = innerW - lipgloss.Width(titleSeg) - 1
	}
	if dashes < 0 {
		titleSeg = ""
		dashes = innerW
	}
	top := r.styles.PaneBorder.Render(border.TopLeft+border.Top) +
		r.styles.PaneTitle.Render(titleSeg) +
		r.styles.PaneBorder.Render(strings.Repeat(border.Top, dashes)) +
		r.styles.Scroll.Render(info) +
		r.styles.PaneBorder.Render(border.TopRight)
	if titleSeg == "" {
		top = r.styles.PaneBorder.Render(border.TopLeft + strings.Repeat(border.Top, innerW) + border.TopRight)
	}

	lines := make([]string, 0, height)
	lines = append(lines, top)
	side := r.styles.PaneBorder.Render(border.Left)
	for i := 0; i < innerH; i++ {
		content := ""
		if i < len(rows) {
			content = rows[i]
		}
		lines = append(lines, side+padTo(content, innerW)+r.styles.PaneBorder.Render(border.Right))
	}
	lines = append(lines, r.styles.PaneBorder.Render(border.BottomLeft+strings.Repeat(border.Bottom, innerW)+border.BottomRight))
	return strings.Join(lines, "\n")
}

// scrollInfo returns " last/total " when the list does not fit in height
func scrollInfo(offset, shown, total, height int) string {
	if total <= height {
		return ""
	}
	return fmt.Sprintf(" %d/%d ", offset+shown, total)
}

// fitWidth truncates plain text to width and pads it with spaces
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = truncate.StringWithTail(s, uint(width), "…")
	}
	return padTo(s, width)
}

// padTo right-pads a possibly styled string to width visible columns
func padTo(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
