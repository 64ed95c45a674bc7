package logic

import (
	"ch/internal/domain"
	"ch/internal/ui/input/types"
	"ch/internal/ui/state"
)

// Outcome reports what a transition asks of the session
type Outcome struct {
	Resolved   string // command string selected by a confirmation
	HasCommand bool   // Resolved is set and the session should end
	Quit       bool   // the session should end without a command
}

// Navigator applies input actions to a navigation state against a fixed catalog
type Navigator struct {
	catalog    *domain.Catalog
	groupNames []string
}

// NewNavigator creates a navigator over catalog in its group order
func NewNavigator(catalog *domain.Catalog) *Navigator {
	return &Navigator{
		catalog:    catalog,
		groupNames: catalog.GroupNames(),
	}
}

// GroupNames returns the group order used by the navigator
func (n *Navigator) GroupNames() []string {
	return n.groupNames
}

// Catalog returns the catalog being navigated
func (n *Navigator) Catalog() *domain.Catalog {
	return n.catalog
}

// Visible lists the command pane entries for s
func (n *Navigator) Visible(s state.NavigationState) []domain.Entry {
	return Visible(n.catalog, n.groupNames, s)
}

// Apply performs one action. The visible list is recomputed before the
// transition and the selection is clamped against the list that results
// from it.
func (n *Navigator) Apply(s state.NavigationState, action types.Action) (state.NavigationState, Outcome) {
	var out Outcome
	visibleCount := len(n.Visible(s))

	switch a := action.(type) {
	case types.NavigateAction:
		switch a.Direction {
		case types.DirectionUp:
			s = s.MoveUp(len(n.groupNames), visibleCount)
		case types.DirectionDown:
			s = s.MoveDown(len(n.groupNames), visibleCount)
		case types.DirectionLeft:
			s = s.FocusLeft()
		case types.DirectionRight:
			s = s.FocusRight()
		}

	case types.ChangeModeAction:
		if a.Mode == types.ModeSearch {
			s = s.EnterSearch()
		} else {
			s = s.ExitSearch()
		}

	case types.AppendTextAction:
		for _, r := range a.Text {
			s = s.AppendChar(r)
		}

	case types.BackspaceAction:
		s = s.Backspace()

	case types.ConfirmAction:
		if s.CanConfirm() {
			if cmd, ok := Resolve(n.catalog, n.groupNames, s); ok {
				out.Resolved = cmd
				out.HasCommand = true
			}
		}

	case types.QuitAction:
		if a.Force || s.CanQuit() {
			out.Quit = true
		}
	}

	s = s.Clamp(len(n.Visible(s)))
	return s, out
}

// ApplyAll folds a sequence of actions, stopping at the first that ends the session
func (n *Navigator) ApplyAll(s state.NavigationState, actions []types.Action) (state.NavigationState, Outcome) {
	var out Outcome
	for _, action := range actions {
		s, out = n.Apply(s, action)
		if out.HasCommand || out.Quit {
			break
		}
	}
	return s, out
}

// HighlightedGroup returns the index into GroupNames drawn as selected,
// or -1 when no group is highlighted.
func (n *Navigator) HighlightedGroup(s state.NavigationState) int {
	if !s.SearchActive {
		if s.SelectedGroup >= 0 && s.SelectedGroup < len(n.groupNames) {
			return s.SelectedGroup
		}
		return -1
	}
	if s.SearchQuery == "" {
		return -1
	}
	visible := n.Visible(s)
	if s.CurrentSelection < 0 || s.CurrentSelection >= len(visible) {
		return -1
	}
	for i, name := range n.groupNames {
		if name == visible[s.CurrentSelection].Group {
			return i
		}
	}
	return -1
}

// CommandHighlighted reports whether the selected command row is drawn as selected
func CommandHighlighted(s state.NavigationState) bool {
	if s.Focus != state.FocusCommands {
		return false
	}
	return !s.SearchActive || s.SearchQuery != ""
}

// ScrollOffset returns the first row to draw so that selected is inside a
// window of height rows over total rows.
func ScrollOffset(selected, height, total int) int {
	if height < 1 || total <= height {
		return 0
	}
	offset := 0
	if selected >= height {
		offset = selected - height + 1
	}
	maxOffset := total - height
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
