package state

// Focus identifies which pane receives up/down navigation
type Focus int

const (
	FocusGroups Focus = iota
	FocusCommands
)

// String returns the pane label shown in the status bar
func (f Focus) String() string {
	if f == FocusCommands {
		return "Commands"
	}
	return "Groups"
}

// NavigationState contains all navigation and search state of a session.
// The zero value is the initial state: browsing with the group pane focused.
//
// Transitions are value methods returning the next state; counts that
// depend on the catalog are supplied by the caller.
type NavigationState struct {
	SelectedGroup    int    // index into the group list, used while browsing
	CurrentSelection int    // index into the visible command list
	Focus            Focus  // pane receiving up/down
	SearchActive     bool   // whether search mode is on
	SearchQuery      string // text typed while searching
}

// New returns the initial navigation state
func New() NavigationState {
	return NavigationState{}
}

// MoveDown advances the focused index, wrapping at the end of the list.
func (s NavigationState) MoveDown(groupCount, visibleCount int) NavigationState {
	if s.Focus == FocusGroups {
		s.SelectedGroup = wrap(s.SelectedGroup+1, groupCount)
		return s
	}
	s.CurrentSelection = wrap(s.CurrentSelection+1, visibleCount)
	return s
}

// MoveUp moves the focused index back, wrapping to the last entry.
func (s NavigationState) MoveUp(groupCount, visibleCount int) NavigationState {
	if s.Focus == FocusGroups {
		s.SelectedGroup = wrap(s.SelectedGroup-1, groupCount)
		return s
	}
	s.CurrentSelection = wrap(s.CurrentSelection-1, visibleCount)
	return s
}

// FocusLeft focuses the group pane. Ignored while searching.
func (s NavigationState) FocusLeft() NavigationState {
	if !s.SearchActive {
		s.Focus = FocusGroups
	}
	return s
}

// FocusRight focuses the command pane. Ignored while searching.
func (s NavigationState) FocusRight() NavigationState {
	if !s.SearchActive {
		s.Focus = FocusCommands
	}
	return s
}

// EnterSearch starts a fresh search, even when one is already active.
func (s NavigationState) EnterSearch() NavigationState {
	s.SearchActive = true
	s.SearchQuery = ""
	s.Focus = FocusCommands
	s.CurrentSelection = 0
	return s
}

// ExitSearch leaves search mode and returns focus to the group pane.
func (s NavigationState) ExitSearch() NavigationState {
	s.SearchActive = false
	s.SearchQuery = ""
	s.Focus = FocusGroups
	s.CurrentSelection = 0
	return s
}

// AppendChar adds r to the query. Ignored outside search mode.
func (s NavigationState) AppendChar(r rune) NavigationState {
	if !s.SearchActive {
		return s
	}
	s.SearchQuery += string(r)
	s.CurrentSelection = 0
	return s
}

// Backspace removes the last rune of the query. Ignored outside search
// mode or when the query is already empty.
func (s NavigationState) Backspace() NavigationState {
	if !s.SearchActive || s.SearchQuery == "" {
		return s
	}
	runes := []rune(s.SearchQuery)
	s.SearchQuery = string(runes[:len(runes)-1])
	s.CurrentSelection = 0
	return s
}

// CanConfirm reports whether a Confirm event is accepted in this state
func (s NavigationState) CanConfirm() bool {
	return s.Focus == FocusCommands
}

// CanQuit reports whether a plain quit key is accepted in this state
func (s NavigationState) CanQuit() bool {
	return !s.SearchActive
}

// Clamp pulls CurrentSelection back inside [0, max(1, visibleCount)).
func (s NavigationState) Clamp(visibleCount int) NavigationState {
	if s.CurrentSelection < 0 || visibleCount <= 0 {
		s.CurrentSelection = 0
		return s
	}
	if s.CurrentSelection >= visibleCount {
		s.CurrentSelection = visibleCount - 1
	}
	return s
}

// wrap maps i onto [0, n), yielding 0 for empty lists
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
