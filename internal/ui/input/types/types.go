package types

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

// String returns the mode name for display
func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "normal"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	SearchActive() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Keys returns the bindings of the mode, used for help rendering
	Keys() KeyMap
}
