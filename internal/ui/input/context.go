package input

import (
	"ch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State state.NavigationState
}

// SearchActive reports whether the session is in search mode
func (c ModelContext) SearchActive() bool {
	return c.State.SearchActive
}
