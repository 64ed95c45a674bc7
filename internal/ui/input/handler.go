package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"ch/internal/ui/input/modes"
	"ch/internal/ui/input/types"
)

// Handler routes key messages to the handler of the active mode.
// The mode is derived from the navigation state on every key so the
// state machine stays the only owner of search-mode lifecycle.
type Handler struct {
	modes map[types.Mode]types.ModeHandler
}

// New creates a handler with the normal and search modes registered
func New() *Handler {
	h := &Handler{
		modes: make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode()

	return h
}

// HandleKey translates msg into actions. Unconsumed keys yield no actions.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[ModeFor(ctx)]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}
	return actions
}

// Keys returns the key map of the mode active for ctx
func (h *Handler) Keys(ctx types.Context) types.KeyMap {
	if handler := h.modes[ModeFor(ctx)]; handler != nil {
		return handler.Keys()
	}
	return types.NormalKeys()
}

// ModeFor returns the input mode matching the context's search flag
func ModeFor(ctx types.Context) types.Mode {
	if ctx != nil && ctx.SearchActive() {
		return types.ModeSearch
	}
	return types.ModeNormal
}
