package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ch/internal/ui/input/types"
)

// NormalMode handles browsing keys
type NormalMode struct {
	keys types.KeyMap
}

// NewNormalMode creates a normal mode with the browsing key map
func NewNormalMode() *NormalMode {
	return &NormalMode{keys: types.NormalKeys()}
}

// Keys returns the normal mode bindings
func (m *NormalMode) Keys() types.KeyMap {
	return m.keys
}

// HandleKey maps browsing keys to actions; other keys are not consumed
func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: types.DirectionUp}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: types.DirectionDown}}, true

	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.NavigateAction{Direction: types.DirectionLeft}}, true

	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.NavigateAction{Direction: types.DirectionRight}}, true

	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{types.ConfirmAction{}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.ExitSearch):
		// Esc in normal mode still resets focus and selection
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
