package modes

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ch/internal/ui/input/types"
)

// SearchMode turns printable keys into query text
type SearchMode struct {
	keys types.KeyMap
}

// NewSearchMode creates a search mode with the search key map
func NewSearchMode() *SearchMode {
	return &SearchMode{keys: types.SearchKeys()}
}

// Keys returns the search mode bindings
func (m *SearchMode) Keys() types.KeyMap {
	return m.keys
}

// HandleKey maps control keys to actions and everything printable to query text
func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.ExitSearch):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, m.keys.Search):
		// "/" restarts the search with an empty query
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: types.DirectionUp}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: types.DirectionDown}}, true

	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{types.ConfirmAction{}}, true

	case key.Matches(msg, m.keys.Backspace):
		return []types.Action{types.BackspaceAction{}}, true
	}

	if text := typedText(msg); text != "" {
		return []types.Action{types.AppendTextAction{Text: text}}, true
	}
	return nil, false
}

// typedText extracts printable text from a key message, including pastes.
// Control characters inside a paste are dropped.
func typedText(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeyRunes:
		return strings.Map(func(r rune) rune {
			if !unicode.IsPrint(r) {
				return -1
			}
			return r
		}, string(msg.Runes))
	case tea.KeySpace:
		return " "
	}
	return ""
}
