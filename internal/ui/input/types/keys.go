package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of one input mode
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Search     key.Binding
	ExitSearch key.Binding
	Backspace  key.Binding
	Help       key.Binding
	Quit       key.Binding
	Interrupt  key.Binding
}

// NormalKeys returns the bindings used while browsing
func NormalKeys() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "groups")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "commands")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "exec")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ExitSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "reset")),
		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithDisabled()),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Interrupt:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
}

// SearchKeys returns the bindings used while typing a search query.
// Letters are text in this mode, so only non-printable keys are bound.
func SearchKeys() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithDisabled()),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithDisabled()),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "exec")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "new search")),
		ExitSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit search")),
		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Help:       key.NewBinding(key.WithDisabled()),
		Quit:       key.NewBinding(key.WithDisabled()),
		Interrupt:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Confirm, k.Search, k.ExitSearch, k.Backspace, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Search, k.ExitSearch, k.Backspace},
		{k.Help, k.Quit, k.Interrupt},
	}
}
