package types

// Navigation directions
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type AppendTextAction struct {
	Text string
}

func (a AppendTextAction) Type() string { return "append_text" }

type BackspaceAction struct{}

func (a BackspaceAction) Type() string { return "backspace" }

// Selection actions
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }
