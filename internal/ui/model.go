package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"ch/internal/domain"
	"ch/internal/logging"
	"ch/internal/ui/input"
	inputtypes "ch/internal/ui/input/types"
	"ch/internal/ui/logic"
	"ch/internal/ui/state"
	"ch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	state state.NavigationState

	width  int
	height int
	help   help.Model

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRender   *HelpRenderer
	log          *logrus.Entry

	resolved    string
	hasResolved bool
}

// NewModel creates a new UI model over catalog
func NewModel(catalog *domain.Catalog) *Model {
	return &Model{
		state:        state.New(),
		help:         help.New(),
		navigator:    logic.NewNavigator(catalog),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRender:   NewHelpRenderer(),
		log:          logging.NewLogger("ui"),
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.log.WithFields(logrus.Fields{
		"groups":   len(m.navigator.GroupNames()),
		"commands": m.navigator.Catalog().CommandCount(),
	}).Debug("session started")
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		ctx := m.context()
		actions := m.inputHandler.HandleKey(msg, ctx)

		var cmds []tea.Cmd
		for _, action := range actions {
			cmd, done := m.processAction(action)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			if done {
				break
			}
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("help pager failed")
		}

	}

	return m, nil
}

// processAction applies one action. done is true once the session is ending.
func (m *Model) processAction(action inputtypes.Action) (tea.Cmd, bool) {
	m.log.WithField("action", action.Type()).Trace("processAction")

	if _, ok := action.(inputtypes.ToggleHelpAction); ok {
		content := m.helpRender.Render(inputtypes.NormalKeys(), inputtypes.SearchKeys())
		return showHelp(content), false
	}

	next, out := m.navigator.Apply(m.state, action)
	m.state = next

	switch {
	case out.HasCommand:
		m.log.WithField("command", out.Resolved).Info("command selected")
		m.resolved = out.Resolved
		m.hasResolved = true
		return tea.Quit, true
	case out.Quit:
		m.log.Debug("session quit")
		return tea.Quit, true
	}
	return nil, false
}

// View renders the UI
func (m *Model) View() string {
	ctx := m.context()
	return m.renderer.Render(views.ViewState{
		Width:            m.width,
		Height:           m.height,
		Catalog:          m.navigator.Catalog(),
		GroupNames:       m.navigator.GroupNames(),
		Visible:          m.navigator.Visible(m.state),
		State:            m.state,
		HighlightedGroup: m.navigator.HighlightedGroup(m.state),
		HelpView:         m.help.View(m.inputHandler.Keys(ctx)),
	})
}

// State returns the current navigation state
func (m *Model) State() state.NavigationState {
	return m.state
}

// Resolved returns the command chosen by the user, if any
func (m *Model) Resolved() (string, bool) {
	return m.resolved, m.hasResolved
}

func (m *Model) context() input.ModelContext {
	return input.ModelContext{State: m.state}
}
