package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"ch/internal/ui/input/types"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// Render builds the full help page for the browse and search key maps
func (r *HelpRenderer) Render(normal, search types.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("ch Help"))
	help.WriteString("\n")

	section := func(title string, bindings ...key.Binding) {
		help.WriteString(sectionStyle.Render(title))
		help.WriteString("\n")
		for _, b := range bindings {
			if !b.Enabled() || b.Help().Key == "" {
				continue
			}
			k := fmt.Sprintf("%-10s", b.Help().Key)
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(k), descStyle.Render(b.Help().Desc)))
		}
		help.WriteString("\n")
	}

	section("Browsing", normal.Up, normal.Down, normal.Left, normal.Right, normal.Confirm)
	section("Search", normal.Search, search.Up, search.Down, search.Confirm, search.Backspace, search.Search, search.ExitSearch)
	section("Other", normal.ExitSearch, normal.Help, normal.Quit, normal.Interrupt)

	help.WriteString(descStyle.Render("Search matches command names, ignoring case. Letters typed in search mode are part of the query."))
	help.WriteString("\n")
	return help.String()
}

// helpPager shows text in ov while Bubble Tea has released the terminal
type helpPager struct {
	content string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func (p *helpPager) SetStdin(r io.Reader)  { p.stdin = r }
func (p *helpPager) SetStdout(w io.Writer) { p.stdout = w }
func (p *helpPager) SetStderr(w io.Writer) { p.stderr = w }

// Run blocks until the pager is closed
func (p *helpPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return fmt.Errorf("open help pager: %w", err)
	}

	// Do not write the document back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelp returns a command that runs the help pager
func showHelp(content string) tea.Cmd {
	return tea.Exec(&helpPager{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
