package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // blue

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // gray

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)

	labelPattern = regexp.MustCompile(`^([A-Z_]+):( |$)`)
)

// pagerModel is a read-only scrollable view of a report
type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
}

// NewPager creates a new pager model with the given report
func NewPager(report string) *pagerModel {
	return &pagerModel{
		content: highlightReport(report),
	}
}

// highlightReport styles field labels and separators
func highlightReport(report string) string {
	lines := strings.Split(report, "\n")
	for i, line := range lines {
		switch {
		case line != "" && strings.Trim(line, "-") == "":
			lines[i] = separatorStyle.Render(line)
		case labelPattern.MatchString(line):
			label, rest, _ := strings.Cut(line, ":")
			lines[i] = labelStyle.Render(label+":") + rest
		}
	}
	return strings.Join(lines, "\n")
}

// Init initializes the pager model
func (m *pagerModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes
func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "f", "pgdown", " ", "space":
			m.viewport.ScrollDown(m.viewport.Height)
		case "b", "pgup":
			m.viewport.ScrollUp(m.viewport.Height)
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewport and a help line
func (m *pagerModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}
	help := fmt.Sprintf("↑/k up • ↓/j down • space/f forward • b back • g top • G bottom • q quit • %3.f%%",
		m.viewport.ScrollPercent()*100)
	return m.viewport.View() + "\n" + helpStyle.Render(help)
}

// RunPager shows the report in the alternate screen until the user quits
func RunPager(report string) error {
	p := tea.NewProgram(
		NewPager(report),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
