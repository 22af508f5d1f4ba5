package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step represents a single step in the installation wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

// skipper is implemented by steps that only apply to some configurations.
type skipper interface {
	Skip(state *InstallState) bool
}

func getSteps() []Step {
	return []Step{
		NewChannelStep(),
		NewTelegramTokenStep(),
		NewTelegramOwnerStep(),
		NewAlertsStep(),
		NewAlertsFeedStep(),
		NewFinalizationStep(),
	}
}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	width       int
	height      int
}

func initialModel(state *InstallState) model {
	return model{
		steps:       getSteps(),
		currentStep: 0,
		state:       state,
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 && m.steps[0] != nil {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.done() {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state, m.width, m.height)

	if nextStep == nil {
		// Step indicated completion, move to the next one that applies
		m.advance()
		if m.done() {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	// If the step returned a different step (e.g., for branching), update current
	if nextStep != m.steps[m.currentStep] {
		m.steps[m.currentStep] = nextStep
	}

	return m, cmd
}

func (m *model) advance() {
	m.currentStep++
	for !m.done() {
		s, ok := m.steps[m.currentStep].(skipper)
		if !ok || !s.Skip(m.state) {
			return
		}
		m.currentStep++
	}
}

func (m model) done() bool {
	return m.currentStep >= len(m.steps)
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	if m.done() {
		return "Configuration complete!\n"
	}

	return titleStyle.Render("Setting up DefendIQ") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard starts the TUI and edits state in place.
func RunWizard(state *InstallState) (*InstallState, error) {
	p := tea.NewProgram(initialModel(state), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.quitting {
		return nil, fmt.Errorf("defendiq setup interrupted")
	}

	return finalModel.state, nil
}
