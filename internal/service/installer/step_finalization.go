package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep shows the collected configuration and waits for
// confirmation
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return nil
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		return nil, nil
	}
	return s, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Configuration summary:\n\n")
	fmt.Fprintf(&b, "  Runtime directory  %s\n", state.App.GetRuntimePath())
	fmt.Fprintf(&b, "  Command line       %t\n", state.App.EnableCLI)
	fmt.Fprintf(&b, "  Telegram           %t\n", state.App.EnableTelegram)
	switch {
	case state.Alerts.FeedURL != "":
		fmt.Fprintf(&b, "  Alerts             %s\n", state.Alerts.FeedURL)
	case state.Alerts.FilePath != "":
		fmt.Fprintf(&b, "  Alerts             %s\n", state.Alerts.FilePath)
	default:
		b.WriteString("  Alerts             built-in\n")
	}
	b.WriteString("\n(press enter to save)\n")
	return b.String()
}
