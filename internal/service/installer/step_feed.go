package installer

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// feedPending is set by AlertsStep until the URL is entered.
const feedPending = "pending"

// AlertsFeedStep collects the alert feed URL
type AlertsFeedStep struct {
	input textinput.Model
	err   bool
}

func NewAlertsFeedStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60
	ti.Placeholder = "https://soc.example.com/api/alerts"

	return &AlertsFeedStep{
		input: ti,
	}
}

func (s *AlertsFeedStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *AlertsFeedStep) Skip(state *InstallState) bool {
	return state.Alerts.FeedURL != feedPending
}

func (s *AlertsFeedStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		raw := strings.TrimSpace(s.input.Value())
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			s.err = true
			return s, nil
		}
		state.Alerts.FeedURL = raw
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AlertsFeedStep) View(state *InstallState) string {
	view := "Enter the alert feed URL (JSON array of alerts):\n\n" + s.input.View() + "\n\n"
	if s.err {
		view += errorStyle.Render("Enter an http(s) URL") + "\n"
	}
	return view + "(press enter to confirm)\n"
}
