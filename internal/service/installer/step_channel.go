package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	title string
	apply func(state *InstallState)
}

// menu is a cursor over a fixed list of choices.
type menu struct {
	prompt  string
	choices []choice
	cursor  int
}

func (s *menu) Init() tea.Cmd {
	return nil
}

func (s *menu) update(msg tea.Msg, state *InstallState) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			s.choices[s.cursor].apply(state)
			return true
		}
	}
	return false
}

func (s *menu) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.prompt + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("> %s", c.title)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.title)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}

// ChannelStep selects the transports started by "defendiq start"
type ChannelStep struct {
	menu
}

func NewChannelStep() Step {
	return &ChannelStep{menu{
		prompt: "Select the terminal channels:",
		choices: []choice{
			{"Command line", func(st *InstallState) { st.App.EnableCLI, st.App.EnableTelegram = true, false }},
			{"Command line + Telegram", func(st *InstallState) { st.App.EnableCLI, st.App.EnableTelegram = true, true }},
			{"Telegram only", func(st *InstallState) { st.App.EnableCLI, st.App.EnableTelegram = false, true }},
		},
	}}
}

func (s *ChannelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.update(msg, state) {
		return nil, nil
	}
	return s, nil
}

// AlertsStep selects where "list alerts" reads from
type AlertsStep struct {
	menu
}

func NewAlertsStep() Step {
	return &AlertsStep{menu{
		prompt: "Select the alert source:",
		choices: []choice{
			{"Local alerts.yaml (editable sample)", func(st *InstallState) {
				st.Alerts.FilePath, st.Alerts.FeedURL = st.App.GetAlertsPath(), ""
			}},
			{"Built-in sample alerts", func(st *InstallState) { st.Alerts.FilePath, st.Alerts.FeedURL = "", "" }},
			{"Remote JSON feed", func(st *InstallState) { st.Alerts.FilePath = "" }},
		},
	}}
}

func (s *AlertsStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.update(msg, state) {
		if s.cursor == len(s.choices)-1 {
			// marks the feed step as pending
			state.Alerts.FeedURL = feedPending
		}
		return nil, nil
	}
	return s, nil
}
