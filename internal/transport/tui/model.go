package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/internal/service/session"
	"github.com/sandevgo/defendiq/internal/service/ui"
)

const promptMarker = "> "

type resultMsg struct {
	res core.Result
	err error
}

// Model is the full-screen terminal. History is snapshotted from the
// session after every command; the command being executed is shown
// separately with a spinner until its result arrives.
type Model struct {
	ctx     context.Context
	session *session.Session

	input   textinput.Model
	spinner spinner.Model

	history  []core.HistoryEntry
	pending  string
	running  bool
	quitting bool
	err      error
	width    int
	height   int
}

func New(ctx context.Context, sess *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = ui.PromptStyle.Render(promptMarker)
	ti.CharLimit = 256
	ti.ShowSuggestions = true
	ti.SetSuggestions([]string{"help", "list alerts", "ping ", "date", "clear", "exit"})
	ti.Focus()

	return Model{
		ctx:     ctx,
		session: sess,
		input:   ti,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(ui.PromptStyle)),
		history: sess.History(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(promptMarker)-1, 0)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.running {
				return m, nil
			}
			return m.submit()
		}
		if m.running {
			return m, nil
		}

	case resultMsg:
		m.running = false
		m.pending = ""
		m.err = msg.err
		m.history = m.session.History()
		if msg.res.Action == core.ActionClear {
			return m, tea.ClearScreen
		}
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.input.Reset()

	if strings.EqualFold(strings.TrimSpace(line), "exit") {
		m.quitting = true
		return m, tea.Quit
	}

	m.running = true
	m.pending = line
	m.err = nil

	ctx, sess := m.ctx, m.session
	run := func() tea.Msg {
		res, err := sess.Submit(ctx, line)
		return resultMsg{res: res, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	for _, entry := range m.history {
		lines = append(lines, renderEntry(entry)...)
	}
	if m.running {
		lines = append(lines, ui.PromptStyle.Render(promptMarker)+m.pending)
		lines = append(lines, fmt.Sprintf("%s Executing...", m.spinner.View()))
	}
	if m.err != nil {
		lines = append(lines, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if !m.running {
		lines = append(lines, m.input.View())
	}

	// Keep the tail that fits, like a scrolled terminal.
	if m.height > 0 && len(lines) > m.height {
		lines = lines[len(lines)-m.height:]
	}
	return strings.Join(lines, "\n")
}

func renderEntry(entry core.HistoryEntry) []string {
	if entry.Kind == core.KindCommand {
		return []string{ui.PromptStyle.Render(promptMarker) + entry.Content}
	}
	return strings.Split(entry.Content, "\n")
}

// Run blocks until the user quits the terminal.
func Run(ctx context.Context, sess *session.Session) error {
	p := tea.NewProgram(New(ctx, sess), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
