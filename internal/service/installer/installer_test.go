package installer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandevgo/defendiq/internal/config"
	"github.com/sandevgo/defendiq/internal/service/alerts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T) *InstallState {
	t.Helper()
	return NewInstallState(config.AppConfig{
		RuntimePath:   t.TempDir(),
		EnableCLI:     true,
		EnableJournal: true,
		LatencyMin:    200 * time.Millisecond,
		LatencyMax:    500 * time.Millisecond,
	}, config.AlertsConfig{FeedTimeout: 5 * time.Second})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m model, msgs ...tea.KeyMsg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestWizard_CommandLineOnly(t *testing.T) {
	state := newState(t)
	m := send(initialModel(state),
		key("enter"), // Command line
		key("enter"), // Local alerts.yaml
	)

	require.False(t, m.done())
	assert.IsType(t, &FinalizationStep{}, m.steps[m.currentStep])
	assert.Contains(t, m.View(), "Configuration summary")

	m = send(m, key("enter"))
	assert.True(t, m.done())
	assert.True(t, state.App.EnableCLI)
	assert.False(t, state.App.EnableTelegram)
	assert.Equal(t, state.App.GetAlertsPath(), state.Alerts.FilePath)
}

func TestWizard_TelegramAndFeed(t *testing.T) {
	state := newState(t)
	m := send(initialModel(state),
		key("down"), key("enter"), // Command line + Telegram
		key("123:abc"), key("enter"),
		key("42"), key("enter"),
		key("down"), key("down"), key("enter"), // Remote JSON feed
		key("https://soc.example.com/alerts"), key("enter"),
		key("enter"),
	)

	assert.True(t, m.done())
	assert.True(t, state.App.EnableCLI)
	assert.True(t, state.App.EnableTelegram)
	assert.Equal(t, "123:abc", state.Telegram.Token)
	assert.Equal(t, int64(42), state.Telegram.OwnerID)
	assert.Equal(t, "https://soc.example.com/alerts", state.Alerts.FeedURL)
	assert.Empty(t, state.Alerts.FilePath)
}

func TestWizard_InvalidOwnerStays(t *testing.T) {
	state := newState(t)
	m := send(initialModel(state),
		key("down"), key("down"), key("enter"), // Telegram only
		key("token"), key("enter"),
		key("me"), key("enter"),
	)

	assert.IsType(t, &TelegramOwnerStep{}, m.steps[m.currentStep])
	assert.Contains(t, m.View(), "User ID must be a number")
	assert.False(t, state.App.EnableCLI)
}

func TestWizard_Cancel(t *testing.T) {
	m := send(initialModel(newState(t)), key("ctrl+c"))
	assert.True(t, m.quitting)
	assert.Equal(t, "Setup cancelled.\n", m.View())
}

func TestSave(t *testing.T) {
	state := newState(t)
	state.Alerts.FilePath = state.App.GetAlertsPath()

	require.NoError(t, Save(state, false))

	vars, err := godotenv.Read(state.App.GetEnvPath())
	require.NoError(t, err)
	assert.Equal(t, "true", vars["ENABLE_CLI"])
	assert.Equal(t, "200ms", vars["SIMULATED_LATENCY_MIN"])
	assert.Equal(t, state.Alerts.FilePath, vars["ALERTS_FILE"])
	assert.NotContains(t, vars, "TELEGRAM_TOKEN")

	got, err := alerts.NewFile(state.Alerts.FilePath).Alerts(t.Context())
	require.NoError(t, err)
	assert.Len(t, got, len(alerts.Recent()))

	err = Save(state, false)
	assert.ErrorIs(t, err, ErrEnvExists)
	assert.NoError(t, Save(state, true))
}

func TestSave_KeepsExistingAlertsFile(t *testing.T) {
	state := newState(t)
	state.Alerts.FilePath = filepath.Join(state.App.GetRuntimePath(), "custom.yaml")
	require.NoError(t, os.WriteFile(state.Alerts.FilePath, []byte("[]\n"), 0644))

	require.NoError(t, Save(state, false))

	data, err := os.ReadFile(state.Alerts.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSave_Telegram(t *testing.T) {
	state := newState(t)
	state.App.EnableTelegram = true
	state.Telegram.Token = "123:abc"
	state.Telegram.OwnerID = 42

	require.NoError(t, Save(state, false))

	vars, err := godotenv.Read(state.App.GetEnvPath())
	require.NoError(t, err)
	assert.Equal(t, "123:abc", vars["TELEGRAM_TOKEN"])
	assert.Equal(t, "42", vars["TELEGRAM_OWNER_ID"])
	assert.Equal(t, "true", vars["ENABLE_TELEGRAM"])
}

// loadEnv applies a saved .env the way the CLI does and parses it back.
func loadEnv(t *testing.T, path string) *config.AppConfig {
	t.Helper()
	vars, err := godotenv.Read(path)
	require.NoError(t, err)
	for k, v := range vars {
		t.Setenv(k, v)
	}
	c, err := config.ParseAppConfig()
	require.NoError(t, err)
	return c
}

func TestSave_TelegramOnlySurvivesReload(t *testing.T) {
	state := newState(t)
	m := send(initialModel(state),
		key("down"), key("down"), key("enter"), // Telegram only
		key("123:abc"), key("enter"),
		key("42"), key("enter"),
		key("down"), key("enter"), // Built-in sample alerts
		key("enter"),
	)
	require.True(t, m.done())
	state.App.EnableJournal = false

	require.NoError(t, Save(state, false))

	c := loadEnv(t, state.App.GetEnvPath())
	assert.False(t, c.IsCLISelected())
	assert.True(t, c.IsTelegramSelected())
	assert.False(t, c.IsJournalEnabled())
}

func TestSave_ZeroLatencySurvivesReload(t *testing.T) {
	state := newState(t)
	state.App.LatencyMin, state.App.LatencyMax = 0, 0
	require.NoError(t, Save(state, false))

	c := loadEnv(t, state.App.GetEnvPath())
	min, max := c.GetLatency()
	assert.Zero(t, min)
	assert.Zero(t, max)

	vars, err := godotenv.Read(state.App.GetEnvPath())
	require.NoError(t, err)
	assert.Equal(t, "5s", vars["ALERTS_FEED_TIMEOUT"])
}
