package command

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/defendiq/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedHelp = `
Available commands:
  help          - Shows this list of commands.
  list alerts   - Displays the most recent security alerts.
  ping <host>   - Simulates a ping to a host (e.g., ping 8.8.8.8).
  date          - Displays the current date and time.
  clear         - Clears the terminal screen.
`

type alertsStub struct {
	alerts []core.Alert
	err    error
}

func (s alertsStub) Alerts(ctx context.Context) ([]core.Alert, error) {
	return s.alerts, s.err
}

var testAlerts = []core.Alert{
	{ID: "1", Severity: core.SeverityCritical, Status: core.AlertStatusActive, Description: "Ransomware behavior on FIN-WS-07"},
	{ID: "2", Severity: core.SeverityHigh, Status: core.AlertStatusResolved, Description: "Brute force against VPN gateway"},
	{ID: "3", Severity: core.SeverityLow, Status: core.AlertStatusActive, Description: "Outdated TLS cipher on mail relay"},
}

func newTestRouter(alerts core.AlertSource) *Router {
	now := func() time.Time {
		return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	}
	return NewTerminal(alerts, now)
}

func TestRouter_Help(t *testing.T) {
	r := newTestRouter(alertsStub{})
	ctx := context.Background()

	res := r.Execute(ctx, "s1", "help")
	assert.Equal(t, core.ActionAppend, res.Action)
	assert.Equal(t, expectedHelp, res.Text)

	// Same text after other commands ran.
	r.Execute(ctx, "s1", "ping 1.1.1.1")
	r.Execute(ctx, "s1", "clear")
	assert.Equal(t, expectedHelp, r.Execute(ctx, "s1", "help").Text)
}

func TestRouter_CaseInsensitive(t *testing.T) {
	r := newTestRouter(alertsStub{alerts: testAlerts})
	ctx := context.Background()

	tests := []struct {
		lower string
		upper string
	}{
		{"help", "HELP"},
		{"list alerts", "LIST Alerts"},
		{"date", "DaTe"},
		{"ping example.com", "PING example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, r.Execute(ctx, "s1", tt.lower), r.Execute(ctx, "s1", tt.upper), tt.upper)
	}
}

func TestRouter_TrimsWhitespace(t *testing.T) {
	r := newTestRouter(alertsStub{})
	res := r.Execute(context.Background(), "s1", "   help \t ")
	assert.Equal(t, expectedHelp, res.Text)
}

func TestRouter_BlankInput(t *testing.T) {
	r := newTestRouter(alertsStub{})
	for _, input := range []string{"", " ", "\t\n  "} {
		res := r.Execute(context.Background(), "s1", input)
		assert.Equal(t, core.ActionNone, res.Action)
		assert.Empty(t, res.Text)
	}
}

func TestRouter_ListAlerts(t *testing.T) {
	r := newTestRouter(alertsStub{alerts: testAlerts})
	res := r.Execute(context.Background(), "s1", "list alerts")
	require.Equal(t, core.ActionAppend, res.Action)

	lines := strings.Split(res.Text, "\n")
	require.Len(t, lines, 2+len(testAlerts))
	assert.Equal(t, "Severity\tStatus  \tDescription", lines[0])
	assert.Equal(t, strings.Repeat("-", 80), lines[1])

	for i, a := range testAlerts {
		row := lines[2+i]
		assert.Contains(t, row, a.Severity.String())
		assert.Contains(t, row, a.Status.String())
		assert.Contains(t, row, a.Description)
	}
	assert.Equal(t, "Critical  \tActive  \tRansomware behavior on FIN-WS-07", lines[2])
	assert.Equal(t, "High      \tResolved\tBrute force against VPN gateway", lines[3])
}

func TestRouter_ListAlertsMultilineDescription(t *testing.T) {
	alerts := []core.Alert{
		{ID: "1", Severity: core.SeverityMedium, Status: core.AlertStatusActive, Description: "Port scan\nfrom 10.0.0.1"},
		{ID: "2", Severity: core.SeverityLow, Status: core.AlertStatusResolved, Description: "  Stale\r\n\tcertificate  "},
	}
	r := newTestRouter(alertsStub{alerts: alerts})
	res := r.Execute(context.Background(), "s1", "list alerts")

	lines := strings.Split(res.Text, "\n")
	require.Len(t, lines, 2+len(alerts))
	assert.Equal(t, "Medium    \tActive  \tPort scan from 10.0.0.1", lines[2])
	assert.Equal(t, "Low       \tResolved\tStale certificate", lines[3])
}

func TestRouter_ListAlertsEmpty(t *testing.T) {
	r := newTestRouter(alertsStub{})
	res := r.Execute(context.Background(), "s1", "list alerts")
	assert.Len(t, strings.Split(res.Text, "\n"), 2)
}

func TestRouter_ListAlertsSourceError(t *testing.T) {
	r := newTestRouter(alertsStub{err: errors.New("feed unreachable")})
	res := r.Execute(context.Background(), "s1", "list alerts")
	assert.Equal(t, core.ActionAppend, res.Action)
	assert.Contains(t, res.Text, "Error:")
	assert.Contains(t, res.Text, "feed unreachable")
}

func TestRouter_ListUnknownArgument(t *testing.T) {
	r := newTestRouter(alertsStub{alerts: testAlerts})
	for _, input := range []string{"list foo", "list", "list logs alerts"} {
		res := r.Execute(context.Background(), "s1", input)
		assert.Contains(t, res.Text, "Unknown argument", input)
		assert.Contains(t, res.Text, "list alerts", input)
		assert.NotContains(t, res.Text, "Command not found", input)
	}
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(alertsStub{})

	res := r.Execute(context.Background(), "s1", "ping example.com")
	assert.Contains(t, res.Text, "Pinging example.com")
	assert.Contains(t, res.Text, "Reply from example.com: bytes=32 time=12ms TTL=58")
	assert.Contains(t, res.Text, "    Packets: Sent = 3, Received = 3, Lost = 0 (0% loss),\n")

	res = r.Execute(context.Background(), "s1", "ping")
	assert.Contains(t, res.Text, "Pinging destination with 32 bytes of data:")
}

func TestRouter_Date(t *testing.T) {
	r := newTestRouter(alertsStub{})
	res := r.Execute(context.Background(), "s1", "date")
	assert.Equal(t, "Tue Mar 05 2024 14:07:09 GMT+0000 (UTC)", res.Text)
}

func TestDateCommand_ParsesBack(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	kathmandu := time.FixedZone("+0545", 5*60*60+45*60)
	adelaide := time.FixedZone("+0930", 9*60*60+30*60)
	saoPaulo := time.FixedZone("-03", -3*60*60)
	clocks := map[string]func() time.Time{
		"utc now":   func() time.Time { return time.Now().UTC() },
		"est":       func() time.Time { return time.Date(2023, time.December, 31, 23, 59, 59, 0, est) },
		"+0545 now": func() time.Time { return time.Now().In(kathmandu) },
		"+0930":     func() time.Time { return time.Date(2024, time.July, 1, 8, 0, 0, 0, adelaide) },
		"-03":       func() time.Time { return time.Date(2024, time.February, 29, 12, 30, 0, 0, saoPaulo) },
	}
	for name, clock := range clocks {
		t.Run(name, func(t *testing.T) {
			before := clock().Truncate(time.Second)
			res, err := NewDateCommand(clock).Execute(context.Background(), "s1", nil)
			require.NoError(t, err)

			parsed, err := ParseDate(res.Text)
			require.NoError(t, err)
			assert.WithinDuration(t, before, parsed, time.Second)
			_, offset := before.Zone()
			_, parsedOffset := parsed.Zone()
			assert.Equal(t, offset, parsedOffset)
		})
	}
}

func TestFormatDate_NumericZone(t *testing.T) {
	kathmandu := time.FixedZone("+0545", 5*60*60+45*60)
	at := time.Date(2026, time.October, 19, 9, 33, 57, 0, kathmandu)
	assert.Equal(t, "Mon Oct 19 2026 09:33:57 GMT+0545", FormatDate(at))

	utc := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	assert.Equal(t, "Tue Mar 05 2024 14:07:09 GMT+0000 (UTC)", FormatDate(utc))
}

func TestRouter_Clear(t *testing.T) {
	r := newTestRouter(alertsStub{})
	res := r.Execute(context.Background(), "s1", "CLEAR")
	assert.Equal(t, core.ActionClear, res.Action)
	assert.Empty(t, res.Text)
}

func TestRouter_UnknownCommand(t *testing.T) {
	r := newTestRouter(alertsStub{})
	res := r.Execute(context.Background(), "s1", "foo bar")
	assert.Equal(t, core.ActionAppend, res.Action)
	assert.Contains(t, res.Text, "Command not found: foo bar")
	assert.Contains(t, res.Text, "'help'")

	// Original casing is echoed back.
	res = r.Execute(context.Background(), "s1", "  Nmap -sV 10.0.0.1 ")
	assert.Equal(t, "Command not found: Nmap -sV 10.0.0.1. Type 'help' for a list of commands.", res.Text)
}

func TestRouter_RegisterReplacesInPlace(t *testing.T) {
	r := newTestRouter(alertsStub{})
	r.Register(&stubCommand{name: "PING", text: "pong"})

	names := make([]string, 0)
	for _, c := range r.ListCommands() {
		names = append(names, strings.ToLower(c.Name()))
	}
	assert.Equal(t, []string{"help", "list", "ping", "date", "clear"}, names)
	assert.Equal(t, "pong", r.Execute(context.Background(), "s1", "ping").Text)
}

func TestRouter_CommandError(t *testing.T) {
	r := New(&stubCommand{name: "boom", err: errors.New("exploded")})
	res := r.Execute(context.Background(), "s1", "boom")
	assert.Equal(t, core.Append("Error: exploded"), res)
}

type stubCommand struct {
	name string
	text string
	err  error
}

func (s *stubCommand) Name() string        { return s.name }
func (s *stubCommand) Usage() string       { return s.name }
func (s *stubCommand) Description() string { return "stub" }

func (s *stubCommand) Execute(ctx context.Context, sessionID string, args []string) (core.Result, error) {
	if s.err != nil {
		return core.Result{}, s.err
	}
	return core.Append(s.text), nil
}
