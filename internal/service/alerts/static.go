package alerts

import (
	"context"
	"time"

	"github.com/sandevgo/defendiq/internal/core"
)

// Static serves a fixed set of records.
type Static struct {
	alerts []core.Alert
}

func NewStatic(alerts []core.Alert) *Static {
	cp := make([]core.Alert, len(alerts))
	copy(cp, alerts)
	return &Static{alerts: cp}
}

func (s *Static) Alerts(ctx context.Context) ([]core.Alert, error) {
	res := make([]core.Alert, len(s.alerts))
	copy(res, s.alerts)
	return res, nil
}

// Recent is the built-in sample of the most recent alerts.
func Recent() []core.Alert {
	ts := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []core.Alert{
		{ID: "alert-1", Severity: core.SeverityCritical, Status: core.AlertStatusActive, Description: "Ransomware encryption pattern detected on FIN-WS-07", Timestamp: ts("2024-05-21T10:42:00Z")},
		{ID: "alert-2", Severity: core.SeverityHigh, Status: core.AlertStatusActive, Description: "Brute-force login attempts against VPN gateway", Timestamp: ts("2024-05-21T10:15:00Z")},
		{ID: "alert-3", Severity: core.SeverityMedium, Status: core.AlertStatusResolved, Description: "Port scan detected from 203.0.113.54", Timestamp: ts("2024-05-21T09:58:00Z")},
		{ID: "alert-4", Severity: core.SeverityHigh, Status: core.AlertStatusResolved, Description: "Suspicious PowerShell execution on DEV-LT-12", Timestamp: ts("2024-05-21T08:31:00Z")},
		{ID: "alert-5", Severity: core.SeverityLow, Status: core.AlertStatusActive, Description: "Outdated TLS configuration on mail relay", Timestamp: ts("2024-05-20T22:03:00Z")},
	}
}
