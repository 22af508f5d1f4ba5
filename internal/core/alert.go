package core

import (
	"fmt"
	"strings"
	"time"
)

// Severity represents the severity level of a security alert.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// ParseSeverity accepts any casing of the severity name.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return SeverityLow, fmt.Errorf("unknown severity %q", s)
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(data []byte) error {
	v, err := ParseSeverity(string(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type AlertStatus int

const (
	AlertStatusActive AlertStatus = iota
	AlertStatusResolved
)

func (s AlertStatus) String() string {
	switch s {
	case AlertStatusActive:
		return "Active"
	case AlertStatusResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

func ParseAlertStatus(s string) (AlertStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "open":
		return AlertStatusActive, nil
	case "resolved", "closed":
		return AlertStatusResolved, nil
	default:
		return AlertStatusActive, fmt.Errorf("unknown alert status %q", s)
	}
}

func (s AlertStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *AlertStatus) UnmarshalText(data []byte) error {
	v, err := ParseAlertStatus(string(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Alert is a security alert record as shown by "list alerts".
type Alert struct {
	ID          string      `json:"id" yaml:"id"`
	Severity    Severity    `json:"severity" yaml:"severity"`
	Status      AlertStatus `json:"status" yaml:"status"`
	Description string      `json:"description" yaml:"description"`
	Timestamp   time.Time   `json:"timestamp" yaml:"timestamp"`
}
