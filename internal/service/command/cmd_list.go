package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/defendiq/internal/core"
)

var alertColumns = []Column{
	{Title: "Severity", Width: 10},
	{Title: "Status", Width: 8, TitleWidth: 8},
	{Title: "Description"},
}

type ListCommand struct {
	alerts    core.AlertSource
	formatter *ResponseFormatter
}

func NewListCommand(alerts core.AlertSource) *ListCommand {
	return &ListCommand{
		alerts:    alerts,
		formatter: NewResponseFormatter(),
	}
}

func (c *ListCommand) Name() string {
	return "list"
}

func (c *ListCommand) Usage() string {
	return "list alerts"
}

func (c *ListCommand) Description() string {
	return "Displays the most recent security alerts."
}

func (c *ListCommand) Execute(ctx context.Context, sessionID string, args []string) (core.Result, error) {
	if len(args) == 0 || args[0] != "alerts" {
		return core.Append(usageError("list", "list alerts")), nil
	}

	alerts, err := c.alerts.Alerts(ctx)
	if err != nil {
		return core.Result{}, fmt.Errorf("failed to load alerts: %w", err)
	}

	rows := make([][]string, len(alerts))
	for i, a := range alerts {
		rows[i] = []string{a.Severity.String(), a.Status.String(), singleLine(a.Description)}
	}
	return core.Append(c.formatter.Table(alertColumns, rows)), nil
}

// singleLine keeps one alert per row whatever whitespace the source used.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
