package command

import (
	"time"

	"github.com/sandevgo/defendiq/internal/core"
)

// NewTerminal builds the router with the terminal's fixed command set.
// Registration order is the order of the help listing.
func NewTerminal(alerts core.AlertSource, now func() time.Time) *Router {
	r := New()
	r.Register(
		NewHelpCommand(r),
		NewListCommand(alerts),
		NewPingCommand(),
		NewDateCommand(now),
		NewClearCommand(),
	)
	return r
}
