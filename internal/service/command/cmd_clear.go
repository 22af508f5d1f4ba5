package command

import (
	"context"

	"github.com/sandevgo/defendiq/internal/core"
)

type ClearCommand struct{}

func NewClearCommand() *ClearCommand {
	return &ClearCommand{}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Usage() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Clears the terminal screen."
}

// Execute produces no text; the session discards its history.
func (c *ClearCommand) Execute(ctx context.Context, sessionID string, args []string) (core.Result, error) {
	return core.Result{Action: core.ActionClear}, nil
}
