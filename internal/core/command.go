package core

import "context"

type CmdRouter interface {
	Execute(ctx context.Context, sessionID, input string) Result
	ListCommands() []Command
}

type Command interface {
	Name() string
	// Usage is the invocation shown in the help listing, e.g. "ping <host>".
	Usage() string
	Description() string
	Execute(ctx context.Context, sessionID string, args []string) (Result, error)
}
