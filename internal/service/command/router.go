package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/pkg/log"
)

type Router struct {
	commands  map[string]core.Command
	ordered   []core.Command
	formatter *ResponseFormatter
}

func New(commands ...core.Command) *Router {
	r := &Router{
		commands:  make(map[string]core.Command),
		formatter: NewResponseFormatter(),
	}
	r.Register(commands...)
	return r
}

// Register adds commands to the dispatch table. A later command with the
// same name replaces the earlier one but keeps its position in the listing.
func (r *Router) Register(commands ...core.Command) {
	for _, cmd := range commands {
		name := strings.ToLower(cmd.Name())
		if _, exists := r.commands[name]; exists {
			for i, c := range r.ordered {
				if strings.EqualFold(c.Name(), name) {
					r.ordered[i] = cmd
				}
			}
		} else {
			r.ordered = append(r.ordered, cmd)
		}
		r.commands[name] = cmd
	}
}

// Execute never fails: every input maps to a Result.
func (r *Router) Execute(ctx context.Context, sessionID, input string) core.Result {
	line := strings.TrimSpace(input)
	if line == "" {
		return core.Result{Action: core.ActionNone}
	}

	parts := strings.Fields(strings.ToLower(line))
	name := parts[0]
	args := parts[1:]

	logger := log.FromCtx(ctx)
	cmd, ok := r.commands[name]
	if !ok {
		logger.Debug().Str("session", sessionID).Str("input", line).Msg("unknown command")
		return core.Append(r.formatter.NotFound(line))
	}

	result, err := cmd.Execute(ctx, sessionID, args)
	if err != nil {
		logger.Error().Err(err).Str("session", sessionID).Str("command", name).Msg("command failed")
		return core.Append(r.formatter.Error(err))
	}

	logger.Debug().
		Str("session", sessionID).
		Str("command", name).
		Stringer("action", result.Action).
		Msg("command executed")
	return result
}

func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, len(r.ordered))
	copy(res, r.ordered)
	return res
}

func usageError(verb, suggestion string) string {
	return fmt.Sprintf("Unknown argument for '%s'. Did you mean '%s'?", verb, suggestion)
}
