package command

import (
	"context"
	"strings"

	"github.com/sandevgo/defendiq/internal/core"
)

type lister interface {
	ListCommands() []core.Command
}

type HelpCommand struct {
	commands  lister
	formatter *ResponseFormatter
}

func NewHelpCommand(commands lister) *HelpCommand {
	return &HelpCommand{
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Usage() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Shows this list of commands."
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (core.Result, error) {
	var sb strings.Builder
	sb.WriteString("\nAvailable commands:\n")
	for _, cmd := range c.commands.ListCommands() {
		sb.WriteString(c.formatter.Usage(cmd.Usage(), cmd.Description()))
	}
	return core.Append(sb.String()), nil
}
