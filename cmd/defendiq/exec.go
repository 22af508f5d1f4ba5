package main

import (
	"fmt"
	"strings"

	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/internal/service/session"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:     "exec <command...>",
	Short:   "Run a single terminal command and print its output",
	Example: "  defendiq exec list alerts\n  defendiq exec ping 8.8.8.8 -c 3",
	// Terminal input may look like flags ("ping -c 3"); only leading
	// --debug, --help and -- are taken by exec itself.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		line, withDebug, help := execArgs(args)
		if help || line == "" {
			return cmd.Help()
		}
		if withDebug {
			debug = true
		}

		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		t, err := newTerminal(ctx)
		if err != nil {
			return err
		}
		defer t.close(ctx)

		sess := t.newSession(ctx, session.WithLatency(0, 0), session.WithoutBanner())
		res, err := sess.Submit(ctx, line)
		if err != nil {
			return err
		}

		if res.Action == core.ActionAppend {
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		}
		return nil
	},
}

// execArgs splits the leading exec flags from the terminal input.
func execArgs(args []string) (line string, debug, help bool) {
	i := 0
loop:
	for ; i < len(args); i++ {
		switch args[i] {
		case "--debug", "-d":
			debug = true
		case "--help", "-h":
			help = true
		case "--":
			i++
			break loop
		default:
			break loop
		}
	}
	return strings.TrimSpace(strings.Join(args[i:], " ")), debug, help
}

func init() {
	rootCmd.AddCommand(execCmd)
}
