package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/defendiq/internal/transport/cli"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:          "shell",
	Short:        "Open the interactive command prompt",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		t, err := newTerminal(ctx)
		if err != nil {
			return err
		}
		defer t.close(ctx)

		rl, err := cli.NewReadLine(t.cfg, t.newSession(ctx), nil)
		if err != nil {
			return err
		}
		defer rl.Shutdown(ctx)

		return rl.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
