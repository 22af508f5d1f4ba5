package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/sandevgo/defendiq/internal/config"
	"github.com/sandevgo/defendiq/internal/transport/tui"
	"github.com/sandevgo/defendiq/pkg/log"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:          "tui",
	Short:        "Open the full-screen terminal",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// Log records would tear the alt screen, so they go to a file.
		runtimePath := config.GetRuntimePath()
		if err := os.MkdirAll(runtimePath, 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}
		logFile, err := os.OpenFile(config.AppConfig{RuntimePath: runtimePath}.GetLogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()

		var flushLog func()
		ctx, flushLog = log.NewContextWithWriter(ctx, isDebug(), logFile)
		defer flushLog()

		t, err := newTerminal(ctx)
		if err != nil {
			return err
		}
		defer t.close(ctx)

		return tui.Run(ctx, t.newSession(ctx))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
