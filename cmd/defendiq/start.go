package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/sandevgo/defendiq/pkg/log"
	"github.com/sandevgo/defendiq/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the configured transports",
	Long:  `Starts every enabled transport (CLI prompt, Telegram bot) and waits for a shutdown signal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting defendiq")

		t, err := newTerminal(ctx)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		services, err := NewServices(ctx, t, cancel)
		if err != nil {
			t.close(ctx)
			return err
		}
		if len(services) == 0 {
			t.close(ctx)
			return errors.New("no transports enabled: set ENABLE_CLI or ENABLE_TELEGRAM")
		}
		services = append(t.cleanup, services...)

		// Start services
		errs := srv.StartServices(ctx, services)
		go func() {
			select {
			case <-errs:
				cancel()
			case <-ctx.Done():
			}
		}()

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("defendiq has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
