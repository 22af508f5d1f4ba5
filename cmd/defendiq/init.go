package main

import (
	"errors"
	"fmt"

	"github.com/sandevgo/defendiq/internal/config"
	"github.com/sandevgo/defendiq/internal/service/installer"
	"github.com/sandevgo/defendiq/pkg/log"
	"github.com/spf13/cobra"
)

var (
	force  bool
	wizard bool
)

var initCmd = &cobra.Command{
	Use:           "init",
	Short:         "Create the runtime directory with a .env and alerts file",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return fmt.Errorf("failed to parse app config: %w", err)
		}

		state := installer.NewInstallState(*appCfg, *config.NewAlertsConfig(ctx))
		state.Alerts.FilePath = appCfg.GetAlertsPath()

		if wizard {
			if state, err = installer.RunWizard(state); err != nil {
				return err
			}
		}

		if err := installer.Save(state, force); err != nil {
			if errors.Is(err, installer.ErrEnvExists) {
				logger.Warn().Err(err).Msg("use --force to overwrite")
				return nil
			}
			return err
		}

		logger.Info().Msgf("initialized runtime directory at: %s", appCfg.GetRuntimePath())
		logger.Info().Msg("You can now run 'defendiq shell'.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing .env file")
	initCmd.Flags().BoolVarP(&wizard, "wizard", "w", false, "choose channels and alert source interactively")
	rootCmd.AddCommand(initCmd)
}
