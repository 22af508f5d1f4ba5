package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sandevgo/defendiq/internal/config"
	"github.com/sandevgo/defendiq/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var (
	journalSession string
	journalLimit   int
)

var journalCmd = &cobra.Command{
	Use:          "journal",
	Short:        "Print recently submitted commands and responses",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return fmt.Errorf("failed to parse app config: %w", err)
		}

		if _, err := os.Stat(appCfg.GetDatabasePath()); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no journal at %s", appCfg.GetDatabasePath())
		}

		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := sqlite.NewJournalRepo(db).Recent(ctx, journalSession, journalLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range records {
			fmt.Fprintf(out, "%s  %s  %-8s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.SessionID, r.Kind, r.Content)
		}
		return nil
	},
}

func init() {
	journalCmd.Flags().StringVarP(&journalSession, "session", "s", "", "only show this session")
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 50, "number of records")
	rootCmd.AddCommand(journalCmd)
}
