package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sandevgo/defendiq/internal/config"
	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/internal/service/alerts"
	"github.com/sandevgo/defendiq/internal/service/command"
	"github.com/sandevgo/defendiq/internal/service/session"
	"github.com/sandevgo/defendiq/internal/storage/sqlite"
	"github.com/sandevgo/defendiq/internal/transport/cli"
	"github.com/sandevgo/defendiq/internal/transport/telegram"
	"github.com/sandevgo/defendiq/pkg/log"
	"github.com/sandevgo/defendiq/pkg/srv"
)

// terminal holds what every subcommand shares: configuration, the command
// router and the optional journal.
type terminal struct {
	cfg     *config.AppConfig
	router  core.CmdRouter
	journal core.JournalRepository
	cleanup []srv.Service
}

func newTerminal(ctx context.Context) (*terminal, error) {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}

	// 1. Configuration
	appCfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	alertsCfg := config.NewAlertsConfig(ctx)

	// 2. Interpreter
	t := &terminal{
		cfg:    appCfg,
		router: command.NewTerminal(alerts.NewSource(ctx, alertsCfg), time.Now),
	}

	// 3. Storage
	if appCfg.IsJournalEnabled() {
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		t.journal = sqlite.NewJournalRepo(db)
		t.cleanup = append(t.cleanup, srv.NewCleanup(db.Close))
		logger.Debug().Str("path", appCfg.GetDatabasePath()).Msg("command journal enabled")
	}

	return t, nil
}

// sessionOptions are the configured journal and latency.
func (t *terminal) sessionOptions() []session.Option {
	opts := []session.Option{session.WithLatency(t.cfg.GetLatency())}
	if t.journal != nil {
		opts = append(opts, session.WithJournal(t.journal))
	}
	return opts
}

// newSession applies sessionOptions; extra options override them.
func (t *terminal) newSession(ctx context.Context, opts ...session.Option) *session.Session {
	return session.New(ctx, t.router, append(t.sessionOptions(), opts...)...)
}

func (t *terminal) close(ctx context.Context) {
	for i := len(t.cleanup) - 1; i >= 0; i-- {
		if err := t.cleanup[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("cleanup failed")
		}
	}
}

// NewServices builds the long-running transports selected in the
// configuration. stop is called when the interactive prompt exits.
func NewServices(ctx context.Context, t *terminal, stop func()) ([]srv.Service, error) {
	var services []srv.Service

	// CLI
	if t.cfg.IsCLISelected() {
		rl, err := cli.NewReadLine(t.cfg, t.newSession(ctx), stop)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cli: %w", err)
		}
		services = append(services, rl)
	}

	// Telegram Bot
	if t.cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, t.router, t.sessionOptions()...)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
