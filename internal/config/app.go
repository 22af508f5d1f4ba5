package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/defendiq/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"DEFENDIQ_RUNTIME_PATH" envDefault:".defendiq"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// Audit trail of submitted commands
	EnableJournal bool `env:"ENABLE_JOURNAL" envDefault:"true"`

	// Simulated command latency, zero disables it
	LatencyMin time.Duration `env:"SIMULATED_LATENCY_MIN" envDefault:"200ms"`
	LatencyMax time.Duration `env:"SIMULATED_LATENCY_MAX" envDefault:"500ms"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// ParseAppConfig reads the environment and resolves RuntimePath against
// the home directory when it is relative.
func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	if c.LatencyMax < c.LatencyMin {
		c.LatencyMax = c.LatencyMin
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "journal.db")
}

func (c AppConfig) GetInputHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetAlertsPath() string {
	return filepath.Join(c.RuntimePath, "alerts.yaml")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "defendiq.log")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}

func (c AppConfig) IsJournalEnabled() bool {
	return c.EnableJournal
}

func (c AppConfig) GetLatency() (time.Duration, time.Duration) {
	return c.LatencyMin, c.LatencyMax
}
