package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/defendiq/pkg/log"
)

// AlertsConfig selects where "list alerts" reads its records from. The
// feed wins over the file; with neither set the built-in records are used.
type AlertsConfig struct {
	FilePath    string        `env:"ALERTS_FILE"`
	FeedURL     string        `env:"ALERTS_FEED_URL"`
	FeedTimeout time.Duration `env:"ALERTS_FEED_TIMEOUT" envDefault:"5s"`
}

func NewAlertsConfig(ctx context.Context) *AlertsConfig {
	c := &AlertsConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Alerts config")
	}
	return c
}

func (c AlertsConfig) GetFilePath() string {
	return c.FilePath
}

func (c AlertsConfig) GetFeedURL() string {
	return c.FeedURL
}

func (c AlertsConfig) GetFeedTimeout() time.Duration {
	return c.FeedTimeout
}
