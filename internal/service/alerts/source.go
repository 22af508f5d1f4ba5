package alerts

import (
	"context"

	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/pkg/log"
)

// NewSource picks the alert source from configuration: feed, then file,
// then the built-in records.
func NewSource(ctx context.Context, cfg core.AlertsConfig) core.AlertSource {
	logger := log.FromCtx(ctx)

	switch {
	case cfg.GetFeedURL() != "":
		logger.Debug().Str("url", cfg.GetFeedURL()).Msg("using alert feed")
		return NewFeed(cfg.GetFeedURL(), cfg.GetFeedTimeout(), nil)
	case cfg.GetFilePath() != "":
		logger.Debug().Str("path", cfg.GetFilePath()).Msg("using alerts file")
		return NewFile(cfg.GetFilePath())
	default:
		return NewStatic(Recent())
	}
}
