package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/pkg/log"
	"github.com/sandevgo/defendiq/pkg/retry"
)

const (
	maxFeedBytes = 1 << 20
	feedAccept   = "application/json"
)

// errPermanent marks failures a retry can't fix.
var errPermanent = errors.New("permanent feed error")

// Feed pulls alerts from an HTTP endpoint returning a JSON array.
type Feed struct {
	url     string
	client  *http.Client
	retrier *retry.Retrier
}

func NewFeed(url string, timeout time.Duration, retrier *retry.Retrier) *Feed {
	if retrier == nil {
		retrier = retry.NewDefaultRetrier()
	}
	return &Feed{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		retrier: retrier,
	}
}

func (f *Feed) Alerts(ctx context.Context) ([]core.Alert, error) {
	logger := log.FromCtx(ctx)

	var alerts []core.Alert
	err := f.retrier.DoIf(ctx, func() error {
		var err error
		alerts, err = f.fetch(ctx)
		if err != nil && !errors.Is(err, errPermanent) {
			logger.Warn().Err(err).Str("url", f.url).Msg("alert feed request failed")
		}
		return err
	}, func(err error) bool {
		return !errors.Is(err, errPermanent)
	})
	if err != nil {
		return nil, err
	}

	for i := range alerts {
		alerts[i].Description = plainText(alerts[i].Description)
	}
	logger.Debug().Int("count", len(alerts)).Msg("loaded alerts from feed")
	return alerts, nil
}

func (f *Feed) fetch(ctx context.Context) ([]core.Alert, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid feed url: %v", errPermanent, err)
	}
	req.Header.Set("Accept", feedAccept)
	req.Header.Set("User-Agent", core.AppUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alerts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, fmt.Errorf("%w: HTTP %d", errPermanent, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alert feed returned HTTP %d", resp.StatusCode)
	}

	var alerts []core.Alert
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFeedBytes)).Decode(&alerts); err != nil {
		return nil, fmt.Errorf("%w: failed to decode alerts: %v", errPermanent, err)
	}
	return alerts, nil
}

// plainText strips markup that dashboard-authored descriptions may carry.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	text, err := html2text.FromString(s, html2text.Options{OmitLinks: true, TextOnly: true})
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(text), " ")
}
