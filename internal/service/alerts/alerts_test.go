package alerts

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sandevgo/defendiq/internal/config"
	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetrier() *retry.Retrier {
	return retry.NewRetrier(&retry.Config{
		MaxRetries:    2,
		BackoffFactor: 1,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
	})
}

func TestStatic_ReturnsCopy(t *testing.T) {
	s := NewStatic(Recent())
	got, err := s.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)

	got[0].Description = "changed"
	again, _ := s.Alerts(context.Background())
	assert.NotEqual(t, "changed", again[0].Description)
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.yaml")
	require.NoError(t, WriteFile(path, Recent()))

	got, err := NewFile(path).Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(Recent()))
	assert.Equal(t, Recent()[0].Severity, got[0].Severity)
	assert.Equal(t, Recent()[2].Status, got[2].Status)
	assert.Equal(t, Recent()[4].Description, got[4].Description)
}

func TestFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFile(filepath.Join(dir, "missing.yaml")).Alerts(context.Background())
	assert.ErrorContains(t, err, "failed to read alerts file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- severity: apocalyptic\n"), 0644))
	_, err = NewFile(bad).Alerts(context.Background())
	assert.ErrorContains(t, err, "failed to parse alerts file")
}

func TestFeed_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id":"a","severity":"Critical","status":"Active","description":"<span>Ransomware</span> on <span class=\"host\">FIN-WS-07</span>"},
			{"id":"b","severity":"low","status":"resolved","description":"Weak cipher &amp; old TLS"}
		]`)
	}))
	defer srv.Close()

	got, err := NewFeed(srv.URL, time.Second, fastRetrier()).Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, core.SeverityCritical, got[0].Severity)
	assert.Equal(t, "Ransomware on FIN-WS-07", got[0].Description)
	assert.Equal(t, core.AlertStatusResolved, got[1].Status)
	assert.Equal(t, "Weak cipher & old TLS", got[1].Description)
}

func TestFeed_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	got, err := NewFeed(srv.URL, time.Second, fastRetrier()).Alerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFeed_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFeed(srv.URL, time.Second, fastRetrier()).Alerts(context.Background())
	require.ErrorContains(t, err, "HTTP 404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestFeed_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"not":"a list"`)
	}))
	defer srv.Close()

	_, err := NewFeed(srv.URL, time.Second, fastRetrier()).Alerts(context.Background())
	assert.ErrorContains(t, err, "failed to decode alerts")
}

func TestNewSource(t *testing.T) {
	ctx := context.Background()

	assert.IsType(t, &Static{}, NewSource(ctx, &config.AlertsConfig{}))
	assert.IsType(t, &File{}, NewSource(ctx, &config.AlertsConfig{FilePath: "/tmp/alerts.yaml"}))
	assert.IsType(t, &Feed{}, NewSource(ctx, &config.AlertsConfig{
		FilePath: "/tmp/alerts.yaml",
		FeedURL:  "https://soc.example.com/alerts",
	}))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "plain words", plainText("plain words"))
	assert.Equal(t, "Port scan from 10.0.0.1", plainText("<div>Port scan from <span>10.0.0.1</span></div>"))
}
