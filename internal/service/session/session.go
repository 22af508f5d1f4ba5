package session

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/pkg/log"
)

type Option func(*Session)

// WithID overrides the random session id, e.g. "telegram-<chat>".
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// WithLatency sets the simulated processing delay range. A zero max
// disables the delay.
func WithLatency(min, max time.Duration) Option {
	return func(s *Session) {
		if max < min {
			max = min
		}
		s.minLatency, s.maxLatency = min, max
	}
}

// WithJournal records every history change to repo.
func WithJournal(repo core.JournalRepository) Option {
	return func(s *Session) {
		s.journal = repo
	}
}

// WithoutBanner starts the session with an empty history.
func WithoutBanner() Option {
	return func(s *Session) {
		s.banner = false
	}
}

// Session owns the terminal history of a single interactive user. History
// only changes through Append and Clear.
type Session struct {
	id         string
	router     core.CmdRouter
	journal    core.JournalRepository
	minLatency time.Duration
	maxLatency time.Duration
	banner     bool

	mu      sync.Mutex
	history []core.HistoryEntry
	rnd     *rand.Rand
}

func New(ctx context.Context, router core.CmdRouter, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		router: router,
		banner: true,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.banner {
		s.Append(ctx, core.HistoryEntry{Kind: core.KindResponse, Content: Welcome})
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Append(ctx context.Context, entry core.HistoryEntry) {
	s.mu.Lock()
	s.history = append(s.history, entry)
	s.mu.Unlock()

	s.record(ctx, entry)
}

func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()

	s.record(ctx, core.HistoryEntry{Kind: core.KindCommand, Content: "clear"})
}

// History returns a copy of the display log, oldest first.
func (s *Session) History() []core.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]core.HistoryEntry, len(s.history))
	copy(res, s.history)
	return res
}

// Submit runs one line through the interpreter and applies its result to
// the history. Blank input is ignored. The only error is ctx ending while
// the simulated latency is pending; the command then stays unanswered.
func (s *Session) Submit(ctx context.Context, input string) (core.Result, error) {
	if strings.TrimSpace(input) == "" {
		return core.Result{Action: core.ActionNone}, nil
	}

	res := s.router.Execute(ctx, s.id, input)
	switch res.Action {
	case core.ActionClear:
		s.Clear(ctx)
	case core.ActionAppend:
		s.Append(ctx, core.HistoryEntry{Kind: core.KindCommand, Content: input})
		if err := s.wait(ctx); err != nil {
			return core.Result{}, err
		}
		s.Append(ctx, core.HistoryEntry{Kind: core.KindResponse, Content: res.Text})
	}
	return res, nil
}

func (s *Session) wait(ctx context.Context) error {
	d := s.latency()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Session) latency() time.Duration {
	if s.maxLatency <= 0 {
		return 0
	}
	spread := s.maxLatency - s.minLatency
	if spread <= 0 {
		return s.minLatency
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minLatency + time.Duration(s.rnd.Int63n(int64(spread)+1))
}

func (s *Session) record(ctx context.Context, entry core.HistoryEntry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, s.id, entry); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("session", s.id).Msg("failed to record journal entry")
	}
}
