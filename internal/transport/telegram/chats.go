package telegram

import (
	"context"
	"fmt"
	"sync"

	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/internal/service/session"
)

// chats keeps one terminal session per Telegram chat.
type chats struct {
	router core.CmdRouter
	opts   []session.Option

	mu       sync.Mutex
	sessions map[int64]*session.Session
}

func newChats(router core.CmdRouter, opts ...session.Option) *chats {
	return &chats{
		router:   router,
		opts:     opts,
		sessions: make(map[int64]*session.Session),
	}
}

func (c *chats) get(ctx context.Context, chatID int64) *session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sessions[chatID]; ok {
		return s
	}

	opts := append([]session.Option{session.WithID(fmt.Sprintf("telegram-%d", chatID))}, c.opts...)
	s := session.New(ctx, c.router, opts...)
	c.sessions[chatID] = s
	return s
}

func (c *chats) reset(chatID int64) {
	c.mu.Lock()
	delete(c.sessions, chatID)
	c.mu.Unlock()
}
