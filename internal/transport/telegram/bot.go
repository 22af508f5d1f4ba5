package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/internal/service/session"
	"github.com/sandevgo/defendiq/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot exposes the terminal to the owner's Telegram chats, one session per
// chat.
type Bot struct {
	bot     *tele.Bot
	sender  *sender
	chats   *chats
	ownerID int64
}

// NewBot wires the handlers. opts apply to every chat session, e.g. the
// journal and the simulated latency.
func NewBot(
	ctx context.Context,
	cfg core.TelegramConfig,
	router core.CmdRouter,
	opts ...session.Option,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		sender:  newSender(b),
		chats:   newChats(router, opts...),
		ownerID: cfg.GetTelegramOwnerID(),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	// A fresh session greets with the banner.
	b.chats.reset(c.Chat().ID)

	history := b.chats.get(ctx, c.Chat().ID).History()
	if len(history) == 0 {
		return nil
	}
	return b.sender.sendTerminal(ctx, c.Chat(), history[0].Content)
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	_ = c.Notify(tele.Typing)

	input := commandText(c.Text())
	res, err := b.chats.get(ctx, c.Chat().ID).Submit(ctx, input)
	if err != nil {
		logger.Error().Err(err).Msg("terminal command failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	switch res.Action {
	case core.ActionClear:
		return c.Send("History cleared.")
	case core.ActionAppend:
		return b.sender.sendTerminal(ctx, c.Chat(), res.Text)
	}
	return nil
}

// commandText accepts both "help" and the Telegram command form "/help"
// (including "/help@BotName").
func commandText(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	text = strings.TrimPrefix(text, "/")
	name, rest, _ := strings.Cut(text, " ")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	return strings.TrimSpace(name + " " + rest)
}
