package telegram

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/defendiq/pkg/conv"
	"github.com/sandevgo/defendiq/pkg/log"
	tele "gopkg.in/telebot.v3"
)

// maxChunkLen leaves room below Telegram's 4096 limit for the <pre> wrapper
// and HTML escaping.
const maxChunkLen = 3500

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// sendTerminal sends terminal output as monospace blocks, split at line
// boundaries so every chunk is valid HTML on its own.
func (s *sender) sendTerminal(ctx context.Context, to tele.Recipient, text string) error {
	logger := log.FromCtx(ctx)

	for i, chunk := range splitText(text, maxChunkLen) {
		html := conv.TerminalToTelegramHTML(chunk)
		if html == "" {
			continue
		}
		if _, err := s.bot.Send(to, html, tele.ModeHTML); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(html)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// splitText splits text into chunks of at most maxLen bytes. It tries to
// split at newlines to preserve formatting.
func splitText(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		// Try to find a good break point (newline) in the later part of the chunk
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		} else {
			// Never split a multibyte rune
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(text)
			}
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimLeft(text[cut:], "\n")
	}
	return chunks
}
