package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/internal/service/session"
	"github.com/sandevgo/defendiq/pkg/log"
)

const (
	prompt      = "> "
	clearScreen = "\033[H\033[2J"
)

type ReadLine struct {
	cfg     core.AppConfig
	session *session.Session
	rl      *readline.Instance
	onExit  func()
}

// NewReadLine builds the interactive prompt. onExit runs when the user
// leaves the prompt so the caller can stop the remaining services.
func NewReadLine(cfg core.AppConfig, sess *session.Session, onExit func()) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.GetInputHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:     cfg,
		session: sess,
		rl:      rl,
		onExit:  onExit,
	}, nil
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("list", readline.PcItem("alerts")),
		readline.PcItem("ping"),
		readline.PcItem("date"),
		readline.PcItem("clear"),
		readline.PcItem("exit"),
	)
}

func (r *ReadLine) Start(ctx context.Context) error {
	if r.onExit != nil {
		defer r.onExit()
	}

	logger := log.FromCtx(ctx)
	logger.Debug().Str("session", r.session.ID()).Msg("terminal prompt started")

	out := r.rl.Stdout()
	for _, entry := range r.session.History() {
		render(out, entry)
	}

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			return nil
		}

		res, err := r.session.Submit(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Error().Err(err).Msg("command failed")
			continue
		}

		switch res.Action {
		case core.ActionClear:
			fmt.Fprint(out, clearScreen)
		case core.ActionAppend:
			render(out, core.HistoryEntry{Kind: core.KindResponse, Content: res.Text})
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// render prints an entry the way the prompt shows it; commands were
// already echoed by readline when they were typed.
func render(out io.Writer, entry core.HistoryEntry) {
	switch entry.Kind {
	case core.KindCommand:
		fmt.Fprintf(out, "%s%s\n", prompt, entry.Content)
	default:
		fmt.Fprintln(out, entry.Content)
	}
}
