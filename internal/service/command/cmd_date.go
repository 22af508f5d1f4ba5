package command

import (
	"context"
	"time"
	"unicode"

	"github.com/sandevgo/defendiq/internal/core"
)

// DateLayout mirrors the browser's Date.toString rendering. Zones without
// an alphabetic abbreviation (e.g. "+0545") use DateLayoutNumericZone.
const (
	DateLayout            = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
	DateLayoutNumericZone = "Mon Jan 02 2006 15:04:05 GMT-0700"
)

type DateCommand struct {
	now func() time.Time
}

func NewDateCommand(now func() time.Time) *DateCommand {
	if now == nil {
		now = time.Now
	}
	return &DateCommand{now: now}
}

func (c *DateCommand) Name() string {
	return "date"
}

func (c *DateCommand) Usage() string {
	return "date"
}

func (c *DateCommand) Description() string {
	return "Displays the current date and time."
}

func (c *DateCommand) Execute(ctx context.Context, sessionID string, args []string) (core.Result, error) {
	return core.Append(FormatDate(c.now())), nil
}

func FormatDate(t time.Time) string {
	if name, _ := t.Zone(); isAlpha(name) {
		return t.Format(DateLayout)
	}
	return t.Format(DateLayoutNumericZone)
}

// ParseDate reads back what FormatDate renders.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Parse(DateLayoutNumericZone, s)
	}
	return t, nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
