package core

import (
	"context"
	"time"
)

type AlertSource interface {
	Alerts(ctx context.Context) ([]Alert, error)
}

type JournalRepository interface {
	Record(ctx context.Context, sessionID string, entry HistoryEntry) error
	Recent(ctx context.Context, sessionID string, limit int) ([]JournalRecord, error)
}

type JournalRecord struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Kind      EntryKind `json:"kind"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
