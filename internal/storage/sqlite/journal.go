package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/defendiq/internal/core"
	"github.com/sandevgo/defendiq/pkg/log"
)

// JournalRepo is the append-only audit trail of terminal sessions.
type JournalRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db, now: time.Now}
}

func (r *JournalRepo) Record(ctx context.Context, sessionID string, entry core.HistoryEntry) error {
	query := `INSERT INTO journal (session_id, kind, content, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, sessionID, string(entry.Kind), entry.Content, r.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

// Recent returns the last limit records in chronological order. An empty
// sessionID spans all sessions.
func (r *JournalRepo) Recent(ctx context.Context, sessionID string, limit int) ([]core.JournalRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	// Fetch the LAST 'limit' records by ordering DESC
	if sessionID == "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, session_id, kind, content, created_at FROM journal ORDER BY id DESC LIMIT ?`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, session_id, kind, content, created_at FROM journal WHERE session_id = ? ORDER BY id DESC LIMIT ?`,
			sessionID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var records []core.JournalRecord
	for rows.Next() {
		var rec core.JournalRecord
		var kind string
		if err := rows.Scan(&rec.ID, &rec.SessionID, &kind, &rec.Content, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		rec.Kind = core.EntryKind(kind)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest -> Oldest back to Oldest -> Newest.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(records)).Msg("loaded journal records")
	return records, nil
}
