package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// timeFormat is fixed-width so text ordering matches time ordering.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeFormat, s)
}

// eventRepo implements EventRepo with plain SQL.
type eventRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO answer_events (session_id, timestamp, word, answer, correct, level, experience)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, formatTime(r.clock()), data.Word, data.Answer,
		boolToInt(data.Correct), data.Level, data.Experience,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quiz_sessions (id, started_at, ended_at, total, correct)
		VALUES (?, ?, ?, ?, ?)`,
		data.SessionID, formatTime(data.StartedAt), formatTime(data.EndedAt),
		data.Total, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, "ended_at >= ?")
		args = append(args, formatTime(opts.From))
	}
	if !opts.To.IsZero() {
		where = append(where, "ended_at <= ?")
		args = append(args, formatTime(opts.To))
	}

	q := "SELECT id, started_at, ended_at, total, correct FROM quiz_sessions"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY ended_at DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var (
			rec            SessionSummaryRecord
			started, ended string
		)
		if err := rows.Scan(&rec.SessionID, &started, &ended, &rec.Total, &rec.Correct); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		if rec.StartedAt, err = parseTime(started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if rec.EndedAt, err = parseTime(ended); err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session summaries: %w", err)
	}
	return records, nil
}

func (r *eventRepo) WordAccuracy(ctx context.Context, word string) (float64, int, error) {
	var total, correct int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM answer_events WHERE word = ?`,
		word,
	).Scan(&total, &correct)
	if err != nil {
		return 0, 0, fmt.Errorf("query word accuracy: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(correct) / float64(total), total, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
