package store

import (
	"context"
	"time"
)

// QueryOpts configures history queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// AnswerEventData captures one answered quiz question.
type AnswerEventData struct {
	SessionID  string
	Word       string
	Answer     string
	Correct    bool
	Level      int // level after scoring
	Experience int // experience after scoring
}

// SessionEventData captures a finished quiz session.
type SessionEventData struct {
	SessionID string
	StartedAt time.Time
	EndedAt   time.Time
	Total     int
	Correct   int
}

// SessionSummaryRecord is a finished quiz session read back from history.
type SessionSummaryRecord struct {
	SessionID string
	StartedAt time.Time
	EndedAt   time.Time
	Total     int
	Correct   int
}

// EventRepo provides append and query access to quiz history.
type EventRepo interface {
	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a finished quiz session.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// WordAccuracy returns the fraction of correct answers for word and
	// the number of attempts.
	WordAccuracy(ctx context.Context, word string) (float64, int, error)
}
