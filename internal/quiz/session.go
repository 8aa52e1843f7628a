package quiz

import (
	"time"

	"github.com/google/uuid"
)

// Session tallies the questions answered in one test run.
type Session struct {
	ID        string
	StartTime time.Time
	total     int
	correct   int
}

// NewSession starts an empty tally.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartTime: now,
	}
}

// Record counts one answered question.
func (s *Session) Record(o Outcome) {
	s.total++
	if o == Correct {
		s.correct++
	}
}

func (s *Session) Total() int   { return s.total }
func (s *Session) Correct() int { return s.correct }
func (s *Session) Wrong() int   { return s.total - s.correct }

// SuccessRate returns correct*100/total using integer division.
// ok is false when no question was answered.
func (s *Session) SuccessRate() (rate int, ok bool) {
	if s.total == 0 {
		return 0, false
	}
	return s.correct * 100 / s.total, true
}

// Summary holds the figures shown when a test run ends.
type Summary struct {
	SessionID   string
	Duration    time.Duration
	Total       int
	Correct     int
	Wrong       int
	SuccessRate int
	HasData     bool
}

// Summary builds the end-of-run report.
func (s *Session) Summary(now time.Time) Summary {
	rate, ok := s.SuccessRate()
	return Summary{
		SessionID:   s.ID,
		Duration:    now.Sub(s.StartTime),
		Total:       s.total,
		Correct:     s.correct,
		Wrong:       s.Wrong(),
		SuccessRate: rate,
		HasData:     ok,
	}
}
