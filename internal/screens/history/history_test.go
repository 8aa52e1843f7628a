package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/store"
)

type mockEventRepo struct {
	sessions []store.SessionSummaryRecord
	err      error
	lastOpts store.QueryOpts
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, opts store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	m.lastOpts = opts
	return m.sessions, m.err
}
func (m *mockEventRepo) WordAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}

func load(t *testing.T, repo *mockEventRepo) screen.Screen {
	t.Helper()
	var s screen.Screen = New(repo)
	s, _ = s.Update(s.Init()())
	return s
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := load(t, &mockEventRepo{})
	if !strings.Contains(s.View(80, 24), "No tests yet") {
		t.Error("expected empty history message")
	}
}

func TestHistoryScreen_ListsSessions(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{sessions: []store.SessionSummaryRecord{
		{SessionID: "abcdef0123456789", StartedAt: start, EndedAt: start.Add(2*time.Minute + 3*time.Second), Total: 4, Correct: 3},
		{SessionID: "second", StartedAt: start, EndedAt: start.Add(time.Minute), Total: 2, Correct: 0},
	}}
	s := load(t, repo)

	if repo.lastOpts.Limit != sessionLimit {
		t.Errorf("Limit = %d, want %d", repo.lastOpts.Limit, sessionLimit)
	}
	view := s.View(100, 30)
	for _, want := range []string{"2:03", "4 questions", "75% correct", "0% correct"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "abcdef01") {
		t.Error("expanded row should show the short session id")
	}

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.(*HistoryScreen).selected != 1 {
		t.Errorf("selected = %d, want 1", s.(*HistoryScreen).selected)
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := load(t, &mockEventRepo{err: errors.New("disk gone")})
	if !strings.Contains(s.View(80, 24), "disk gone") {
		t.Error("expected error in view")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(&mockEventRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
