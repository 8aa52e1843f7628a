package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.db == nil {
		t.Fatal("expected non-nil db")
	}
	if err := s.db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	err = s.EventRepo().AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", StartedAt: time.Now(), EndedAt: time.Now(), Total: 1, Correct: 1,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	recs, err := s.EventRepo().QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("got %d sessions after reopen, want 1", len(recs))
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionSummaries_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: string(rune('a' + i)),
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			EndedAt:   base.Add(time.Duration(i)*time.Hour + 5*time.Minute),
			Total:     10 + i,
			Correct:   i,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].SessionID != "c" || recs[1].SessionID != "b" {
		t.Errorf("order = %q,%q, want c,b", recs[0].SessionID, recs[1].SessionID)
	}
	if recs[0].Total != 12 || recs[0].Correct != 2 {
		t.Errorf("record = %+v", recs[0])
	}
	wantStart := base.Add(2 * time.Hour)
	if !recs[0].StartedAt.Equal(wantStart) {
		t.Errorf("StartedAt = %v, want %v", recs[0].StartedAt, wantStart)
	}
}

func TestSessionSummaries_TimeRange(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		day := base.AddDate(0, 0, i)
		_ = repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: day.Format("0102"), StartedAt: day, EndedAt: day, Total: 1,
		})
	}

	recs, err := repo.QuerySessionSummaries(ctx, QueryOpts{
		From: base.AddDate(0, 0, 1),
		To:   base.AddDate(0, 0, 3),
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("got %d records in range, want 3", len(recs))
	}
}

func TestWordAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, n, err := repo.WordAccuracy(ctx, "cat")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("empty accuracy = %v/%d, want 0/0", acc, n)
	}

	for _, correct := range []bool{true, false, true, true} {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", Word: "cat", Answer: "cat", Correct: correct, Level: 1,
		})
		if err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}
	_ = repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", Word: "dog", Answer: "x"})

	acc, n, err = repo.WordAccuracy(ctx, "cat")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 4 || math.Abs(acc-0.75) > 1e-9 {
		t.Errorf("accuracy = %v over %d, want 0.75 over 4", acc, n)
	}
}

func TestDefaultDBPath_UsesXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dir, "vocamaster", "history.db")
	if p != want {
		t.Errorf("path = %q, want %q", p, want)
	}
}
