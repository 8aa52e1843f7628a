package addword

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeLine(t *testing.T, s screen.Screen, text string) screen.Screen {
	t.Helper()
	for _, r := range text {
		s, _ = s.Update(keyPress(r))
	}
	s, _ = s.Update(specialKey(tea.KeyEnter))
	return s
}

func TestAddScreen_Title(t *testing.T) {
	s := New(vocab.NewRepository())
	if s.Title() != "Add Word" {
		t.Errorf("Title = %q, want %q", s.Title(), "Add Word")
	}
}

func TestAddScreen_AddsEntry(t *testing.T) {
	repo := vocab.NewRepository()
	var scr screen.Screen = New(repo)

	scr = typeLine(t, scr, "cat")
	scr = typeLine(t, scr, "gato")
	scr = typeLine(t, scr, "pet")

	if repo.Len() != 1 {
		t.Fatalf("Len = %d, want 1", repo.Len())
	}
	e, _ := repo.Get(0)
	if e.Word() != "cat" || e.Meaning() != "gato" || e.Explanation() != "pet" {
		t.Errorf("entry = %q/%q/%q", e.Word(), e.Meaning(), e.Explanation())
	}
	if !repo.Dirty() {
		t.Error("expected repository to be dirty")
	}

	as := scr.(*AddScreen)
	if as.step != stepWord {
		t.Errorf("step = %d, want back at word prompt", as.step)
	}
	if !strings.Contains(as.message, "added") {
		t.Errorf("message = %q", as.message)
	}
}

func TestAddScreen_EmptyExplanation(t *testing.T) {
	repo := vocab.NewRepository()
	var scr screen.Screen = New(repo)

	scr = typeLine(t, scr, "dog")
	scr = typeLine(t, scr, "perro")
	typeLine(t, scr, "")

	e, err := repo.Get(0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Explanation() != "" {
		t.Errorf("Explanation = %q, want empty", e.Explanation())
	}
}

func TestAddScreen_DuplicateSkipsMeaning(t *testing.T) {
	repo := vocab.NewRepository()
	_ = repo.Add("cat", "gato", "")
	repo.MarkClean()

	var scr screen.Screen = New(repo)
	scr = typeLine(t, scr, "cat")

	as := scr.(*AddScreen)
	if as.step != stepWord {
		t.Errorf("step = %d, want word prompt after duplicate", as.step)
	}
	if !as.isErr || !strings.Contains(as.message, "already registered") {
		t.Errorf("message = %q, isErr = %v", as.message, as.isErr)
	}
	if repo.Dirty() || repo.Len() != 1 {
		t.Errorf("repository changed: len=%d dirty=%v", repo.Len(), repo.Dirty())
	}
}

func TestAddScreen_WordRequired(t *testing.T) {
	var scr screen.Screen = New(vocab.NewRepository())
	scr = typeLine(t, scr, "")

	as := scr.(*AddScreen)
	if as.step != stepWord || !as.isErr {
		t.Errorf("step = %d, isErr = %v", as.step, as.isErr)
	}
}

func TestAddScreen_RejectsDelimiters(t *testing.T) {
	repo := vocab.NewRepository()
	var scr screen.Screen = New(repo)

	scr = typeLine(t, scr, "c%a$t")
	scr = typeLine(t, scr, "ga to")
	typeLine(t, scr, "")

	e, err := repo.Get(0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Word() != "cat" || e.Meaning() != "gato" {
		t.Errorf("entry = %q/%q, want cat/gato", e.Word(), e.Meaning())
	}
}

func TestAddScreen_EscPops(t *testing.T) {
	s := New(vocab.NewRepository())
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAddScreen_View(t *testing.T) {
	s := New(vocab.NewRepository())
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
