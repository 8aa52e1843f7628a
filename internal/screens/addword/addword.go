package addword

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/ui/components"
	"github.com/vocamaster/vocamaster/internal/ui/layout"
	"github.com/vocamaster/vocamaster/internal/ui/theme"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

type step int

const (
	stepWord step = iota
	stepMeaning
	stepExplanation
)

const fieldLimit = 64

// AddScreen prompts for a word, its meaning and an optional explanation.
type AddScreen struct {
	repo    *vocab.Repository
	step    step
	word    string
	meaning string
	input   components.TextInput
	message string
	isErr   bool
	added   int
}

var _ screen.Screen = (*AddScreen)(nil)
var _ screen.KeyHintProvider = (*AddScreen)(nil)

// New creates a new AddScreen.
func New(repo *vocab.Repository) *AddScreen {
	return &AddScreen{
		repo:  repo,
		input: newInput(stepWord),
	}
}

func newInput(s step) components.TextInput {
	placeholder := "word"
	switch s {
	case stepMeaning:
		placeholder = "meaning"
	case stepExplanation:
		placeholder = "explanation (optional)"
	}
	return components.NewTokenInput(placeholder, vocab.ForbiddenChars, fieldLimit)
}

func (s *AddScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AddScreen) Title() string {
	return "Add Word"
}

func (s *AddScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AddScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit advances the prompt. A duplicate word is reported straight away
// so the user is never asked for a meaning that would be thrown out.
func (s *AddScreen) submit() tea.Cmd {
	value := strings.TrimSpace(s.input.Value())

	switch s.step {
	case stepWord:
		if value == "" {
			s.setMessage("word is required", true)
			return nil
		}
		if s.repo.Contains(value) {
			s.setMessage(fmt.Sprintf("%q is already registered", value), true)
			s.input.Reset()
			return nil
		}
		s.word = value
		return s.advance(stepMeaning)

	case stepMeaning:
		if value == "" {
			s.setMessage("meaning is required", true)
			return nil
		}
		s.meaning = value
		return s.advance(stepExplanation)

	case stepExplanation:
		return s.commit(value)
	}
	return nil
}

func (s *AddScreen) advance(next step) tea.Cmd {
	s.step = next
	s.message = ""
	s.isErr = false
	s.input = newInput(next)
	return s.input.Init()
}

func (s *AddScreen) commit(explanation string) tea.Cmd {
	err := vocab.ValidateFields(s.word, s.meaning, explanation)
	if err == nil {
		err = s.repo.Add(s.word, s.meaning, explanation)
	}
	word := s.word
	s.word, s.meaning = "", ""
	cmd := s.advance(stepWord)

	switch {
	case errors.Is(err, vocab.ErrDuplicateWord):
		s.setMessage(fmt.Sprintf("%q is already registered", word), true)
	case err != nil:
		s.setMessage(err.Error(), true)
	default:
		s.added++
		slog.Info("word added", "word", word, "size", s.repo.Len())
		s.setMessage(fmt.Sprintf("added %q", word), false)
	}
	return cmd
}

func (s *AddScreen) setMessage(msg string, isErr bool) {
	s.message = msg
	s.isErr = isErr
}

func (s *AddScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("New word"))
	b.WriteString("\n\n")

	b.WriteString(field("Word", s.word, s.step == stepWord, s.input))
	if s.step >= stepMeaning {
		b.WriteString(field("Meaning", s.meaning, s.step == stepMeaning, s.input))
	}
	if s.step == stepExplanation {
		b.WriteString(field("Explanation", "", true, s.input))
	}

	if s.message != "" {
		style := theme.Correct
		if s.isErr {
			style = theme.Incorrect
		}
		b.WriteString("\n")
		b.WriteString(style.Render(s.message))
		b.WriteString("\n")
	}

	if s.added > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d added this visit", s.added)))
	}

	card := components.Card(b.String(), cw)
	return components.CenterBlock(card, width, height)
}

func field(label, value string, active bool, input components.TextInput) string {
	name := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label + ": ")
	if active {
		return name + input.View() + "\n"
	}
	return name + theme.Body.Render(value) + "\n"
}
