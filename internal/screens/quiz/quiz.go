package quiz

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/vocamaster/vocamaster/internal/quiz"
	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/screens/summary"
	"github.com/vocamaster/vocamaster/internal/store"
	"github.com/vocamaster/vocamaster/internal/ui/components"
	"github.com/vocamaster/vocamaster/internal/ui/layout"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

// QuizScreen runs test rounds: show a meaning, the user types the word.
type QuizScreen struct {
	repo      *vocab.Repository
	selector  *quiz.Selector
	eventRepo store.EventRepo
	session   *quiz.Session
	now       func() time.Time

	current      *vocab.Entry
	input        components.TextInput
	showFeedback bool
	lastOutcome  quiz.Outcome
	lastAnswer   string
	accuracy     *accuracyLoadedMsg
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen. eventRepo may be nil.
func New(repo *vocab.Repository, selector *quiz.Selector, eventRepo store.EventRepo) *QuizScreen {
	return &QuizScreen{
		repo:      repo,
		selector:  selector,
		eventRepo: eventRepo,
		session:   quiz.NewSession(time.Now()),
		now:       time.Now,
		input:     newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTokenInput("Type the word...", vocab.ForbiddenChars, 64)
}

func (s *QuizScreen) Init() tea.Cmd {
	slog.Debug("quiz session started", "session", s.session.ID, "words", s.repo.Len())
	return s.nextQuestion()
}

func (s *QuizScreen) Title() string {
	return "Test"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
			{Key: "Esc", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Finish"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case accuracyLoadedMsg:
		if s.current != nil && msg.Word == s.current.Word() {
			s.accuracy = &msg
		}
		return s, nil

	case feedbackDoneMsg:
		s.showFeedback = false
		return s, s.nextQuestion()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.current != nil && !s.showFeedback {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// nextQuestion draws the next entry with the level-biased selector and
// clears the answer input. Called only from Init and Update.
func (s *QuizScreen) nextQuestion() tea.Cmd {
	s.current = nil
	s.accuracy = nil
	s.lastAnswer = ""

	e, err := s.selector.Select(s.repo)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.current = e
	s.input = newAnswerInput()
	return tea.Batch(s.input.Init(), s.loadAccuracy(e.Word()))
}

func (s *QuizScreen) loadAccuracy(word string) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		acc, n, err := repo.WordAccuracy(context.Background(), word)
		if err != nil {
			slog.Warn("word accuracy lookup failed", "word", word, "error", err)
			return nil
		}
		return accuracyLoadedMsg{Word: word, Accuracy: acc, Attempts: n}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if key == "esc" {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	if s.showFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.current == nil {
		return s, nil
	}

	if key == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer grades the typed word, updates the entry's score and
// records the answer in history.
func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	e := s.current

	outcome := quiz.RecordAnswer(s.repo, e, answer)
	s.session.Record(outcome)
	s.lastOutcome = outcome
	s.lastAnswer = answer
	s.showFeedback = true
	s.input.Submit(outcome == quiz.Correct)

	slog.Debug("answer recorded",
		"word", e.Word(), "outcome", outcome.String(),
		"level", e.Level(), "experience", e.Experience())

	if s.eventRepo != nil {
		err := s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:  s.session.ID,
			Word:       e.Word(),
			Answer:     answer,
			Correct:    outcome == quiz.Correct,
			Level:      e.Level(),
			Experience: e.Experience(),
		})
		if err != nil {
			slog.Warn("append answer event failed", "error", err)
		}
	}

	return s, nil
}

// handleSessionEnd records the finished session and swaps in the summary,
// so leaving the summary returns to the menu.
func (s *QuizScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	now := s.now()
	sum := s.session.Summary(now)

	if s.eventRepo != nil && sum.HasData {
		err := s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: s.session.ID,
			StartedAt: s.session.StartTime,
			EndedAt:   now,
			Total:     sum.Total,
			Correct:   sum.Correct,
		})
		if err != nil {
			slog.Warn("append session event failed", "error", err)
		}
	}
	slog.Info("quiz session finished",
		"session", sum.SessionID, "total", sum.Total, "correct", sum.Correct)

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
