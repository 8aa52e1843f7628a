package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/store"
	"github.com/vocamaster/vocamaster/internal/ui/layout"
	"github.com/vocamaster/vocamaster/internal/ui/theme"
)

const sessionLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Err      error
}

// HistoryScreen displays past test sessions.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.QuerySessionSummaries(context.Background(), store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No tests yet. Pick TEST from the menu!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.EndedAt.Local().Format("Jan 02, 2006 15:04")
		secs := int(sess.EndedAt.Sub(sess.StartedAt).Seconds())
		durationStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

		rate := 0
		if sess.Total > 0 {
			rate = sess.Correct * 100 / sess.Total
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d questions  %d%% correct",
			prefix, dateStr, durationStr, sess.Total, rate)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s %d   %s %d   session %s",
				theme.Correct.Render("✓"), sess.Correct,
				theme.Incorrect.Render("✗"), sess.Total-sess.Correct,
				shortID(sess.SessionID))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
