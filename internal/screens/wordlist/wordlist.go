package wordlist

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/ui/components"
	"github.com/vocamaster/vocamaster/internal/ui/layout"
	"github.com/vocamaster/vocamaster/internal/ui/theme"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

type mode int

const (
	modeBrowse mode = iota
	modeDelete
	modeConfirmClear
)

// ListScreen pages through the vocabulary and deletes or clears entries.
type ListScreen struct {
	repo     *vocab.Repository
	pageSize int
	page     int
	mode     mode
	input    components.TextInput
	message  string
	isErr    bool
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates a new ListScreen showing pageSize entries per page.
func New(repo *vocab.Repository, pageSize int) *ListScreen {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ListScreen{
		repo:     repo,
		pageSize: pageSize,
	}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Title() string {
	return "Word List"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeDelete:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Delete"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmClear:
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear all"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Page"},
		{Key: "D", Description: "Delete"},
		{Key: "C", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeDelete:
		return s.updateDelete(msg)
	case modeConfirmClear:
		return s.updateConfirmClear(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		if s.page > 0 {
			s.page--
		}
		s.message = ""
	case "right", "l":
		if s.page < s.repo.PageCount(s.pageSize)-1 {
			s.page++
		}
		s.message = ""
	case "d":
		if s.repo.Len() == 0 {
			s.setMessage("empty list", false)
			return s, nil
		}
		s.mode = modeDelete
		s.message = ""
		s.input = components.NewTextInput("position", true, 6)
		return s, s.input.Init()
	case "c":
		s.mode = modeConfirmClear
		s.message = ""
	}
	return s, nil
}

func (s *ListScreen) updateDelete(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeBrowse
			return s, nil
		case "enter":
			s.deleteAt()
			s.mode = modeBrowse
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// deleteAt removes the entry at the one-based position typed into the
// prompt, as shown in the list.
func (s *ListScreen) deleteAt() {
	pos, err := s.input.NumericValue()
	if err != nil {
		s.setMessage("wrong index", true)
		return
	}
	e, err := s.repo.Get(pos - 1)
	if err != nil {
		s.setMessage("wrong index", true)
		return
	}
	word := e.Word()
	if err := s.repo.Delete(pos - 1); err != nil {
		s.setMessage(err.Error(), true)
		return
	}
	slog.Info("word deleted", "word", word, "position", pos)
	s.clampPage()
	s.setMessage(fmt.Sprintf("deleted %q", word), false)
}

func (s *ListScreen) updateConfirmClear(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "y", "Y":
		n := s.repo.Len()
		s.repo.Clear()
		slog.Info("vocabulary cleared", "removed", n)
		s.page = 0
		s.mode = modeBrowse
		s.setMessage(fmt.Sprintf("cleared %d words", n), false)
	case "n", "N", "esc", "enter":
		s.mode = modeBrowse
	}
	return s, nil
}

func (s *ListScreen) clampPage() {
	last := s.repo.PageCount(s.pageSize) - 1
	if s.page > last {
		s.page = max(last, 0)
	}
}

func (s *ListScreen) setMessage(msg string, isErr bool) {
	s.message = msg
	s.isErr = isErr
}

func (s *ListScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	entries, err := s.repo.Page(s.page, s.pageSize)
	switch {
	case errors.Is(err, vocab.ErrEmptyRepository):
		b.WriteString(layout.Centered(width, theme.Hint.Render("empty list")))
		b.WriteString("\n")
	case err != nil:
		b.WriteString(layout.Centered(width, theme.Incorrect.Render(err.Error())))
		b.WriteString("\n")
	default:
		b.WriteString(layout.Centered(width, s.renderTable(entries, width)))
		b.WriteString("\n")
		pager := fmt.Sprintf("page %d / %d  ·  %d words",
			s.page+1, s.repo.PageCount(s.pageSize), s.repo.Len())
		b.WriteString(layout.Centered(width, theme.Hint.Render(pager)))
		b.WriteString("\n")
	}

	switch s.mode {
	case modeDelete:
		b.WriteString("\n")
		prompt := lipgloss.NewStyle().Foreground(theme.Accent).Render("Delete position: ")
		b.WriteString(layout.Centered(width, prompt+s.input.View()))
		b.WriteString("\n")
	case modeConfirmClear:
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Incorrect.Render(
			fmt.Sprintf("Delete all %d words? (y/N)", s.repo.Len()))))
		b.WriteString("\n")
	}

	if s.message != "" {
		style := theme.Correct
		if s.isErr {
			style = theme.Incorrect
		}
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, style.Render(s.message)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *ListScreen) renderTable(entries []*vocab.Entry, width int) string {
	first := s.page * s.pageSize
	rows := make([][]string, 0, len(entries))
	levels := make([]int, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(first + i + 1),
			e.Word(),
			e.Meaning(),
			e.Explanation(),
			strconv.Itoa(e.Level()),
			strconv.Itoa(e.Experience()),
		})
		levels = append(levels, e.Level())
	}

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "Word", "Meaning", "Explanation", "Lv", "Exp").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if row < 0 || row >= len(levels) {
				return cell
			}
			switch col {
			case 1:
				return theme.Word.Padding(0, 1)
			case 3:
				return theme.Explanation.Padding(0, 1)
			case 4:
				return theme.LevelStyle(levels[row]).Padding(0, 1)
			}
			return cell
		})
	if width > 8 {
		t = t.Width(min(width-4, 100))
	}
	return t.String()
}
