package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocamaster/vocamaster/internal/quiz"
	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/ui/components"
	"github.com/vocamaster/vocamaster/internal/ui/layout"
	"github.com/vocamaster/vocamaster/internal/ui/theme"
)

// SummaryScreen displays the result of a finished test run.
type SummaryScreen struct {
	summary quiz.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary quiz.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Test Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	if !sum.HasData {
		b.WriteString(theme.Hint.Render("no data"))
		return components.CenterBlock(components.Card(b.String(), cw), width, height)
	}

	b.WriteString(statLine("Total", fmt.Sprint(sum.Total), theme.Body))
	b.WriteString(statLine("Correct", fmt.Sprint(sum.Correct), theme.Correct))
	b.WriteString(statLine("Wrong", fmt.Sprint(sum.Wrong), theme.Incorrect))
	b.WriteString(statLine("Success rate", fmt.Sprintf("%d%%", sum.SuccessRate), theme.Selected))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(sum.SuccessRate)/100, false, cw-8).View())

	return components.CenterBlock(components.Card(b.String(), cw), width, height)
}

func statLine(label, value string, style lipgloss.Style) string {
	name := lipgloss.NewStyle().Foreground(theme.TextDim).Width(14).Render(label)
	return name + style.Render(value) + "\n"
}
