package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vocamaster/vocamaster/internal/quiz"
	"github.com/vocamaster/vocamaster/internal/ui/components"
	"github.com/vocamaster/vocamaster/internal/ui/theme"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.current == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Picking a word...")
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.showFeedback {
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString(s.renderQuestion(width))
	}
	return b.String()
}

// renderInfoLine shows the running tally and the entry's level.
func (s *QuizScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d", s.session.Total()+1))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.session.Correct(),
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			s.session.Wrong(),
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *QuizScreen) renderQuestion(width int) string {
	cw := components.ContentWidth(width)
	e := s.current

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("What word means"))
	b.WriteString("\n\n")
	b.WriteString(theme.Meaning.Render(e.Meaning()))
	b.WriteString("\n\n")
	b.WriteString(components.ExperienceBar(e.Level(), e.Experience(), vocab.MaxExperience, cw-8))
	if s.accuracy != nil && s.accuracy.Attempts > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("seen %d times, %.0f%% correct",
			s.accuracy.Attempts, s.accuracy.Accuracy*100)))
	}

	card := components.Card(b.String(), cw)
	answer := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())

	return layoutCentered(width, card) + "\n\n" + answer
}

// renderFeedback shows the verdict; a wrong answer reveals the word and
// its explanation.
func (s *QuizScreen) renderFeedback(width int) string {
	cw := components.ContentWidth(width)
	e := s.current

	var b strings.Builder
	if s.lastOutcome == quiz.Correct {
		b.WriteString(theme.Correct.Render("Correct!"))
		b.WriteString("\n\n")
		b.WriteString(theme.Word.Render(e.Word()))
	} else {
		b.WriteString(theme.Incorrect.Render("Wrong"))
		b.WriteString("\n\n")
		if s.lastAnswer != "" {
			b.WriteString(theme.Hint.Render("you typed " + s.lastAnswer))
			b.WriteString("\n")
		}
		b.WriteString(theme.Word.Render(e.Word()))
		if e.Explanation() != "" {
			b.WriteString("\n")
			b.WriteString(theme.Explanation.Render(e.Explanation()))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(components.ExperienceBar(e.Level(), e.Experience(), vocab.MaxExperience, cw-8))

	return layoutCentered(width, components.Card(b.String(), cw))
}

func layoutCentered(width int, block string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func renderError(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("%s\n\nPress any key to go back", msg))
}
