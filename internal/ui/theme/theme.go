package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette for dark terminals
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Level colors, index = mastery level.
var levelColors = []color.Color{
	TextDim,
	Error,
	Accent,
	lipgloss.Color("#EAB308"),
	Secondary,
	Success,
}

// LevelColor returns the color used to draw a mastery level.
func LevelColor(level int) color.Color {
	if level < 0 || level >= len(levelColors) {
		return Text
	}
	return levelColors[level]
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Flashcard text
var (
	Word = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Meaning = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Explanation = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	// Unsaved marks a vocabulary with changes not yet written to disk.
	Unsaved = lipgloss.NewStyle().
		Foreground(Error)
)

// LevelStyle renders a level number in its level color.
func LevelStyle(level int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(LevelColor(level)).Bold(true)
}

// Components
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
