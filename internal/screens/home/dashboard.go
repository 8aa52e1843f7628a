package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vocamaster/vocamaster/internal/ui/theme"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

const titleFull = `╦  ╦┌─┐┌─┐┌─┐╔╦╗┌─┐┌─┐┌┬┐┌─┐┬─┐
╚╗╔╝│ ││  ├─┤║║║├─┤└─┐ │ ├┤ ├┬┘
 ╚╝ └─┘└─┘┴ ┴╩ ╩┴ ┴└─┘ ┴ └─┘┴└─`

const titleCompact = "V · O · C · A"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderLevelBar shows how many words sit at each level.
func renderLevelBar(counts [vocab.MaxLevel + 1]int, cw int, compact bool) string {
	parts := make([]string, 0, vocab.MaxLevel)
	for lvl := vocab.MinLevel; lvl <= vocab.MaxLevel; lvl++ {
		format := "Lv%d %d"
		if compact {
			format = "%d:%d"
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.LevelColor(lvl)).
			Bold(true).
			Render(fmt.Sprintf(format, lvl, counts[lvl])))
	}

	sep := "  "
	if compact {
		sep = " "
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, sep))
}

// renderStatus renders the one-line result of the last menu action.
func renderStatus(msg string, isErr bool, cw int) string {
	if msg == "" {
		return ""
	}
	fg := theme.TextDim
	if isErr {
		fg = theme.Error
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Width(cw).
		Align(lipgloss.Center).
		Render(msg)
}

// renderMenuBox renders the menu centered at content width.
func renderMenuBox(menu string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu)
}

// renderCabinetFrame wraps content in a double-border frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
