package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	flipEnd      = 400 * time.Millisecond
	tipsEnd      = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// Card faces shown while the splash flips.
var cardFaces = []string{
	`╭─────────────╮
│             │
│    gato     │
│             │
╰─────────────╯`,
	`╭─────────────╮
│             │
│     cat     │
│             │
╰─────────────╯`,
}

var tips = []string{
	"ADD      store a word with its meaning",
	"LIST     browse, delete or clear words",
	"TEST     see a meaning, type the word",
	"EXIT     save and leave",
	"",
	"Right answers raise a word to level 5, wrong ones drop it back.",
	"Low-level words come up more often.",
}

type tickMsg time.Time

// WelcomeScreen greets a user whose data file was just created, then
// hands over to the menu.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	dataFile     string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(dataFile string, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		dataFile:    dataFile,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	face := cardFaces[0]
	if w.elapsed >= flipEnd {
		face = cardFaces[(w.tickCount/8)%len(cardFaces)]
	}
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Render(face),
	}

	if w.elapsed >= flipEnd {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Welcome to VocaMaster!"),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Started a new data file: "+w.dataFile),
		)
	}

	if w.elapsed >= tipsEnd {
		sections = append(sections, "")
		for _, tip := range tips {
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(tip))
		}
	}

	sections = append(sections, "",
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
