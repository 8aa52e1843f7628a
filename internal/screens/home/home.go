package home

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/vocamaster/vocamaster/internal/quiz"
	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/screens/addword"
	"github.com/vocamaster/vocamaster/internal/screens/history"
	"github.com/vocamaster/vocamaster/internal/screens/notice"
	quizscreen "github.com/vocamaster/vocamaster/internal/screens/quiz"
	"github.com/vocamaster/vocamaster/internal/screens/wordlist"
	"github.com/vocamaster/vocamaster/internal/store"
	"github.com/vocamaster/vocamaster/internal/ui/components"
	"github.com/vocamaster/vocamaster/internal/ui/layout"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

// Deps are the collaborators the menu actions hand to their screens.
type Deps struct {
	Repo      *vocab.Repository
	Selector  *quiz.Selector
	PageSize  int
	Save      func() error
	EventRepo store.EventRepo // nil disables history
	DataFile  string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps      Deps
	menu      components.Menu
	counts    [vocab.MaxLevel + 1]int
	status    string
	statusErr bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "ADD", Shortcut: "1", Action: h.openAdd},
		{Label: "LIST", Shortcut: "2", Action: h.openList},
		{Label: "TEST", Shortcut: "3", Action: h.openTest},
		{Label: "HISTORY", Shortcut: "4", Action: h.openHistory},
		{Label: "EXIT", Shortcut: "5", Action: h.exit},
	})
	h.counts = deps.Repo.LevelCounts()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the dashboard after a child screen closes.
func (h *HomeScreen) Resume() tea.Cmd {
	h.counts = h.deps.Repo.LevelCounts()
	h.status = ""
	h.statusErr = false
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-5", Description: "Shortcut"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 80

	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderLevelBar(h.counts, cw, compact),
		renderMenuBox(h.menu.View(), cw),
	}
	if h.status != "" {
		sections = append(sections, renderStatus(h.status, h.statusErr, cw))
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) setStatus(msg string, isErr bool) {
	h.status = msg
	h.statusErr = isErr
}

func (h *HomeScreen) openAdd() tea.Cmd {
	return push(addword.New(h.deps.Repo))
}

func (h *HomeScreen) openList() tea.Cmd {
	if h.deps.Repo.Len() == 0 {
		h.setStatus("empty list", false)
		return nil
	}
	return push(wordlist.New(h.deps.Repo, h.deps.PageSize))
}

func (h *HomeScreen) openTest() tea.Cmd {
	if h.deps.Repo.Len() == 0 {
		h.setStatus("empty list", false)
		return nil
	}
	return push(quizscreen.New(h.deps.Repo, h.deps.Selector, h.deps.EventRepo))
}

func (h *HomeScreen) openHistory() tea.Cmd {
	if h.deps.EventRepo == nil {
		return push(notice.New("History",
			"Quiz history is off for this run.\n"+
				"Word levels are still kept in "+h.deps.DataFile+"."))
	}
	return push(history.New(h.deps.EventRepo))
}

// exit saves when there are unsaved changes and quits on success.
// A failed save keeps the user on the menu with the error shown. The save
// runs on the program goroutine.
func (h *HomeScreen) exit() tea.Cmd {
	if !h.deps.Repo.Dirty() || h.deps.Save == nil {
		return tea.Quit
	}
	if err := h.deps.Save(); err != nil {
		slog.Error("save failed", "error", err)
		h.setStatus("save failed: "+err.Error(), true)
		return nil
	}
	return tea.Quit
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}
