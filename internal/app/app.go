package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocamaster/vocamaster/internal/quiz"
	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/screens/home"
	quizscreen "github.com/vocamaster/vocamaster/internal/screens/quiz"
	"github.com/vocamaster/vocamaster/internal/screens/welcome"
	"github.com/vocamaster/vocamaster/internal/store"
	"github.com/vocamaster/vocamaster/internal/ui/layout"
	"github.com/vocamaster/vocamaster/internal/vocab"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Repo     *vocab.Repository
	Selector *quiz.Selector
	PageSize int

	// Save persists Repo; called from EXIT only when Repo is dirty.
	Save func() error

	// EventRepo records quiz history. Optional.
	EventRepo store.EventRepo

	// StartQuiz opens a test session on top of the menu.
	StartQuiz bool

	// FirstRun shows the welcome splash before the menu. DataFile is
	// named on it.
	FirstRun bool
	DataFile string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	repo    *vocab.Repository
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Repo:      opts.Repo,
		Selector:  opts.Selector,
		PageSize:  opts.PageSize,
		Save:      opts.Save,
		EventRepo: opts.EventRepo,
		DataFile:  opts.DataFile,
	})
	var first screen.Screen = homeScreen
	if opts.FirstRun {
		first = welcome.New(opts.DataFile, func() screen.Screen { return homeScreen })
	}
	m := AppModel{
		router: router.New(first),
		repo:   opts.Repo,
	}
	if opts.StartQuiz && opts.Repo.Len() > 0 {
		m.initCmd = m.router.Push(quizscreen.New(opts.Repo, opts.Selector, opts.EventRepo))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.initCmd != nil {
		return m.initCmd
	}
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.repo.Len(), m.repo.Dirty(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Selector == nil {
		opts.Selector = quiz.NewSeededSelector()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	slog.Debug("tui exited", "dirty", opts.Repo.Dirty())
	return nil
}
