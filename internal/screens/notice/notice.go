package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vocamaster/vocamaster/internal/router"
	"github.com/vocamaster/vocamaster/internal/screen"
	"github.com/vocamaster/vocamaster/internal/ui/theme"
)

// NoticeScreen shows a message in place of a feature that is unavailable.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a new NoticeScreen.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (p *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (p *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *NoticeScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + p.title + " ╌╌\n\n" + p.message)
}

func (p *NoticeScreen) Title() string {
	return p.title
}
