package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TextPage is a plain demo page: a title, the terminal size, and the last
// catalog action that fired while it was active. The welcome variant adds
// the keypad splash.
type TextPage struct {
	scaffold   *Scaffold
	title      string
	welcome    *Welcome
	lastAction string
}

func NewTextPage(scaffold *Scaffold, title string) *TextPage {
	return &TextPage{scaffold: scaffold, title: title}
}

// NewWelcomePage is a TextPage that leads with the keypad splash.
func NewWelcomePage(scaffold *Scaffold, title string) *TextPage {
	return &TextPage{scaffold: scaffold, title: title, welcome: NewWelcome()}
}

func (m *TextPage) Init() tea.Cmd {
	return nil
}

func (m *TextPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ActionMsg:
		m.lastAction = fmt.Sprintf("%s (%v)", msg.Label, msg.Kind)
	case TabSelectedMsg:
		// Selection changes invalidate "last action" — it belonged to the
		// previous visit.
		if msg.Title != m.title {
			m.lastAction = ""
		}
	}
	return m, nil
}

func (m *TextPage) View() string {
	if m.welcome != nil {
		return "\n" + m.welcome.View(m.scaffold.primaryGlyph)
	}

	verticalCenter := m.scaffold.GetTerminalHeight()/2 - 3
	if verticalCenter < 0 {
		verticalCenter = 0
	}
	requiredNewLines := strings.Repeat("\n", verticalCenter)

	content := fmt.Sprintf("%s | %d x %d\n\n", m.title, m.scaffold.GetTerminalWidth(), m.scaffold.GetTerminalHeight())
	if m.lastAction != "" {
		content += "Last action: " + m.lastAction + "\n\n"
	}
	content += "Press ? for the shortcut overlay."

	return requiredNewLines + content
}
