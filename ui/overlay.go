package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"switchboard/core"
	"switchboard/platform"
)

// ShortcutOverlay is the held-"?"-style discovery modal: a centered box
// listing every currently available command, digit tab jumps first, then
// the registered catalog actions. While it is visible the scaffold
// reports IsModalActive and keeps digit chords quiet; the overlay's own
// command provider bypasses that gate so it can still list them.
type ShortcutOverlay struct {
	visible bool
	width   int
	height  int
	rtl     bool

	primaryGlyph string

	// commands supplies the live lists at render time; the overlay holds
	// no copy of its own.
	commands func() (tabs, actions []core.CommandDescriptor)
}

func NewShortcutOverlay(commands func() (tabs, actions []core.CommandDescriptor)) *ShortcutOverlay {
	return &ShortcutOverlay{
		primaryGlyph: platform.PrimaryGlyph(),
		commands:     commands,
	}
}

func (o *ShortcutOverlay) Show() {
	o.visible = true
}

func (o *ShortcutOverlay) Hide() {
	o.visible = false
}

func (o *ShortcutOverlay) IsVisible() bool {
	return o.visible
}

// SetRTLLayout flips arrow glyphs for right-to-left locales.
func (o *ShortcutOverlay) SetRTLLayout(rtl bool) {
	o.rtl = rtl
}

// SetPrimaryGlyph overrides the platform glyph (config may pick ctrl).
func (o *ShortcutOverlay) SetPrimaryGlyph(glyph string) {
	o.primaryGlyph = glyph
}

func (o *ShortcutOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

func (o *ShortcutOverlay) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.SetSize(msg.Width, msg.Height)
	}
	return nil
}

func (o *ShortcutOverlay) View() string {
	if !o.visible {
		return ""
	}

	orange := lipgloss.Color("208")
	gray := lipgloss.Color("245")

	titleStyle := lipgloss.NewStyle().Foreground(orange).Bold(true).MarginBottom(1)
	sectionStyle := lipgloss.NewStyle().Foreground(gray).Bold(true)
	chordStyle := lipgloss.NewStyle().Foreground(orange).Bold(true).Width(10)
	labelStyle := lipgloss.NewStyle()

	tabs, actions := o.commands()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	writeSection := func(name string, cmds []core.CommandDescriptor) {
		if len(cmds) == 0 {
			return
		}
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, cmd := range cmds {
			v := VisualFor(cmd.Chord, o.primaryGlyph)
			if o.rtl {
				v = v.Mirror()
			}
			b.WriteString(chordStyle.Render(v.Glyphs))
			b.WriteString(labelStyle.Render(cmd.Label))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	writeSection("Tabs", tabs)
	writeSection("Actions", actions)
	b.WriteString(lipgloss.NewStyle().Foreground(gray).Render("esc to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(orange).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, box)
}
