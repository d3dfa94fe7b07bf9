package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Welcome renders the landing view shown on the first tab.
type Welcome struct{}

func NewWelcome() *Welcome {
	return &Welcome{}
}

// View renders the keypad splash with a shortcut legend. primaryGlyph is
// the scaffold's configured modifier glyph, so the legend tracks a
// primary_modifier override instead of always showing the platform one.
func (w *Welcome) View(primaryGlyph string) string {
	sprite := []string{
		`  ┌───┐┌───┐┌───┐ `,
		`  │ 1 ││ 2 ││ 3 │ `,
		`  └───┘└───┘└───┘ `,
		`  ┌───┐┌───┐┌───┐ `,
		`  │ 4 ││ 5 ││ 6 │ `,
		`  └───┘└───┘└───┘ `,
		`  ┌───┐┌───┐┌───┐ `,
		`  │ 7 ││ 8 ││ 9 │ `,
		`  └───┘└───┘└───┘ `,
		` ┌────────────────┐`,
		` │   switchboard  │`,
		` └────────────────┘`,
	}

	// Same join rule as VisualFor: tight for symbol glyphs, "+" for words.
	chord := primaryGlyph
	if utf8.RuneCountInString(primaryGlyph) > 1 {
		chord += "+"
	}
	legend := []struct{ keys, desc string }{
		{chord + "1…9", "Jump to tab"},
		{"Ctrl+←/→ or [ / ]", "Switch tabs"},
		{"Ctrl+K", "Jump by title"},
		{"?", "Shortcut overlay"},
		{"Ctrl+C", "Exit"},
	}

	help := []string{
		"Welcome to Switchboard",
		"",
		"Shortcuts",
		"",
	}
	for _, e := range legend {
		help = append(help, fmt.Sprintf("  %-21s %s", e.keys, e.desc))
	}
	helpStart := 2

	maxSpriteWidth := 0
	for _, row := range sprite {
		if w := lipgloss.Width(row); w > maxSpriteWidth {
			maxSpriteWidth = w
		}
	}

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	var b strings.Builder
	for y, row := range sprite {
		b.WriteString(keyStyle.Render(row))
		if pad := maxSpriteWidth - lipgloss.Width(row); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}

		helpIdx := y - helpStart
		if helpIdx >= 0 && helpIdx < len(help) {
			b.WriteString("   ")
			b.WriteString(help[helpIdx])
		}
		b.WriteString("\n")
	}

	return b.String()
}
