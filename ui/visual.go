package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"switchboard/core"
	"switchboard/platform"
)

// VisualShortcut is a presentation-oriented rendering of a chord for the
// shortcut overlay and cheat sheet. Mirrored marks chords whose glyph
// must flip horizontally in right-to-left locales (the arrow-key pair).
type VisualShortcut struct {
	Glyphs   string
	Mirrored bool
}

var keyGlyphs = map[core.Key]string{
	core.KeyEscape:    "⎋",
	core.KeyEnter:     "⏎",
	core.KeyBackspace: "⌫",
	core.KeyLeft:      "←",
	core.KeyRight:     "→",
}

// VisualFor renders a chord into display glyphs. primaryGlyph is the
// platform (or config) glyph for ModPrimary; single-rune glyphs concat
// tightly ("⌥3"), wordy ones join with "+" ("Alt+3").
func VisualFor(c core.Chord, primaryGlyph string) VisualShortcut {
	var parts []string
	if c.Mods.Has(core.ModPrimary) {
		parts = append(parts, primaryGlyph)
	}
	if c.Mods.Has(core.ModAlt) {
		parts = append(parts, "⌥")
	}
	if c.Mods.Has(core.ModShift) {
		parts = append(parts, "⇧")
	}

	mirrored := false
	if c.Trigger.IsKey() {
		parts = append(parts, keyGlyphs[c.Trigger.Key])
		mirrored = c.Trigger.Key == core.KeyLeft || c.Trigger.Key == core.KeyRight
	} else {
		parts = append(parts, string(unicode.ToUpper(c.Trigger.Rune)))
	}

	sep := ""
	if utf8.RuneCountInString(primaryGlyph) > 1 {
		sep = "+"
	}
	return VisualShortcut{Glyphs: strings.Join(parts, sep), Mirrored: mirrored}
}

// DefaultVisualFor renders a chord with the platform primary glyph.
func DefaultVisualFor(c core.Chord) VisualShortcut {
	return VisualFor(c, platform.PrimaryGlyph())
}

// Mirror returns the shortcut adjusted for a right-to-left layout: arrow
// glyphs swap direction, everything else passes through unchanged.
func (v VisualShortcut) Mirror() VisualShortcut {
	if !v.Mirrored {
		return v
	}
	swapped := strings.Map(func(r rune) rune {
		switch r {
		case '←':
			return '→'
		case '→':
			return '←'
		}
		return r
	}, v.Glyphs)
	return VisualShortcut{Glyphs: swapped, Mirrored: true}
}
