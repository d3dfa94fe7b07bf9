package core

import (
	"fmt"
	"strings"

	"switchboard/platform"
)

// Modifier is a bitmask of modifier keys participating in a chord.
type Modifier uint8

const (
	// ModPrimary is the platform-conventional shortcut modifier. Its
	// concrete key-event name and display glyph are resolved by the
	// platform package (and may be overridden from config).
	ModPrimary Modifier = 1 << iota
	ModShift
	ModAlt
)

// ModNone is the empty modifier set. Cancel is the only catalog action
// bound without a modifier.
const ModNone Modifier = 0

// Has reports whether all modifiers in m are set.
func (m Modifier) Has(mod Modifier) bool { return m&mod == mod }

// Key identifies a named non-character trigger key.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyLeft:      "left",
	KeyRight:     "right",
}

// Trigger is the non-modifier component of a chord: either a single rune
// or a named special key. Exactly one of the two fields is meaningful.
type Trigger struct {
	Rune rune
	Key  Key
}

// RuneTrigger returns a trigger for a printable character.
func RuneTrigger(r rune) Trigger { return Trigger{Rune: r} }

// KeyTrigger returns a trigger for a named special key.
func KeyTrigger(k Key) Trigger { return Trigger{Key: k} }

// IsKey reports whether the trigger is a named key rather than a rune.
func (t Trigger) IsKey() bool { return t.Key != KeyNone }

// Name returns the terminal key-event name for the trigger ("s", "esc",
// "left", ...).
func (t Trigger) Name() string {
	if t.IsKey() {
		return keyNames[t.Key]
	}
	return string(t.Rune)
}

// Chord is a modifier set plus one trigger key that together invoke a
// command.
type Chord struct {
	Mods    Modifier
	Trigger Trigger
}

// KeyName renders the chord as a Bubble Tea key-event name ("alt+3",
// "ctrl+w", "esc"), with primary naming the key-event prefix used for
// ModPrimary. Duplicate prefixes collapse, so primary "alt" plus ModAlt
// still yields a single "alt+".
func (c Chord) KeyName(primary string) string {
	var parts []string
	if c.Mods.Has(ModPrimary) {
		parts = append(parts, primary)
	}
	if c.Mods.Has(ModAlt) && (primary != "alt" || !c.Mods.Has(ModPrimary)) {
		parts = append(parts, "alt")
	}
	if c.Mods.Has(ModShift) {
		parts = append(parts, "shift")
	}
	parts = append(parts, c.Trigger.Name())
	return strings.Join(parts, "+")
}

// String renders the chord with the platform default primary modifier.
func (c Chord) String() string {
	return c.KeyName(platform.PrimaryKeyName())
}

var triggersByName = map[string]Trigger{
	"esc":       KeyTrigger(KeyEscape),
	"escape":    KeyTrigger(KeyEscape),
	"enter":     KeyTrigger(KeyEnter),
	"return":    KeyTrigger(KeyEnter),
	"backspace": KeyTrigger(KeyBackspace),
	"delete":    KeyTrigger(KeyBackspace),
	"left":      KeyTrigger(KeyLeft),
	"right":     KeyTrigger(KeyRight),
}

// ParseChord parses a Bubble Tea style key name back into a Chord.
// primary names the prefix that maps to ModPrimary. Used by the config
// layer for user rebinds; unknown prefixes or empty triggers are errors.
func ParseChord(name, primary string) (Chord, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return Chord{}, fmt.Errorf("empty chord")
	}

	parts := strings.Split(name, "+")
	trigger := parts[len(parts)-1]
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case primary:
			mods |= ModPrimary
		case "shift":
			mods |= ModShift
		case "alt":
			mods |= ModAlt
		default:
			return Chord{}, fmt.Errorf("chord %q: unknown modifier %q", name, p)
		}
	}

	if t, ok := triggersByName[trigger]; ok {
		return Chord{Mods: mods, Trigger: t}, nil
	}
	runes := []rune(trigger)
	if len(runes) != 1 {
		return Chord{}, fmt.Errorf("chord %q: trigger %q is neither a named key nor a single character", name, trigger)
	}
	return Chord{Mods: mods, Trigger: RuneTrigger(runes[0])}, nil
}
