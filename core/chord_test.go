package core

import "testing"

func TestChordKeyName(t *testing.T) {
	tests := []struct {
		chord   Chord
		primary string
		want    string
	}{
		{Chord{Mods: ModPrimary, Trigger: RuneTrigger('3')}, "alt", "alt+3"},
		{Chord{Mods: ModPrimary, Trigger: RuneTrigger('w')}, "ctrl", "ctrl+w"},
		{Chord{Trigger: KeyTrigger(KeyEscape)}, "alt", "esc"},
		{Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyEnter)}, "alt", "alt+enter"},
		{Chord{Mods: ModPrimary | ModShift, Trigger: KeyTrigger(KeyLeft)}, "alt", "alt+shift+left"},
		// Primary already renders as alt; ModAlt must not double the prefix.
		{Chord{Mods: ModPrimary | ModAlt, Trigger: RuneTrigger('x')}, "alt", "alt+x"},
		{Chord{Mods: ModPrimary | ModAlt, Trigger: RuneTrigger('x')}, "ctrl", "ctrl+alt+x"},
	}
	for _, tt := range tests {
		if got := tt.chord.KeyName(tt.primary); got != tt.want {
			t.Errorf("KeyName(%q) = %q, want %q", tt.primary, got, tt.want)
		}
	}
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		name string
		want Chord
	}{
		{"alt+3", Chord{Mods: ModPrimary, Trigger: RuneTrigger('3')}},
		{"esc", Chord{Trigger: KeyTrigger(KeyEscape)}},
		{"escape", Chord{Trigger: KeyTrigger(KeyEscape)}},
		{"alt+return", Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyEnter)}},
		{"alt+delete", Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyBackspace)}},
		{"shift+alt+left", Chord{Mods: ModPrimary | ModShift, Trigger: KeyTrigger(KeyLeft)}},
		{"ALT+S", Chord{Mods: ModPrimary, Trigger: RuneTrigger('s')}},
		{" alt+= ", Chord{Mods: ModPrimary, Trigger: RuneTrigger('=')}},
	}
	for _, tt := range tests {
		got, err := ParseChord(tt.name, "alt")
		if err != nil {
			t.Errorf("ParseChord(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChord(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseChordErrors(t *testing.T) {
	for _, name := range []string{"", "hyper+x", "alt+", "alt+f13", "alt+ab"} {
		if _, err := ParseChord(name, "alt"); err == nil {
			t.Errorf("ParseChord(%q) succeeded, want error", name)
		}
	}
}

func TestParseChordFormatRoundTrip(t *testing.T) {
	for _, kind := range Actions() {
		chord := ChordFor(kind)
		parsed, err := ParseChord(chord.KeyName("alt"), "alt")
		if err != nil {
			t.Fatalf("%v: ParseChord(%q): %v", kind, chord.KeyName("alt"), err)
		}
		if parsed != chord {
			t.Errorf("%v: round trip %v -> %q -> %v", kind, chord, chord.KeyName("alt"), parsed)
		}
	}
}
