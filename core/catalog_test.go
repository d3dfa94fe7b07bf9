package core

import "testing"

func TestChordForIsTotalAndDeterministic(t *testing.T) {
	for _, kind := range Actions() {
		first := ChordFor(kind)
		second := ChordFor(kind)
		if first != second {
			t.Errorf("ChordFor(%v) not deterministic: %v then %v", kind, first, second)
		}
	}
}

func TestCancelIsOnlyUnmodifiedAction(t *testing.T) {
	var unmodified []ActionKind
	for _, kind := range Actions() {
		if ChordFor(kind).Mods == ModNone {
			unmodified = append(unmodified, kind)
		}
	}
	if len(unmodified) != 1 || unmodified[0] != ActionCancel {
		t.Errorf("unmodified actions = %v, want exactly [cancel]", unmodified)
	}
}

func TestCatalogEntries(t *testing.T) {
	tests := []struct {
		kind ActionKind
		want Chord
	}{
		{ActionCancel, Chord{Trigger: KeyTrigger(KeyEscape)}},
		{ActionClose, Chord{Mods: ModPrimary, Trigger: RuneTrigger('w')}},
		{ActionDone, Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyEnter)}},
		{ActionSave, Chord{Mods: ModPrimary, Trigger: RuneTrigger('s')}},
		{ActionShare, Chord{Mods: ModPrimary, Trigger: RuneTrigger('i')}},
		{ActionEdit, Chord{Mods: ModPrimary, Trigger: RuneTrigger('e')}},
		{ActionNew, Chord{Mods: ModPrimary, Trigger: RuneTrigger('n')}},
		{ActionBookmarks, Chord{Mods: ModPrimary, Trigger: RuneTrigger('b')}},
		{ActionSearch, Chord{Mods: ModPrimary, Trigger: RuneTrigger('f')}},
		{ActionDelete, Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyBackspace)}},
		{ActionToday, Chord{Mods: ModPrimary, Trigger: RuneTrigger('t')}},
		{ActionZoomIn, Chord{Mods: ModPrimary, Trigger: RuneTrigger('=')}},
		{ActionZoomOut, Chord{Mods: ModPrimary, Trigger: RuneTrigger('-')}},
		{ActionZoomActualSize, Chord{Mods: ModPrimary, Trigger: RuneTrigger('0')}},
		{ActionRewind, Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyLeft)}},
		{ActionFastForward, Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyRight)}},
	}
	for _, tt := range tests {
		if got := ChordFor(tt.kind); got != tt.want {
			t.Errorf("ChordFor(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

// Reply and refresh share primary+'r'. The overlap is documented, not
// accidental: the two actions never appear in the same context. This test
// exists so that anyone "fixing" the collision has to come here and learn
// it is load-bearing.
func TestReplyAndRefreshShareChord(t *testing.T) {
	reply := ChordFor(ActionReply)
	refresh := ChordFor(ActionRefresh)
	if reply != refresh {
		t.Fatalf("reply chord %v differs from refresh chord %v; the catalog documents them as identical", reply, refresh)
	}
	want := Chord{Mods: ModPrimary, Trigger: RuneTrigger('r')}
	if reply != want {
		t.Errorf("reply/refresh chord = %v, want %v", reply, want)
	}
}

func TestChordForUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ChordFor(numActionKinds) did not panic")
		}
	}()
	ChordFor(numActionKinds)
}

func TestParseActionRoundTrip(t *testing.T) {
	for _, kind := range Actions() {
		got, err := ParseAction(kind.String())
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", kind.String(), err)
		}
		if got != kind {
			t.Errorf("ParseAction(%q) = %v, want %v", kind.String(), got, kind)
		}
	}
	if _, err := ParseAction("teleport"); err == nil {
		t.Errorf("ParseAction(\"teleport\") succeeded, want error")
	}
}
