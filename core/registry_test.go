package core

import "testing"

func newTestRegistry() *Registry {
	r := NewRegistry()
	for _, kind := range Actions() {
		r.Register(kind, kind.String())
	}
	return r
}

func TestRegistryRegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	first := r.Register(ActionSave, "Save")
	second := r.Register(ActionSave, "Save Again")
	if first != second {
		t.Errorf("second Register returned new handler key %q, want %q", second, first)
	}
	if got := len(r.Commands()); got != 1 {
		t.Errorf("got %d commands, want 1", got)
	}
}

func TestRegistryHandlerKeysAreDistinct(t *testing.T) {
	r := newTestRegistry()
	seen := make(map[HandlerKey]ActionKind)
	for _, cmd := range r.Commands() {
		if prev, ok := seen[cmd.Handler]; ok {
			t.Errorf("handler key %q shared by %v and %q", cmd.Handler, prev, cmd.Label)
		}
		seen[cmd.Handler] = 0
	}
	if len(seen) != len(Actions()) {
		t.Errorf("got %d distinct handler keys, want %d", len(seen), len(Actions()))
	}
}

func TestRegistryLookup(t *testing.T) {
	r := newTestRegistry()

	cmd, ok := r.Lookup(Chord{Mods: ModPrimary, Trigger: RuneTrigger('s')})
	if !ok || cmd.Label != "save" {
		t.Errorf("Lookup(primary+s) = (%q, %v), want save", cmd.Label, ok)
	}

	// reply registered before refresh, so the shared chord resolves to reply.
	cmd, ok = r.Lookup(Chord{Mods: ModPrimary, Trigger: RuneTrigger('r')})
	if !ok || cmd.Label != "reply" {
		t.Errorf("Lookup(primary+r) = (%q, %v), want reply", cmd.Label, ok)
	}

	if _, ok := r.Lookup(Chord{Mods: ModPrimary, Trigger: RuneTrigger('z')}); ok {
		t.Errorf("Lookup(primary+z) matched, want no match")
	}
}

func TestRegistryKind(t *testing.T) {
	r := NewRegistry()
	key := r.Register(ActionClose, "Close")
	kind, ok := r.Kind(key)
	if !ok || kind != ActionClose {
		t.Errorf("Kind(%q) = (%v, %v), want (close, true)", key, kind, ok)
	}
	if _, ok := r.Kind(HandlerKey("nope")); ok {
		t.Errorf("Kind with bogus handler key matched")
	}
}

func TestRegistryRebind(t *testing.T) {
	r := newTestRegistry()
	next := Chord{Mods: ModPrimary | ModShift, Trigger: RuneTrigger('s')}
	if err := r.Rebind(ActionSave, next); err != nil {
		t.Fatalf("Rebind(save): %v", err)
	}
	if cmd, ok := r.Lookup(next); !ok || cmd.Label != "save" {
		t.Errorf("Lookup after rebind = (%q, %v), want save", cmd.Label, ok)
	}
	if _, ok := r.Lookup(ChordFor(ActionSave)); ok {
		t.Errorf("old save chord still resolves after rebind")
	}
}

func TestRegistryRebindRejectsNewCollisions(t *testing.T) {
	r := newTestRegistry()
	if err := r.Rebind(ActionEdit, ChordFor(ActionSave)); err == nil {
		t.Errorf("rebinding edit onto save's chord succeeded, want error")
	}
	if err := r.Rebind(ActionEdit, Chord{Mods: ModPrimary, Trigger: RuneTrigger('r')}); err == nil {
		t.Errorf("rebinding edit onto the reply/refresh chord succeeded, want error")
	}
	if err := r.Rebind(ActionRewind, ChordFor(ActionRewind)); err != nil {
		t.Errorf("no-op rebind failed: %v", err)
	}
}

func TestRegistryToleratesCanonicalReplyRefreshOverlap(t *testing.T) {
	r := newTestRegistry()
	// Moving refresh away and back again must stay legal.
	aside := Chord{Mods: ModPrimary | ModShift, Trigger: RuneTrigger('r')}
	if err := r.Rebind(ActionRefresh, aside); err != nil {
		t.Fatalf("Rebind(refresh, shift variant): %v", err)
	}
	if err := r.Rebind(ActionRefresh, ChordFor(ActionRefresh)); err != nil {
		t.Errorf("restoring refresh to its canonical chord: %v", err)
	}
}

func TestRegistryRebindUnregistered(t *testing.T) {
	r := NewRegistry()
	if err := r.Rebind(ActionSave, ChordFor(ActionSave)); err == nil {
		t.Errorf("Rebind on empty registry succeeded, want error")
	}
}
