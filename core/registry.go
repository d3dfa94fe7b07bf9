package core

import (
	"fmt"

	"github.com/google/uuid"
)

type registration struct {
	kind  ActionKind
	chord Chord
	label string
	key   HandlerKey
}

// Registry binds catalog actions to handler keys for the host dispatch
// layer. Unlike digit tab commands, which are rederived from the tab bar
// on every query, registered actions are stable for the life of the
// program; only their chords can move, via Rebind.
type Registry struct {
	order   []ActionKind
	entries map[ActionKind]*registration
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[ActionKind]*registration)}
}

// Register adds kind with its canonical chord, a caller-supplied display
// label, and a fresh opaque handler key. Registering the same kind twice
// returns the existing handler key.
func (r *Registry) Register(kind ActionKind, label string) HandlerKey {
	if e, ok := r.entries[kind]; ok {
		return e.key
	}
	e := &registration{
		kind:  kind,
		chord: ChordFor(kind),
		label: label,
		key:   HandlerKey(uuid.NewString()),
	}
	r.entries[kind] = e
	r.order = append(r.order, kind)
	return e.key
}

// Lookup resolves a chord to a registered command. When two registered
// actions share a chord (reply/refresh ship that way), the earlier
// registration wins.
func (r *Registry) Lookup(c Chord) (CommandDescriptor, bool) {
	for _, kind := range r.order {
		if e := r.entries[kind]; e.chord == c {
			return e.describe(), true
		}
	}
	return CommandDescriptor{}, false
}

// Kind returns the action kind behind a handler key issued by Register.
func (r *Registry) Kind(key HandlerKey) (ActionKind, bool) {
	for _, e := range r.entries {
		if e.key == key {
			return e.kind, true
		}
	}
	return 0, false
}

// Commands returns descriptors for every registered action in
// registration order. Rebuilt on each call so rebinds are reflected.
func (r *Registry) Commands() []CommandDescriptor {
	out := make([]CommandDescriptor, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, r.entries[kind].describe())
	}
	return out
}

// Rebind points a registered kind at a new chord. The canonical
// reply/refresh overlap is tolerated; any other collision introduced by a
// rebind is an error, since it would make dispatch ambiguous.
func (r *Registry) Rebind(kind ActionKind, chord Chord) error {
	e, ok := r.entries[kind]
	if !ok {
		return fmt.Errorf("rebind %v: action not registered", kind)
	}
	for _, other := range r.entries {
		if other.kind == kind || other.chord != chord {
			continue
		}
		if canonicalOverlap(kind, other.kind) && chord == ChordFor(kind) {
			continue
		}
		return fmt.Errorf("rebind %v to %s: chord already bound to %v", kind, chord, other.kind)
	}
	e.chord = chord
	return nil
}

// canonicalOverlap reports whether two kinds are allowed to share a
// chord. Only the documented reply/refresh pair qualifies.
func canonicalOverlap(a, b ActionKind) bool {
	return (a == ActionReply && b == ActionRefresh) || (a == ActionRefresh && b == ActionReply)
}

func (e *registration) describe() CommandDescriptor {
	return CommandDescriptor{Chord: e.chord, Label: e.label, Handler: e.key}
}
