package core

import "fmt"

// ChordFor returns the canonical chord for an action kind. The mapping is
// total over the closed ActionKind set and deterministic; it never
// allocates beyond the returned value and has no failure mode.
//
// Reply and Refresh ship with the same chord (primary + 'r'). The two
// actions do not coexist in one context, so the overlap is deliberate and
// asserted by tests; Registry.Rebind tolerates exactly this pair.
func ChordFor(kind ActionKind) Chord {
	switch kind {
	case ActionCancel:
		// The one catalog entry without a modifier.
		return Chord{Trigger: KeyTrigger(KeyEscape)}
	case ActionClose:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('w')}
	case ActionDone:
		return Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyEnter)}
	case ActionSave:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('s')}
	case ActionShare:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('i')}
	case ActionEdit:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('e')}
	case ActionNew:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('n')}
	case ActionReply:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('r')}
	case ActionRefresh:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('r')}
	case ActionBookmarks:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('b')}
	case ActionSearch:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('f')}
	case ActionDelete:
		return Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyBackspace)}
	case ActionToday:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('t')}
	case ActionZoomIn:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('=')}
	case ActionZoomOut:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('-')}
	case ActionZoomActualSize:
		return Chord{Mods: ModPrimary, Trigger: RuneTrigger('0')}
	case ActionRewind:
		return Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyLeft)}
	case ActionFastForward:
		return Chord{Mods: ModPrimary, Trigger: KeyTrigger(KeyRight)}
	}
	panic(fmt.Sprintf("core: no chord for %v", kind))
}
