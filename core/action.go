package core

import "fmt"

// ActionKind enumerates the standard actions the catalog assigns chords
// to. The set is closed: ChordFor is total over it, and the switch there
// panics on anything outside it so an unhandled new kind fails loudly.
type ActionKind int

const (
	ActionCancel ActionKind = iota
	ActionClose
	ActionDone
	ActionSave
	ActionShare
	ActionEdit
	ActionNew
	ActionReply
	ActionRefresh
	ActionBookmarks
	ActionSearch
	ActionDelete
	ActionToday
	ActionZoomIn
	ActionZoomOut
	ActionZoomActualSize
	ActionRewind
	ActionFastForward

	numActionKinds // sentinel, keep last
)

var actionNames = [numActionKinds]string{
	ActionCancel:         "cancel",
	ActionClose:          "close",
	ActionDone:           "done",
	ActionSave:           "save",
	ActionShare:          "share",
	ActionEdit:           "edit",
	ActionNew:            "new",
	ActionReply:          "reply",
	ActionRefresh:        "refresh",
	ActionBookmarks:      "bookmarks",
	ActionSearch:         "search",
	ActionDelete:         "delete",
	ActionToday:          "today",
	ActionZoomIn:         "zoomIn",
	ActionZoomOut:        "zoomOut",
	ActionZoomActualSize: "zoomToActualSize",
	ActionRewind:         "rewind",
	ActionFastForward:    "fastForward",
}

func (k ActionKind) String() string {
	if k < 0 || k >= numActionKinds {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return actionNames[k]
}

// Actions returns every action kind in declaration order.
func Actions() []ActionKind {
	out := make([]ActionKind, 0, numActionKinds)
	for k := ActionKind(0); k < numActionKinds; k++ {
		out = append(out, k)
	}
	return out
}

// ParseAction resolves an action name ("save", "zoomIn", ...) back to its
// kind. Config overrides address actions by these names.
func ParseAction(name string) (ActionKind, error) {
	for k := ActionKind(0); k < numActionKinds; k++ {
		if actionNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}
