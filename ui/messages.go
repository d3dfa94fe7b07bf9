package ui

import "switchboard/core"

// TabSelectedMsg announces that the scaffold activated a tab, whether by
// digit chord, quick-jump, or prev/next cycling. Broadcast to all pages.
type TabSelectedMsg struct {
	Index int
	Title string
}

// ActionMsg is delivered to the active page when the chord of a
// registered catalog action is pressed. Handler is the opaque key issued
// by the registry at registration time; pages correlate on it rather
// than on the label.
type ActionMsg struct {
	Kind    core.ActionKind
	Handler core.HandlerKey
	Label   string
}
