package core

import (
	"fmt"
	"strconv"
)

// TabDescriptor describes one tab in the host container. Position in the
// slice is the tab's identity; there is no separate ID.
type TabDescriptor struct {
	Title string
}

// HandlerKey is an opaque token correlating a command descriptor with the
// action that fires when the command is triggered.
type HandlerKey string

// TabHandlerKey returns the handler key for the digit command that jumps
// to tab index i.
func TabHandlerKey(i int) HandlerKey {
	return HandlerKey("tab:" + strconv.Itoa(i))
}

// CommandDescriptor is one invocable keyboard shortcut. Immutable once
// constructed; command lists are rebuilt on every query, never cached.
type CommandDescriptor struct {
	Chord   Chord
	Label   string
	Handler HandlerKey
}

// TabHost is the capability surface the selector needs from a tab
// container. ui.Scaffold implements it; tests supply fakes.
type TabHost interface {
	// VisibleTabs returns the tabs currently shown, in display order.
	VisibleTabs() []TabDescriptor
	// ConfiguredTabCount returns the total number of configured tabs.
	ConfiguredTabCount() int
	// IsModalActive reports whether a modal overlay currently owns input.
	IsModalActive() bool
	// SelectedTab returns the zero-based index of the active tab.
	SelectedTab() int
	// SetSelectedTab activates the tab at index. Out-of-range indices are
	// the host's business to ignore.
	SetSelectedTab(index int)
}

// Digit shortcuts stop at nine tabs; there is no wraparound or secondary
// chord for the rest.
const maxDigitCommands = 9

// Selector derives digit-chord jump commands from a tab host.
type Selector struct {
	host TabHost
}

func NewSelector(host TabHost) *Selector {
	return &Selector{host: host}
}

// Commands returns the currently available tab-jump commands: one
// descriptor per visible tab, capped at nine, with chord primary+digit
// (position+1) and the tab title as label. The result reflects the host's
// state at call time — tab count and modal state change between calls, so
// nothing is cached. While a modal owns input the list is empty.
//
// Panics when the host shows fewer tabs than it has configured: hiding
// tabs behind an overflow list would silently misnumber the shortcuts,
// so that configuration is rejected outright.
func (s *Selector) Commands() []CommandDescriptor {
	tabs := s.host.VisibleTabs()
	if got, want := len(tabs), s.host.ConfiguredTabCount(); got != want {
		panic(fmt.Sprintf("core: %d of %d tabs visible; digit shortcuts require every configured tab on screen", got, want))
	}
	if s.host.IsModalActive() {
		return nil
	}

	n := min(len(tabs), maxDigitCommands)
	cmds := make([]CommandDescriptor, 0, n)
	for i := range n {
		cmds = append(cmds, CommandDescriptor{
			Chord:   Chord{Mods: ModPrimary, Trigger: RuneTrigger(rune('1' + i))},
			Label:   tabs[i].Title,
			Handler: TabHandlerKey(i),
		})
	}
	return cmds
}

// TabIndexForDigit maps '1'..'9' to a zero-based tab index. ok is false
// for anything else, including '0' — not an error, the caller just
// ignores the event. No bounds check against the current tab count
// happens here; the count may have changed since the command list was
// built, so range guarding is the host's job.
func TabIndexForDigit(r rune) (index int, ok bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// Activate resolves a digit trigger and selects the matching tab on the
// host. Non-digits and digits beyond the current visible count are
// ignored. Reports whether a selection happened.
func (s *Selector) Activate(r rune) bool {
	i, ok := TabIndexForDigit(r)
	if !ok {
		return false
	}
	if i >= len(s.host.VisibleTabs()) {
		return false
	}
	s.host.SetSelectedTab(i)
	return true
}
