package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"switchboard/core"
)

// KeyMap holds the fixed key bindings for the scaffold. Digit tab
// bindings are not part of it — they depend on the live tab set and are
// rederived from the selector on every key event.
type KeyMap struct {
	SwitchTabRight key.Binding
	SwitchTabLeft  key.Binding
	ToggleOverlay  key.Binding
	QuickJump      key.Binding
	Quit           key.Binding
}

func newKeyMap() *KeyMap {
	return &KeyMap{
		SwitchTabRight: key.NewBinding(
			key.WithKeys("ctrl+right", "]"),
			key.WithHelp("ctrl+→/]", "next tab"),
		),
		SwitchTabLeft: key.NewBinding(
			key.WithKeys("ctrl+left", "["),
			key.WithHelp("ctrl+←/[", "previous tab"),
		),
		ToggleOverlay: key.NewBinding(
			key.WithKeys("f1", "?"),
			key.WithHelp("?", "shortcuts"),
		),
		QuickJump: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "jump to tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// commandBinding converts a command descriptor into a bubbles key binding
// using the given primary-modifier prefix. Built fresh per use so the
// bindings always reflect the descriptor they came from.
func commandBinding(cmd core.CommandDescriptor, primary string) key.Binding {
	name := cmd.Chord.KeyName(primary)
	return key.NewBinding(
		key.WithKeys(name),
		key.WithHelp(name, cmd.Label),
	)
}

// tabBindings converts the selector's current digit commands into key
// bindings, one per visible tab (capped at nine by the selector).
func tabBindings(cmds []core.CommandDescriptor, primary string) []key.Binding {
	out := make([]key.Binding, 0, len(cmds))
	for i, cmd := range cmds {
		b := commandBinding(cmd, primary)
		if cmd.Label == "" {
			b.SetHelp(cmd.Chord.KeyName(primary), fmt.Sprintf("tab %d", i+1))
		}
		out = append(out, b)
	}
	return out
}
