package core

import (
	"fmt"
	"testing"
)

// fakeHost is a minimal TabHost for selector tests.
type fakeHost struct {
	tabs       []TabDescriptor
	configured int
	modal      bool
	selected   int
}

func (h *fakeHost) VisibleTabs() []TabDescriptor { return h.tabs }
func (h *fakeHost) ConfiguredTabCount() int      { return h.configured }
func (h *fakeHost) IsModalActive() bool          { return h.modal }
func (h *fakeHost) SelectedTab() int             { return h.selected }
func (h *fakeHost) SetSelectedTab(i int)         { h.selected = i }

func hostWithTabs(n int) *fakeHost {
	h := &fakeHost{configured: n}
	for i := 0; i < n; i++ {
		h.tabs = append(h.tabs, TabDescriptor{Title: fmt.Sprintf("Tab %d", i)})
	}
	return h
}

func TestCommandsCountAndOrder(t *testing.T) {
	for n := 0; n <= 20; n++ {
		h := hostWithTabs(n)
		cmds := NewSelector(h).Commands()

		want := n
		if want > 9 {
			want = 9
		}
		if len(cmds) != want {
			t.Errorf("n=%d: got %d commands, want %d", n, len(cmds), want)
			continue
		}
		for i, cmd := range cmds {
			wantChord := Chord{Mods: ModPrimary, Trigger: RuneTrigger(rune('1' + i))}
			if cmd.Chord != wantChord {
				t.Errorf("n=%d cmd[%d]: chord = %v, want %v", n, i, cmd.Chord, wantChord)
			}
			if cmd.Label != h.tabs[i].Title {
				t.Errorf("n=%d cmd[%d]: label = %q, want %q", n, i, cmd.Label, h.tabs[i].Title)
			}
			if cmd.Handler != TabHandlerKey(i) {
				t.Errorf("n=%d cmd[%d]: handler = %q, want %q", n, i, cmd.Handler, TabHandlerKey(i))
			}
		}
	}
}

func TestCommandsEmptyWhileModal(t *testing.T) {
	for _, n := range []int{0, 1, 5, 12} {
		h := hostWithTabs(n)
		h.modal = true
		if cmds := NewSelector(h).Commands(); len(cmds) != 0 {
			t.Errorf("n=%d with modal: got %d commands, want 0", n, len(cmds))
		}
	}
}

func TestCommandsPanicsWhenTabsHidden(t *testing.T) {
	h := hostWithTabs(5)
	h.configured = 7 // two tabs behind an overflow list

	defer func() {
		if recover() == nil {
			t.Errorf("Commands did not panic with 5 visible of 7 configured tabs")
		}
	}()
	NewSelector(h).Commands()
}

func TestTabIndexForDigit(t *testing.T) {
	tests := []struct {
		r      rune
		want   int
		wantOK bool
	}{
		{'1', 0, true},
		{'2', 1, true},
		{'9', 8, true},
		{'0', 0, false},
		{'a', 0, false},
		{' ', 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		got, ok := TabIndexForDigit(tt.r)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("TabIndexForDigit(%q) = (%d, %v), want (%d, %v)", tt.r, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCommandsRoundTrip(t *testing.T) {
	for n := 1; n <= 9; n++ {
		h := hostWithTabs(n)
		for pos, cmd := range NewSelector(h).Commands() {
			idx, ok := TabIndexForDigit(cmd.Chord.Trigger.Rune)
			if !ok || idx != pos {
				t.Errorf("n=%d: trigger %q resolved to (%d, %v), want (%d, true)", n, cmd.Chord.Trigger.Rune, idx, ok, pos)
			}
		}
	}
}

func TestCommandsScenario(t *testing.T) {
	h := &fakeHost{
		tabs: []TabDescriptor{
			{Title: "Home"}, {Title: "Search"}, {Title: "Settings"},
		},
		configured: 3,
	}
	cmds := NewSelector(h).Commands()
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	wantLabels := []string{"Home", "Search", "Settings"}
	for i, cmd := range cmds {
		if cmd.Label != wantLabels[i] {
			t.Errorf("cmd[%d] label = %q, want %q", i, cmd.Label, wantLabels[i])
		}
		if got := cmd.Chord.Trigger.Rune; got != rune('1'+i) {
			t.Errorf("cmd[%d] trigger = %q, want %q", i, got, rune('1'+i))
		}
	}
}

func TestCommandsTwelveTabsCapAtNine(t *testing.T) {
	h := hostWithTabs(12)
	cmds := NewSelector(h).Commands()
	if len(cmds) != 9 {
		t.Fatalf("got %d commands, want 9", len(cmds))
	}
	last := cmds[8]
	if last.Label != h.tabs[8].Title {
		t.Errorf("last label = %q, want %q", last.Label, h.tabs[8].Title)
	}
	if last.Chord.Trigger.Rune != '9' {
		t.Errorf("last trigger = %q, want '9'", last.Chord.Trigger.Rune)
	}
}

func TestCommandsReflectHostChanges(t *testing.T) {
	h := hostWithTabs(2)
	sel := NewSelector(h)
	if got := len(sel.Commands()); got != 2 {
		t.Fatalf("got %d commands, want 2", got)
	}

	h.tabs = append(h.tabs, TabDescriptor{Title: "Late"})
	h.configured = 3
	if got := len(sel.Commands()); got != 3 {
		t.Errorf("after adding a tab: got %d commands, want 3", got)
	}

	h.modal = true
	if got := len(sel.Commands()); got != 0 {
		t.Errorf("after presenting modal: got %d commands, want 0", got)
	}
}

func TestActivate(t *testing.T) {
	h := hostWithTabs(3)
	h.selected = 1
	sel := NewSelector(h)

	if !sel.Activate('3') {
		t.Errorf("Activate('3') = false, want true")
	}
	if h.selected != 2 {
		t.Errorf("selected = %d, want 2", h.selected)
	}

	// Out-of-range digit and non-digits leave selection alone.
	for _, r := range []rune{'4', '9', '0', 'x'} {
		if sel.Activate(r) {
			t.Errorf("Activate(%q) = true, want false", r)
		}
		if h.selected != 2 {
			t.Errorf("Activate(%q) moved selection to %d", r, h.selected)
		}
	}
}
