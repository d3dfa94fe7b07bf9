package ui

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// QuickJump is a one-line prompt for switching tabs by title instead of
// digit. While it has focus the scaffold treats it as a modal, so digit
// chords stay quiet and typed digits land in the input.
type QuickJump struct {
	input  textinput.Model
	active bool
}

func NewQuickJump() *QuickJump {
	ti := textinput.New()
	ti.Prompt = "" // glyph prefix rendered by View
	ti.Placeholder = "jump to tab…"
	ti.CharLimit = 64
	ti.Width = 40
	return &QuickJump{input: ti}
}

func (q *QuickJump) Active() bool { return q.active }

func (q *QuickJump) Activate() tea.Cmd {
	q.active = true
	q.input.SetValue("")
	q.input.Focus()
	return textinput.Blink
}

func (q *QuickJump) Deactivate() {
	q.active = false
	q.input.Blur()
}

func (q *QuickJump) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return cmd
}

func (q *QuickJump) Value() string {
	return q.input.Value()
}

// BestMatch picks the tab whose title best matches the query:
// case-insensitive prefix and substring hits win outright, otherwise the
// smallest edit distance within half the title length. ok is false for an
// empty query or when nothing comes close — the jump is then a no-op.
func (q *QuickJump) BestMatch(titles []string) (index int, ok bool) {
	query := strings.ToLower(strings.TrimSpace(q.input.Value()))
	if query == "" {
		return 0, false
	}

	for i, title := range titles {
		if strings.HasPrefix(strings.ToLower(title), query) {
			return i, true
		}
	}
	for i, title := range titles {
		if strings.Contains(strings.ToLower(title), query) {
			return i, true
		}
	}

	best, bestDist := 0, -1
	for i, title := range titles {
		d := levenshtein.ComputeDistance(query, strings.ToLower(title))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist < 0 || best >= len(titles) {
		return 0, false
	}
	// A distance beyond half the title length is noise, not a typo.
	if bestDist > len([]rune(titles[best]))/2 {
		return 0, false
	}
	return best, true
}

func (q *QuickJump) View() string {
	return "❯ " + q.input.View()
}
