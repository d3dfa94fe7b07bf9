package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"switchboard/core"
)

func newCheatSheetRenderer(width int) (*glamour.TermRenderer, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating glamour renderer: %w", err)
	}
	return renderer, nil
}

// CheatSheetPage renders the full action catalog as a markdown table.
// Content depends only on the registry and terminal width, so the
// rendered string is cached until either changes.
type CheatSheetPage struct {
	registry     *core.Registry
	primaryGlyph string
	rtl          bool

	width     int
	rendered  string
	renderErr error
}

func NewCheatSheetPage(registry *core.Registry, primaryGlyph string, rtl bool) *CheatSheetPage {
	return &CheatSheetPage{
		registry:     registry,
		primaryGlyph: primaryGlyph,
		rtl:          rtl,
	}
}

func (p *CheatSheetPage) Init() tea.Cmd {
	return nil
}

func (p *CheatSheetPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width != p.width {
			p.width = msg.Width
			p.render()
		}
	case ActionMsg:
		// A rebind cannot happen at runtime, but an action invocation on
		// this page is a fine moment to refresh a stale render.
		p.render()
	}
	return p, nil
}

func (p *CheatSheetPage) render() {
	renderer, err := newCheatSheetRenderer(p.width)
	if err != nil {
		p.renderErr = err
		return
	}
	out, err := renderer.Render(p.markdown())
	if err != nil {
		p.renderErr = fmt.Errorf("rendering cheat sheet: %w", err)
		return
	}
	p.rendered = out
	p.renderErr = nil
}

func (p *CheatSheetPage) markdown() string {
	var b strings.Builder
	b.WriteString("# Standard Actions\n\n")
	b.WriteString("| Chord | Action |\n")
	b.WriteString("|-------|--------|\n")
	for _, cmd := range p.registry.Commands() {
		v := VisualFor(cmd.Chord, p.primaryGlyph)
		if p.rtl {
			v = v.Mirror()
		}
		fmt.Fprintf(&b, "| %s | %s |\n", v.Glyphs, cmd.Label)
	}
	b.WriteString("\nDigit chords (")
	b.WriteString(p.primaryGlyph)
	b.WriteString("1…9) jump straight to the first nine tabs.\n")
	return b.String()
}

func (p *CheatSheetPage) View() string {
	if p.renderErr != nil {
		return "cheat sheet unavailable: " + p.renderErr.Error()
	}
	if p.rendered == "" {
		return "rendering cheat sheet..."
	}
	return p.rendered
}
