package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"switchboard/config"
	"switchboard/core"
	"switchboard/platform"
	"switchboard/ui"
)

// actionLabels maps catalog actions to the display labels shown in the
// overlay and cheat sheet. Labels live here, not in core: the catalog
// only knows chords, the host decides what to call them.
var actionLabels = map[core.ActionKind]string{
	core.ActionCancel:         "Cancel",
	core.ActionClose:          "Close Tab",
	core.ActionDone:           "Done",
	core.ActionSave:           "Save",
	core.ActionShare:          "Share",
	core.ActionEdit:           "Edit",
	core.ActionNew:            "New",
	core.ActionReply:          "Reply",
	core.ActionRefresh:        "Refresh",
	core.ActionBookmarks:      "Bookmarks",
	core.ActionSearch:         "Find",
	core.ActionDelete:         "Delete",
	core.ActionToday:          "Today",
	core.ActionZoomIn:         "Zoom In",
	core.ActionZoomOut:        "Zoom Out",
	core.ActionZoomActualSize: "Actual Size",
	core.ActionRewind:         "Rewind",
	core.ActionFastForward:    "Fast Forward",
}

// Bootstrap creates and wires all application dependencies.
// Each phase is separate for testability.
func Bootstrap(ctx context.Context) (*Application, error) {
	// 1. Load configuration
	cfg, warnings, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "switchboard: warning: %s\n", w)
	}

	// 2. Build the scaffold: chrome colors, modifier wiring, pages.
	scaffold := configureScaffold(cfg)

	// 3. Populate the action registry from the catalog, honoring the
	// config's disabled globs and chord overrides.
	if err := applyCatalog(scaffold.Registry(), cfg); err != nil {
		return nil, fmt.Errorf("configuring shortcuts: %w", err)
	}

	// 4. Create Bubble Tea program
	program := setupProgram(ctx, scaffold)

	return &Application{
		Config:   cfg,
		Scaffold: scaffold,
		Program:  program,
	}, nil
}

// loadConfig loads configuration from disk and ensures directories exist.
func loadConfig() (config.Config, []string, error) {
	cfg, warnings, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, warnings, nil
}

// primaryGlyph picks the display glyph for the configured modifier. The
// platform glyph only applies to alt; a ctrl override always reads "Ctrl".
func primaryGlyph(cfg config.Config) string {
	if cfg.PrimaryModifier == "ctrl" {
		return "Ctrl"
	}
	return platform.PrimaryGlyph()
}

// configureScaffold builds the scaffold through its setup hook: theme,
// modifier wiring, demo pages, and status bar items.
func configureScaffold(cfg config.Config) *ui.Scaffold {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "unknown"
	} else {
		currentDir = filepath.Base(currentDir)
	}

	return ui.NewScaffold(func(s *ui.Scaffold) {
		s.SetBorderColor(cfg.Theme.BorderColor).
			SetActiveTabBorderColor(cfg.Theme.ActiveTabColor).
			SetInactiveTabBorderColor(cfg.Theme.InactiveTabColor).
			SetStatusItemBorderColor(cfg.Theme.BorderColor).
			SetPrimaryKeyName(cfg.PrimaryModifier).
			SetPrimaryGlyph(primaryGlyph(cfg)).
			SetRTLLayout(cfg.RTLLayout)

		s.AddPage("home", "Home", ui.NewWelcomePage(s, "Home"))
		s.AddPage("browser", "Browser", ui.NewTextPage(s, "Browser"))
		s.AddPage("player", "Player", ui.NewTextPage(s, "Player"))
		s.AddPage("keys", "Keys", ui.NewCheatSheetPage(s.Registry(), primaryGlyph(cfg), cfg.RTLLayout))

		s.AddStatusItem("dir", currentDir)
		s.AddActionableStatusItem("keys", "keys")
	})
}

// applyCatalog registers every non-disabled catalog action with its
// canonical chord, then applies the user's chord overrides.
func applyCatalog(registry *core.Registry, cfg config.Config) error {
	disabled, err := cfg.DisabledActions()
	if err != nil {
		return err
	}
	for _, kind := range core.Actions() {
		if disabled[kind] {
			continue
		}
		registry.Register(kind, actionLabels[kind])
	}

	rebinds, err := cfg.ExpandOverrides()
	if err != nil {
		return err
	}
	for _, r := range rebinds {
		if disabled[r.Kind] {
			return fmt.Errorf("override %q: action is disabled", r.Kind)
		}
		if err := registry.Rebind(r.Kind, r.Chord); err != nil {
			return err
		}
	}
	return nil
}

// setupProgram creates the Bubble Tea program in full-screen mode and
// wires the notifier so goroutines can trigger re-renders.
func setupProgram(ctx context.Context, scaffold *ui.Scaffold) *tea.Program {
	program := tea.NewProgram(scaffold, tea.WithAltScreen(), tea.WithContext(ctx))
	scaffold.GetNotifier().AttachProgram(program)
	return program
}
