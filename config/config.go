package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"switchboard/core"
	"switchboard/platform"
)

// Theme holds the lipgloss color numbers used by the scaffold chrome.
type Theme struct {
	BorderColor      string `toml:"border_color"`
	ActiveTabColor   string `toml:"active_tab_color"`
	InactiveTabColor string `toml:"inactive_tab_color"`
}

// ShortcutOverride rebinds one catalog action to a user-chosen chord.
// Action is an exact action name ("save", "zoomIn"); Key is a Bubble Tea
// style key name ("ctrl+s", "shift+alt+z").
type ShortcutOverride struct {
	Action string `toml:"action"`
	Key    string `toml:"key"`
}

// Config holds all switchboard configuration values.
type Config struct {
	// PrimaryModifier names the key-event prefix used for the primary
	// shortcut modifier: "alt" or "ctrl". Defaults to the platform value.
	PrimaryModifier string `toml:"primary_modifier"`

	SwitchboardDir string `toml:"switchboard_dir"`

	// RTLLayout mirrors arrow glyphs in shortcut displays for
	// right-to-left locales.
	RTLLayout bool `toml:"rtl_layout"`

	Theme Theme `toml:"theme"`

	// Disabled lists doublestar globs over action names; matching actions
	// are never registered ("zoom*" switches the whole zoom family off).
	Disabled []string `toml:"disabled"`

	Overrides []ShortcutOverride `toml:"overrides"`
}

// DefaultConfig returns a Config with all defaults populated.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		PrimaryModifier: platform.PrimaryKeyName(),
		SwitchboardDir:  filepath.Join(home, ".switchboard"),
		Theme: Theme{
			BorderColor:      "39",
			ActiveTabColor:   "205",
			InactiveTabColor: "245",
		},
	}
}

// ConfigFilePath returns the path to the config file inside SwitchboardDir.
func (c Config) ConfigFilePath() string {
	return filepath.Join(c.SwitchboardDir, "config.toml")
}

// Load loads configuration from the default location
// (~/.switchboard/config.toml), falling back to defaults if the file does
// not exist. Warnings are returned for unrecognized TOML keys (likely typos).
func Load() (Config, []string, error) {
	defaults := DefaultConfig()
	return LoadFrom(defaults.ConfigFilePath(), defaults)
}

// LoadFrom loads configuration from the given path, overlaying TOML values
// onto the provided defaults. If the file does not exist, defaults are
// returned without error (first-run case). If the file exists but is
// malformed, an error is returned. Warnings are returned for unrecognized
// TOML keys.
func LoadFrom(path string, defaults Config) (Config, []string, error) {
	cfg := defaults

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil, nil
		}
		return Config{}, nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if cfg.PrimaryModifier != "alt" && cfg.PrimaryModifier != "ctrl" {
		return Config{}, nil, fmt.Errorf("loading config %s: primary_modifier must be \"alt\" or \"ctrl\", got %q", path, cfg.PrimaryModifier)
	}

	var warnings []string
	for _, key := range meta.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown config key: %s", key))
	}

	return cfg, warnings, nil
}

// EnsureDirs creates SwitchboardDir if it does not exist.
func (c Config) EnsureDirs() error {
	if c.SwitchboardDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.SwitchboardDir, 0700); err != nil {
		return fmt.Errorf("creating directory %s: %w", c.SwitchboardDir, err)
	}
	return nil
}

// Rebind is one expanded override: a single action kind and its new chord.
type Rebind struct {
	Kind  core.ActionKind
	Chord core.Chord
}

// ExpandOverrides parses the override entries into concrete rebinds. An
// unknown action name or unparseable key is an error — almost always a
// typo the user would otherwise hunt for at runtime. Later entries win
// when the same action appears twice.
func (c Config) ExpandOverrides() ([]Rebind, error) {
	var out []Rebind
	byKind := make(map[core.ActionKind]int)

	for _, o := range c.Overrides {
		kind, err := core.ParseAction(o.Action)
		if err != nil {
			return nil, fmt.Errorf("override: %w", err)
		}
		chord, err := core.ParseChord(o.Key, c.PrimaryModifier)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", o.Action, err)
		}
		if i, ok := byKind[kind]; ok {
			out[i].Chord = chord
			continue
		}
		byKind[kind] = len(out)
		out = append(out, Rebind{Kind: kind, Chord: chord})
	}
	return out, nil
}

// DisabledActions resolves the disabled globs against the catalog's
// action names. A glob that matches nothing is an error, same reasoning
// as unknown override names.
func (c Config) DisabledActions() (map[core.ActionKind]bool, error) {
	disabled := make(map[core.ActionKind]bool)
	for _, pattern := range c.Disabled {
		matchedAny := false
		for _, kind := range core.Actions() {
			matched, err := doublestar.Match(pattern, kind.String())
			if err != nil {
				return nil, fmt.Errorf("disabled pattern %q: %w", pattern, err)
			}
			if matched {
				disabled[kind] = true
				matchedAny = true
			}
		}
		if !matchedAny {
			return nil, fmt.Errorf("disabled pattern %q: no action matches", pattern)
		}
	}
	return disabled, nil
}
