//go:build darwin

package platform

// PrimaryGlyph is the display glyph for the primary shortcut modifier.
func PrimaryGlyph() string { return "⌥" }
