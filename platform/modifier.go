// Package platform resolves the platform-conventional primary shortcut
// modifier to a concrete terminal key-event name and a display glyph.
// Nothing else in the repository hard-codes either; core and ui go
// through these two calls (or a config override layered on top).
package platform

// PrimaryKeyName returns the key-event prefix terminals report for the
// primary shortcut modifier. macOS terminals deliver Option as alt, so
// the event name is the same on every platform; only the glyph differs.
func PrimaryKeyName() string { return "alt" }
