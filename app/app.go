package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"switchboard/config"
	"switchboard/ui"
)

// Application holds all wired dependencies and manages the application lifecycle.
type Application struct {
	Config   config.Config
	Scaffold *ui.Scaffold
	Program  *tea.Program
}

// Run starts the application and blocks until it exits. The context was
// already wired into the program at bootstrap; cancelling it tears the
// UI down.
func (a *Application) Run(_ context.Context) error {
	if _, err := a.Program.Run(); err != nil {
		return err
	}
	return nil
}
