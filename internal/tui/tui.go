// Package tui implements the terminal client: a single bubbletea main loop
// over the note synchronizer with list, create, edit and delete screens.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/service"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// MainLoop runs the interactive note screen until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services)
	_, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return runErr
}
