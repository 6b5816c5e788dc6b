package client

import (
	"context"
	"fmt"

	"github.com/vparshin/go-note-keeper/internal/adapter"
	"github.com/vparshin/go-note-keeper/internal/config"
	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/service"
	"github.com/vparshin/go-note-keeper/internal/tui"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	svcs := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{cfg: cfg, services: svcs, tui: ui, logger: log}, nil
}

// Run implements [Client]. It performs the initial snapshot load, launches
// the background refresh job, and hands control to the terminal UI until
// the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	// initial load failure is not fatal: the UI shows the error and the
	// user can retry with a manual refresh
	if err := a.services.NotesService.Load(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("initial notes load failed")
	}

	a.services.RefreshJob.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	return a.tui.MainLoop(ctx)
}
