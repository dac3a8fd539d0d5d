package client

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/internal/service"
)

type App struct {
	services *service.ClientServices
	ui       UI
	storage  io.Closer
	logger   *logger.Logger
}

// NewApp wires the services and the UI. storage is closed when Run returns;
// it may be nil.
func NewApp(services *service.ClientServices, ui UI, storage io.Closer, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNotConfigured
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		services: services,
		ui:       ui,
		storage:  storage,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		a.logger.WithContext(context.Background()),
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.closeStorage()

	info := a.services.AppInfoService.GetBuildInfo(ctx)
	a.logger.Info().
		Str("version", info.Version).
		Int("notes", len(a.services.NoteService.List(ctx))).
		Msg("client started")

	err := a.ui.MainLoop(ctx)
	if err != nil && ctx.Err() != nil {
		a.logger.Info().Msg("client stopped by signal")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) closeStorage() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.closeStorage").Msg("failed to close local storage")
	}
}
