package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/service"
	"github.com/MKhiriev/go-tasklist/internal/state"
	"github.com/MKhiriev/go-tasklist/internal/workers"
	"github.com/MKhiriev/go-tasklist/models"
	"golang.org/x/sync/errgroup"
)

type App struct {
	services  *service.ClientServices
	container *state.Container
	ui        UI
	workers   *workers.Workers
	task      *models.TaskDocument

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, container *state.Container, ui UI, cfg config.ClientApp, logger *logger.Logger) (*App, error) {
	app := &App{
		services:  services,
		container: container,
		ui:        ui,
		workers:   workers.NewWorkers(services.RefreshJob),
		logger:    logger,
	}

	if cfg.TaskFile != "" {
		task, err := loadTaskDocument(cfg.TaskFile)
		if err != nil {
			return nil, err
		}
		app.task = task
	}

	return app, nil
}

// Run blocks until the UI exits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.container.Run(gCtx)
	})
	g.Go(func() error {
		return a.workers.Run(gCtx)
	})

	// offline start: show the cached list until the first read finishes
	if err := a.services.OrganizationSynchronizer.Restore(gCtx); err != nil {
		a.logger.Warn().Err(err).Msg("restore organization snapshot")
	}

	uiErr := a.ui.Run(gCtx, a.task)
	cancel()

	if err := g.Wait(); err != nil && uiErr == nil {
		return fmt.Errorf("background workers: %w", err)
	}
	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func loadTaskDocument(path string) (*models.TaskDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var doc models.TaskDocument
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode task file %s: %w", path, err)
	}

	return &doc, nil
}
