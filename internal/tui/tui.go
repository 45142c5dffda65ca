package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/service"
	"github.com/MKhiriev/go-tasklist/internal/state"
	"github.com/MKhiriev/go-tasklist/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	container *state.Container
	viewer    FormViewer
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, container *state.Container, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || container == nil {
		return nil, errors.New("tui needs client services and a state container")
	}

	return &TUI{
		services:  services,
		container: container,
		viewer:    NewReadOnlyFormViewer(),
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the organization admin screen until the user quits or ctx is
// done. A non-nil task adds the task form, reachable with "t".
func (t *TUI) Run(ctx context.Context, task *models.TaskDocument) error {
	updates, unsubscribe := t.container.Subscribe()
	defer unsubscribe()

	root := rootModel{
		organizations: newOrganizationsModel(ctx, t.services.OrganizationSynchronizer, updates,
			t.container.Snapshot(), clipboard.WriteAll, t.logger),
		buildInfo: t.buildInfo,
	}

	if task != nil {
		user, err := t.services.AuthService.CurrentUser()
		if err != nil {
			t.logger.Warn().Err(err).Msg("unknown user, task form is read-only")
		}
		root.task = newTaskFormModel(ctx, t.services.TaskService, t.viewer, *task, user)
		root.hasTask = true
	}

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
