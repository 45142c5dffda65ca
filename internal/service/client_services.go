package service

import (
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/adapter"
	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/state"
	"github.com/MKhiriev/go-tasklist/internal/store"
)

type ClientServices struct {
	AuthService              ClientAuthService
	OrganizationSynchronizer OrganizationSynchronizer
	TaskService              ClientTaskService
	RefreshJob               ClientRefreshJob
}

// NewClientServices wires the client services. Organization events are sent
// to events, normally the input of the state container.
func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, events chan<- state.Event, logger *logger.Logger) (*ClientServices, error) {
	authSvc := NewClientAuthService(cfg.App, logger)

	organizationAdapter, err := adapter.NewHTTPOrganizationAdapter(cfg.Adapter, authSvc, logger)
	if err != nil {
		return nil, fmt.Errorf("organization adapter: %w", err)
	}
	taskAdapter, err := adapter.NewHTTPTaskAdapter(cfg.Adapter, authSvc, logger)
	if err != nil {
		return nil, fmt.Errorf("task adapter: %w", err)
	}

	var cache store.OrganizationSnapshotRepository
	if storages != nil {
		cache = storages.Snapshots
	}

	synchronizer := NewOrganizationSynchronizer(organizationAdapter, cache, events, cfg.App.RefreshInterval, logger)

	return &ClientServices{
		AuthService:              authSvc,
		OrganizationSynchronizer: synchronizer,
		TaskService:              NewClientTaskService(taskAdapter, authSvc, logger),
		RefreshJob:               NewOrganizationRefreshJob(synchronizer, cfg.Workers.RefreshInterval, logger),
	}, nil
}
