package store

import (
	"context"

	"github.com/MKhiriev/go-tasklist/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// OrganizationSnapshotRepository keeps the last organization list the client
// received so the admin screen can start offline.
type OrganizationSnapshotRepository interface {
	// LoadOrganizations returns the stored snapshot in the order it was saved.
	// An empty cache yields an empty slice and no error.
	LoadOrganizations(ctx context.Context) ([]models.Organization, error)
	// ReplaceOrganizations atomically swaps the stored snapshot for items.
	ReplaceOrganizations(ctx context.Context, items []models.Organization) error
}
