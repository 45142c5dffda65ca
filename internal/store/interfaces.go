package store

import (
	"context"

	"github.com/MKhiriev/go-tasklist/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OrganizationRepository persists organizations of the organization API.
//
// Organizations are addressed by name. Implementations return
// [ErrOrganizationNotFound] when the addressed organization does not exist
// and [ErrOrganizationAlreadyExists] when a create or rename collides with an
// existing name.
type OrganizationRepository interface {
	// ListOrganizations returns every organization ordered by name.
	ListOrganizations(ctx context.Context) ([]models.Organization, error)

	// CreateOrganization inserts org and returns the stored row.
	CreateOrganization(ctx context.Context, org models.Organization) (models.Organization, error)

	// ActivateOrganization marks the named organization active and every
	// other organization inactive in a single transaction.
	ActivateOrganization(ctx context.Context, name string) error

	// UpdateOrganization overwrites the organization stored under oldName
	// with org. The name itself may change.
	UpdateOrganization(ctx context.Context, oldName string, org models.Organization) error
}

// ErrorClassificator decides whether a failed database call is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
