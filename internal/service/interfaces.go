package service

import (
	"context"

	"github.com/MKhiriev/go-tasklist/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=OrganizationServiceWrapper

// OrganizationService implements the organization API.
type OrganizationService interface {
	ListOrganizations(ctx context.Context) ([]models.Organization, error)

	// CreateOrganization stores a new empty organization under a generated
	// unique name and returns it.
	CreateOrganization(ctx context.Context) (models.Organization, error)

	// ActivateOrganization makes the named organization the only active one.
	ActivateOrganization(ctx context.Context, name string) error

	// UpdateOrganization replaces the organization stored under oldName.
	UpdateOrganization(ctx context.Context, oldName string, org models.Organization) error
}

// OrganizationServiceWrapper defines middleware composition for OrganizationService.
// Implementations wrap an existing OrganizationService to add behavior such as
// logging or validating.
type OrganizationServiceWrapper interface {
	Wrap(OrganizationService) OrganizationService // returns a decorated OrganizationService applying additional behavior
}
