package service

import (
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/store"
)

type Services struct {
	OrganizationService OrganizationService
}

// NewServices wires the organization API services. Validation wraps the
// repository-backed service.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		OrganizationService: NewOrganizationValidationService().
			Wrap(NewOrganizationService(storages.OrganizationRepository, logger)),
	}
}
