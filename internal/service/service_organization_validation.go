package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/validators"
	"github.com/MKhiriev/go-tasklist/models"
)

type OrganizationValidationService struct {
	inner     OrganizationService
	validator validators.Validator
}

func NewOrganizationValidationService() OrganizationServiceWrapper {
	return &OrganizationValidationService{
		validator: validators.NewOrganizationValidator(),
	}
}

func (v *OrganizationValidationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	return v.inner.ListOrganizations(ctx)
}

func (v *OrganizationValidationService) CreateOrganization(ctx context.Context) (models.Organization, error) {
	return v.inner.CreateOrganization(ctx)
}

func (v *OrganizationValidationService) ActivateOrganization(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, models.Organization{Name: name}, validators.FieldName); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ActivateOrganization(ctx, name)
}

func (v *OrganizationValidationService) UpdateOrganization(ctx context.Context, oldName string, org models.Organization) error {
	// the path key is authoritative for OldName
	org.OldName = oldName
	if err := v.validator.Validate(ctx, org,
		validators.FieldOldName,
		validators.FieldName,
		validators.FieldDescription,
		validators.FieldGroups,
		validators.FieldUsers,
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateOrganization(ctx, oldName, org)
}

func (v *OrganizationValidationService) Wrap(wrapper OrganizationService) OrganizationService {
	v.inner = wrapper
	return v
}
