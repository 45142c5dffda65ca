package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-tasklist/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName        = "name"
	FieldOldName     = "oldname"
	FieldDescription = "description"
	FieldGroups      = "groups"
	FieldUsers       = "users"
)

// Limits enforced on organization fields.
const (
	MaxNameLength        = 64
	MaxDescriptionLength = 1024
)

// OrganizationValidator implements [Validator] for [models.Organization].
type OrganizationValidator struct{}

// NewOrganizationValidator constructs a new OrganizationValidator
// and returns it as the Validator interface.
func NewOrganizationValidator() Validator {
	return &OrganizationValidator{}
}

// Validate checks an organization passed by value or pointer. Without
// fields, name, description, groups and users are validated.
func (v *OrganizationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Organization:
		return v.validateOrganization(ctx, value, fields...)
	case *models.Organization:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateOrganization(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *OrganizationValidator) validateOrganization(_ context.Context, org models.Organization, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldGroups, FieldUsers}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(org.Name, ErrEmptyName); err != nil {
				return err
			}
		case FieldOldName:
			if err := validateName(org.OldName, ErrEmptyOldName); err != nil {
				return err
			}
		case FieldDescription:
			if utf8.RuneCountInString(org.Description) > MaxDescriptionLength {
				return ErrDescriptionTooLong
			}
		case FieldGroups:
			if err := validateList(org.Groups); err != nil {
				return fmt.Errorf("groups: %w", err)
			}
		case FieldUsers:
			if err := validateList(org.Users); err != nil {
				return fmt.Errorf("users: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string, errEmpty error) error {
	if strings.TrimSpace(name) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateList(list []string) error {
	seen := make(map[string]struct{}, len(list))
	for i, entry := range list {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyListEntry, i)
		}
		if _, ok := seen[entry]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateListEntry, entry)
		}
		seen[entry] = struct{}{}
	}
	return nil
}
