package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tasklist/internal/mock"
	"github.com/MKhiriev/go-tasklist/internal/validators"
	"github.com/MKhiriev/go-tasklist/models"
)

func newTestValidationSvc(t *testing.T, ctrl *gomock.Controller) (OrganizationService, *mock.MockOrganizationService) {
	t.Helper()
	inner := mock.NewMockOrganizationService(ctrl)
	return NewOrganizationValidationService().Wrap(inner), inner
}

func TestOrganizationValidationService_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidationSvc(t, ctrl)
	ctx := context.Background()

	inner.EXPECT().ListOrganizations(gomock.Any()).Return([]models.Organization{{Name: "A"}}, nil)
	inner.EXPECT().CreateOrganization(gomock.Any()).Return(models.Organization{Name: "org-1"}, nil)

	list, err := svc.ListOrganizations(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	created, err := svc.CreateOrganization(ctx)
	require.NoError(t, err)
	assert.Equal(t, "org-1", created.Name)
}

func TestOrganizationValidationService_ActivateOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidationSvc(t, ctrl)
	ctx := context.Background()

	inner.EXPECT().ActivateOrganization(gomock.Any(), "acme").Return(nil)
	require.NoError(t, svc.ActivateOrganization(ctx, "acme"))

	// пустое имя до inner не доходит
	err := svc.ActivateOrganization(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyName)
}

func TestOrganizationValidationService_UpdateOrganization(t *testing.T) {
	tests := []struct {
		name    string
		oldName string
		org     models.Organization
		wantErr error
	}{
		{name: "valid rename", oldName: "A", org: models.Organization{Name: "B", Users: []string{"alice"}}},
		{name: "empty new name", oldName: "A", org: models.Organization{Name: ""}, wantErr: validators.ErrEmptyName},
		{name: "empty old name", oldName: "", org: models.Organization{Name: "B"}, wantErr: validators.ErrEmptyOldName},
		{name: "long name", oldName: "A", org: models.Organization{Name: strings.Repeat("x", 65)}, wantErr: validators.ErrNameTooLong},
		{name: "duplicate group", oldName: "A", org: models.Organization{Name: "A", Groups: []string{"g", "g"}}, wantErr: validators.ErrDuplicateListEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, inner := newTestValidationSvc(t, ctrl)

			if tt.wantErr == nil {
				want := tt.org
				want.OldName = tt.oldName
				inner.EXPECT().UpdateOrganization(gomock.Any(), tt.oldName, want).Return(nil)
			}

			err := svc.UpdateOrganization(context.Background(), tt.oldName, tt.org)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
