package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-tasklist/internal/service"
	"github.com/MKhiriev/go-tasklist/internal/store"
	"github.com/MKhiriev/go-tasklist/internal/validators"
	"github.com/MKhiriev/go-tasklist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── GET /organization ─────────────────────────────────────────────────────────

func TestListOrganizations_OK(t *testing.T) {
	h, organizations := newTestHandler(t)

	organizations.EXPECT().ListOrganizations(gomock.Any()).Return([]models.Organization{
		{Name: "acme", Active: true},
		{Name: "globex", Users: []string{"demo"}},
	}, nil)

	rec := serve(t, h, http.MethodGet, "/organization", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`[{"name":"acme","active":true},{"name":"globex","users":["demo"]}]`,
		rec.Body.String())
}

func TestListOrganizations_EmptyIsArray(t *testing.T) {
	h, organizations := newTestHandler(t)

	organizations.EXPECT().ListOrganizations(gomock.Any()).Return(nil, nil)

	rec := serve(t, h, http.MethodGet, "/organization", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListOrganizations_StoreFailureHidesDetails(t *testing.T) {
	h, organizations := newTestHandler(t)

	organizations.EXPECT().ListOrganizations(gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection reset", store.ErrExecutingQuery))

	rec := serve(t, h, http.MethodGet, "/organization", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
}

// ── POST /organization ────────────────────────────────────────────────────────

func TestCreateOrganization_Created(t *testing.T) {
	h, organizations := newTestHandler(t)

	organizations.EXPECT().CreateOrganization(gomock.Any()).
		Return(models.Organization{Name: "org-1a2b3c4d"}, nil)

	rec := serve(t, h, http.MethodPost, "/organization", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"name":"org-1a2b3c4d"}`, rec.Body.String())
}

func TestCreateOrganization_NameGenerationFailed(t *testing.T) {
	h, organizations := newTestHandler(t)

	organizations.EXPECT().CreateOrganization(gomock.Any()).
		Return(models.Organization{}, service.ErrNameGenerationFailed)

	rec := serve(t, h, http.MethodPost, "/organization", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ── POST /organization/active/{oldname} ───────────────────────────────────────

func TestActivateOrganization_NoContent(t *testing.T) {
	h, organizations := newTestHandler(t)

	organizations.EXPECT().ActivateOrganization(gomock.Any(), "acme").Return(nil)

	rec := serve(t, h, http.MethodPost, "/organization/active/acme", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestActivateOrganization_EscapedName(t *testing.T) {
	h, organizations := newTestHandler(t)

	organizations.EXPECT().ActivateOrganization(gomock.Any(), "acme/east").Return(nil)

	rec := serve(t, h, http.MethodPost, "/organization/active/acme%2Feast", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestActivateOrganization_NotFound(t *testing.T) {
	h, organizations := newTestHandler(t)

	organizations.EXPECT().ActivateOrganization(gomock.Any(), "missing").
		Return(fmt.Errorf("activate: %w", store.ErrOrganizationNotFound))

	rec := serve(t, h, http.MethodPost, "/organization/active/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"activate: organization not found"}`, rec.Body.String())
}

// ── PUT /organization/{oldname} ───────────────────────────────────────────────

func TestUpdateOrganization_Rename(t *testing.T) {
	h, organizations := newTestHandler(t)

	want := models.Organization{
		Name:        "acme-corp",
		OldName:     "acme",
		Description: "renamed",
		Groups:      []string{"admins"},
	}
	organizations.EXPECT().UpdateOrganization(gomock.Any(), "acme", want).Return(nil)

	rec := serve(t, h, http.MethodPut, "/organization/acme",
		jsonBody(`{"name":"acme-corp","oldname":"acme","description":"renamed","groups":["admins"]}`))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateOrganization_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodPut, "/organization/acme", jsonBody(`{"name":`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidJSON.Error())
}

func TestUpdateOrganization_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "validation",
			err:    fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyName),
			status: http.StatusBadRequest,
		},
		{name: "not found", err: store.ErrOrganizationNotFound, status: http.StatusNotFound},
		{name: "duplicate name", err: store.ErrOrganizationAlreadyExists, status: http.StatusConflict},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, organizations := newTestHandler(t)
			organizations.EXPECT().UpdateOrganization(gomock.Any(), "acme", gomock.Any()).Return(tt.err)

			rec := serve(t, h, http.MethodPut, "/organization/acme", jsonBody(`{"name":"acme"}`))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

// ── status mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrInvalidPathParameter))
	assert.Equal(t, http.StatusNotFound, statusFromError(fmt.Errorf("x: %w", store.ErrOrganizationNotFound)))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(store.ErrScanningRows))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("unknown")))
}
