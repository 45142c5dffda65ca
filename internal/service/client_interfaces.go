package service

import (
	"context"

	"github.com/MKhiriev/go-tasklist/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// OrganizationSynchronizer keeps the organization view of the state container
// in step with the API. Every operation reports its progress and outcome as
// state events; the returned errors are informational for the caller.
type OrganizationSynchronizer interface {
	// RequestOrganizations reads the collection unless the previous read
	// finished less than the refresh interval ago. It reports whether a read
	// was performed. Concurrent callers share one read.
	RequestOrganizations(ctx context.Context) (bool, error)

	// CreateOrganization asks the API for a new organization and appends the
	// created item to the view. The list is not re-read.
	CreateOrganization(ctx context.Context) error

	// SetActive makes org the active organization and re-reads the list,
	// bypassing the refresh interval.
	SetActive(ctx context.Context, org models.Organization) error

	// Save stores org under its previous key and re-reads the list,
	// bypassing the refresh interval.
	Save(ctx context.Context, org models.Organization) error

	// Invalidate forgets when the list was last read, so the next
	// RequestOrganizations always reads. A read already in flight is
	// superseded and its result dropped, including the resolution of its
	// LoadStart: callers must follow Invalidate with a foreground read, as
	// ForceRefresh does.
	Invalidate()

	// ForceRefresh is Invalidate followed by RequestOrganizations.
	ForceRefresh(ctx context.Context) error

	// BackgroundRefresh is RequestOrganizations for periodic jobs: it shows
	// no loading state and reports failures as silent.
	BackgroundRefresh(ctx context.Context) (bool, error)

	// Restore publishes the last locally cached list, if any, without
	// counting as a read.
	Restore(ctx context.Context) error
}

// ClientAuthService exposes the authenticated user to the client. Token
// issuance and renewal belong to the external identity provider.
type ClientAuthService interface {
	// Token returns the bearer token attached to API requests.
	Token() string

	// CurrentUser returns the user the token was issued to.
	CurrentUser() (models.User, error)
}

// ClientTaskService changes task assignment on behalf of the current user.
type ClientTaskService interface {
	Claim(ctx context.Context, task models.Task) (models.Task, error)
	Unclaim(ctx context.Context, task models.Task) (models.Task, error)

	// ToggleClaim claims an unassigned task and unclaims an assigned one.
	ToggleClaim(ctx context.Context, task models.Task) (models.Task, error)
}

// ClientRefreshJob periodically refreshes the organization list in the
// background. It satisfies workers.Worker.
type ClientRefreshJob interface {
	Run(ctx context.Context) error
}
