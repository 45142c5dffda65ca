// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the tasklist REST API.
//
// [OrganizationAdapter] covers the organization collection and [TaskAdapter]
// the claim/unclaim calls of a single task. Both are implemented over HTTP
// with resty ([NewHTTPOrganizationAdapter], [NewHTTPTaskAdapter]).
//
// Every failed call returns one of three error classes so callers can decide
// what to show the user, see [FailureMessage]:
//   - [*ServerError] when the server answered with a non-2xx status;
//   - an error matching [ErrNetwork] when the request was sent but no answer came;
//   - [*RequestSetupError] when the request could not be built or sent.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tasklist/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// OrganizationAdapter talks to the organization collection of the API.
type OrganizationAdapter interface {
	// ListOrganizations fetches the full collection: GET /organization.
	ListOrganizations(ctx context.Context) ([]models.Organization, error)

	// CreateOrganization asks the server to create an organization with a
	// generated name and returns the created item: POST /organization.
	CreateOrganization(ctx context.Context) (models.Organization, error)

	// ActivateOrganization makes the organization known as oldName the active
	// one: POST /organization/active/{oldName}.
	ActivateOrganization(ctx context.Context, oldName string) error

	// UpdateOrganization replaces the organization known as oldName with org;
	// a different org.Name renames it: PUT /organization/{oldName}.
	UpdateOrganization(ctx context.Context, oldName string, org models.Organization) error
}

// TaskAdapter changes the assignment of user tasks.
type TaskAdapter interface {
	// ClaimTask assigns the task to the caller: POST /tasks/{id}/claim.
	ClaimTask(ctx context.Context, taskID string) (models.Task, error)

	// UnclaimTask removes the assignee: POST /tasks/{id}/unclaim.
	UnclaimTask(ctx context.Context, taskID string) (models.Task, error)
}

// TokenSource supplies the bearer token attached to every request. An empty
// token sends the request without an Authorization header.
type TokenSource interface {
	Token() string
}
