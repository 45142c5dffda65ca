// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-tasklist/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end. Run blocks until the user quits or ctx is
// done; task is nil when no task form should be shown.
type UI interface {
	Run(ctx context.Context, task *models.TaskDocument) error
}
