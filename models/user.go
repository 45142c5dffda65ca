// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the authenticated tasklist user as seen by the client.
type User struct {
	// Username is the login name. Task assignees are compared against it.
	Username string `json:"username"`

	// Name is the display name, if the token carries one.
	Name string `json:"name,omitempty"`

	// Groups are the groups the user belongs to.
	Groups []string `json:"groups,omitempty"`
}
