// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Organization is a tenant of the tasklist. It is identified by its Name,
// which is mutable: OldName keeps the key the server currently knows the
// organization by, so a rename is sent as an update addressed to OldName.
type Organization struct {
	// Name is the natural key of the organization.
	Name string `json:"name"`

	// OldName is the key the organization was loaded with. Update and
	// activation calls are addressed by this value.
	OldName string `json:"oldname,omitempty"`

	// Active reports whether this organization is the one the tasklist
	// currently works with. At most one organization is active.
	Active bool `json:"active,omitempty"`

	// Description is a free-form human readable description.
	Description string `json:"description,omitempty"`

	// Groups lists the candidate groups defined for the organization.
	Groups []string `json:"groups,omitempty"`

	// Users lists usernames that belong to the organization.
	Users []string `json:"users,omitempty"`
}

// Key returns the identity the server knows the organization by: OldName
// when it is set, Name otherwise.
func (o Organization) Key() string {
	if o.OldName != "" {
		return o.OldName
	}
	return o.Name
}

// Loaded returns a copy of o prepared for editing: OldName is reset to the
// current Name so a later rename is addressed to the stored key.
func (o Organization) Loaded() Organization {
	o.OldName = o.Name
	return o
}
