// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body returned by the API with every non-2xx
// answer. Clients show Message to the user as is.
type ErrorResponse struct {
	Message string `json:"message"`
}
