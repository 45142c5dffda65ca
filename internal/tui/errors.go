// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-tasklist/internal/adapter"

// humanizeFailure turns a Fail event message into text for the status line.
func humanizeFailure(message string) string {
	if message == adapter.NetworkFailureMessage {
		return "Отсутствует сеть или Сервер недоступен"
	}
	return message
}

// humanizeError is humanizeFailure for errors returned by services.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	return humanizeFailure(adapter.FailureMessage(err))
}
