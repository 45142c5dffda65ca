// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tasklist/internal/adapter"
	"github.com/MKhiriev/go-tasklist/internal/state"
)

// failureEvent translates an adapter error into the state event that reports
// it: Fail for user-initiated calls, SilentFail for background ones.
func failureEvent(err error, silent bool) state.Event {
	msg := adapter.FailureMessage(err)
	if silent {
		return state.SilentFail{Message: msg}
	}
	return state.Fail{Message: msg}
}
