// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client-side view of the organization collection.
//
// The view is a [State] value that changes only by reducing [Event] values
// through [Reduce]. A [Container] owns the current state: producers send
// events on the channel returned by [Container.Events], [Container.Run]
// applies them one at a time in arrival order, and subscribers receive the
// resulting states.
package state
