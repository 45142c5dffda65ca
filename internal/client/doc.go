// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the state container, the background refresh worker and the
// terminal UI as one process lifecycle: all of them stop when the UI exits
// or the process receives a termination signal.
package client
