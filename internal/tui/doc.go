// Package tui is the terminal interface of the tasklist client.
//
// The organization admin screen renders the state published by the state
// container and drives the organization synchronizer; it never changes the
// organization list itself. The task form shows the claim control of a single
// task and delegates drawing the form to a [FormViewer].
package tui
