package tui

import (
	"github.com/MKhiriev/go-tasklist/internal/state"
	"github.com/MKhiriev/go-tasklist/models"
)

// stateMsg carries a state published by the container. ok is false once the
// subscription is closed.
type stateMsg struct {
	state state.State
	ok    bool
}

// opDoneMsg reports the end of a synchronizer call. Its outcome already
// reached the view through state events; err is only logged.
type opDoneMsg struct {
	op  string
	err error
}

type taskUpdatedMsg struct {
	task models.Task
	err  error
}

type copiedMsg struct {
	name string
	err  error
}

type clearStatusMsg struct{}
