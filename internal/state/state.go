package state

import (
	"slices"

	"github.com/MKhiriev/go-tasklist/models"
)

// Status is the lifecycle status of the organization view.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the synchronization state of the organization collection.
type State struct {
	Items        []models.Organization
	Status       Status
	ErrorMessage string

	// SilentError is the last background refresh failure. It is never shown
	// in place of ErrorMessage.
	SilentError string
}

// Clone returns a copy of s that shares no memory with it.
func (s State) Clone() State {
	s.Items = slices.Clone(s.Items)
	return s
}

// Reduce returns the state that results from applying e to s. It never
// mutates s. Unknown events leave the state unchanged.
func Reduce(s State, e Event) State {
	next := s.Clone()

	switch ev := e.(type) {
	case LoadStart:
		next.Status = StatusLoading
		next.ErrorMessage = ""
	case LoadSuccess:
		next.Items = slices.Clone(ev.Items)
		next.Status = StatusIdle
	case ItemAdded:
		next.Items = append(next.Items, ev.Item)
		next.Status = StatusIdle
	case Fail:
		next.Status = StatusError
		next.ErrorMessage = ev.Message
	case SilentFail:
		if next.Status == StatusLoading {
			next.Status = StatusIdle
		}
		next.SilentError = ev.Message
	}

	return next
}
