package state

import "github.com/MKhiriev/go-tasklist/models"

// Event is a discrete state transition request. The set of events is closed:
// only the types declared in this file implement it.
type Event interface {
	eventName() string
}

// LoadStart marks the beginning of a remote operation.
type LoadStart struct{}

// LoadSuccess carries a freshly fetched collection that replaces the items.
type LoadSuccess struct {
	Items []models.Organization
}

// ItemAdded carries the server representation of a created organization.
type ItemAdded struct {
	Item models.Organization
}

// Fail carries the user-facing message of a failed foreground operation.
type Fail struct {
	Message string
}

// SilentFail carries the message of a failed background refresh. It is
// recorded but does not replace what the user currently sees.
type SilentFail struct {
	Message string
}

func (LoadStart) eventName() string   { return "load_start" }
func (LoadSuccess) eventName() string { return "load_success" }
func (ItemAdded) eventName() string   { return "item_added" }
func (Fail) eventName() string        { return "fail" }
func (SilentFail) eventName() string  { return "silent_fail" }

// Name returns a stable identifier of the event kind, used in logs.
func Name(e Event) string {
	if e == nil {
		return "nil"
	}
	return e.eventName()
}
