package state

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-tasklist/internal/logger"
)

// DefaultEventBuffer is the event channel capacity used when NewContainer is
// given a non-positive buffer.
const DefaultEventBuffer = 16

// Container owns the current [State] and applies events to it sequentially.
type Container struct {
	events chan Event

	mu     sync.RWMutex
	state  State
	subs   map[int]chan State
	nextID int

	logger *logger.Logger
}

// NewContainer creates a container in the initial state: no items, idle,
// no error.
func NewContainer(buffer int, logger *logger.Logger) *Container {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}

	return &Container{
		events: make(chan Event, buffer),
		subs:   make(map[int]chan State),
		logger: logger,
	}
}

// Events returns the channel producers send events on. It is never closed.
func (c *Container) Events() chan<- Event {
	return c.events
}

// Run applies events in arrival order until ctx is done. On exit every
// subscription channel is closed.
func (c *Container) Run(ctx context.Context) error {
	defer c.closeSubscriptions()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Msg("state container stopped")
			return nil
		case e := <-c.events:
			c.Apply(e)
		}
	}
}

// Apply reduces e into the current state synchronously, notifies
// subscribers and returns the new state.
func (c *Container) Apply(e Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Reduce(c.state, e)
	c.logger.Debug().
		Str("event", Name(e)).
		Str("status", c.state.Status.String()).
		Int("items", len(c.state.Items)).
		Msg("state event applied")

	for _, ch := range c.subs {
		publish(ch, c.state.Clone())
	}

	return c.state.Clone()
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.Clone()
}

// Subscribe returns a channel that immediately holds the current state and
// then receives every later state. A subscriber that falls behind only sees
// the most recent state. The returned func cancels the subscription.
func (c *Container) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	ch := make(chan State, 1)
	ch <- c.state.Clone()
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()

			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

func (c *Container) closeSubscriptions() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

// publish replaces a pending undelivered state with s.
func publish(ch chan State, s State) {
	for {
		select {
		case ch <- s:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
