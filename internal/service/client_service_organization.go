package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-tasklist/internal/adapter"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/state"
	"github.com/MKhiriev/go-tasklist/internal/store"
	"github.com/MKhiriev/go-tasklist/models"
	"golang.org/x/sync/singleflight"
)

// User reads and background reads are de-duplicated separately, so a user
// read never inherits the silent failure reporting of a background one.
const (
	foregroundFlight = "organizations"
	backgroundFlight = "organizations:background"
)

type organizationSynchronizer struct {
	adapter adapter.OrganizationAdapter
	cache   store.OrganizationSnapshotRepository
	events  chan<- state.Event

	refreshInterval time.Duration
	now             func() time.Time

	flights singleflight.Group
	waiting atomic.Int32

	// publishMu orders the generation check and the events of a read
	// against Invalidate.
	publishMu sync.Mutex

	mu         sync.Mutex
	lastFetch  time.Time
	generation uint64

	logger *logger.Logger
}

// NewOrganizationSynchronizer creates a synchronizer that reports to events.
// cache may be nil, in which case nothing is persisted and Restore is a
// no-op. A non-positive refreshInterval disables the read guard.
func NewOrganizationSynchronizer(
	organizationAdapter adapter.OrganizationAdapter,
	cache store.OrganizationSnapshotRepository,
	events chan<- state.Event,
	refreshInterval time.Duration,
	logger *logger.Logger,
) OrganizationSynchronizer {
	return &organizationSynchronizer{
		adapter:         organizationAdapter,
		cache:           cache,
		events:          events,
		refreshInterval: refreshInterval,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *organizationSynchronizer) RequestOrganizations(ctx context.Context) (bool, error) {
	return s.request(ctx, false)
}

func (s *organizationSynchronizer) BackgroundRefresh(ctx context.Context) (bool, error) {
	return s.request(ctx, true)
}

func (s *organizationSynchronizer) ForceRefresh(ctx context.Context) error {
	s.Invalidate()
	_, err := s.request(ctx, false)
	return err
}

// Invalidate waits for a read that is publishing its result, then supersedes
// every read in flight. A superseded read emits nothing, so a LoadStart it
// already emitted stays unresolved until the next foreground read.
func (s *organizationSynchronizer) Invalidate() {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	s.lastFetch = time.Time{}
	s.generation++
	s.mu.Unlock()

	s.flights.Forget(foregroundFlight)
	s.flights.Forget(backgroundFlight)
}

func (s *organizationSynchronizer) CreateOrganization(ctx context.Context) error {
	s.emit(ctx, state.LoadStart{})

	created, err := s.adapter.CreateOrganization(ctx)
	if err != nil {
		s.fail(ctx, "create organization", err, false)
		return fmt.Errorf("create organization: %w", err)
	}

	s.emit(ctx, state.ItemAdded{Item: created})
	s.touch()

	s.logger.Info().Str("organization", created.Name).Msg("organization created")
	return nil
}

func (s *organizationSynchronizer) SetActive(ctx context.Context, org models.Organization) error {
	s.emit(ctx, state.LoadStart{})

	if err := s.adapter.ActivateOrganization(ctx, org.Key()); err != nil {
		s.fail(ctx, "activate organization", err, false)
		return fmt.Errorf("activate organization %q: %w", org.Key(), err)
	}

	s.logger.Info().Str("organization", org.Key()).Msg("organization activated")
	return s.ForceRefresh(ctx)
}

func (s *organizationSynchronizer) Save(ctx context.Context, org models.Organization) error {
	s.emit(ctx, state.LoadStart{})

	if err := s.adapter.UpdateOrganization(ctx, org.Key(), org); err != nil {
		s.fail(ctx, "save organization", err, false)
		return fmt.Errorf("save organization %q: %w", org.Key(), err)
	}

	s.logger.Info().Str("organization", org.Key()).Str("name", org.Name).Msg("organization saved")
	return s.ForceRefresh(ctx)
}

func (s *organizationSynchronizer) Restore(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	items, err := s.cache.LoadOrganizations(ctx)
	if err != nil {
		return fmt.Errorf("load organization snapshot: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	s.emit(ctx, state.LoadSuccess{Items: items})
	s.logger.Debug().Int("items", len(items)).Msg("organization snapshot restored")
	return nil
}

// request runs at most one guarded read per mode at a time; callers arriving
// while a read of the same mode is in flight wait for it and share its
// outcome.
func (s *organizationSynchronizer) request(ctx context.Context, silent bool) (bool, error) {
	key := foregroundFlight
	if silent {
		key = backgroundFlight
	}

	ch := s.flights.DoChan(key, func() (any, error) {
		gen, open := s.guard()
		if !open {
			return false, nil
		}
		return true, s.fetch(ctx, gen, silent)
	})

	waiting := s.waiting.Add(1)
	defer s.waiting.Add(-1)

	select {
	case res := <-ch:
		if res.Shared {
			s.logger.Debug().Str("flight", key).Int32("waiting", waiting).Msg("joined in-flight organization read")
		}
		return res.Val.(bool), res.Err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (s *organizationSynchronizer) fetch(ctx context.Context, gen uint64, silent bool) error {
	if !silent {
		s.emit(ctx, state.LoadStart{})
	}

	items, err := s.adapter.ListOrganizations(ctx)

	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	superseded := gen != s.generation
	if !superseded {
		s.lastFetch = s.now()
	}
	s.mu.Unlock()

	if superseded {
		s.logger.Debug().Bool("silent", silent).Msg("dropping superseded organization read")
		return err
	}

	if err != nil {
		s.fail(ctx, "list organizations", err, silent)
		return fmt.Errorf("list organizations: %w", err)
	}

	s.emit(ctx, state.LoadSuccess{Items: items})
	s.persist(ctx, items)

	return nil
}

// guard reports whether a read may start now, together with the generation
// the read belongs to.
func (s *organizationSynchronizer) guard() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastFetch.IsZero() || s.refreshInterval <= 0 {
		return s.generation, true
	}

	return s.generation, s.now().Sub(s.lastFetch) >= s.refreshInterval
}

func (s *organizationSynchronizer) touch() {
	s.mu.Lock()
	s.lastFetch = s.now()
	s.mu.Unlock()
}

func (s *organizationSynchronizer) persist(ctx context.Context, items []models.Organization) {
	if s.cache == nil {
		return
	}
	if err := s.cache.ReplaceOrganizations(ctx, items); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist organization snapshot")
	}
}

func (s *organizationSynchronizer) fail(ctx context.Context, op string, err error, silent bool) {
	s.logger.Err(err).Str("op", op).Bool("silent", silent).Msg("organization request failed")
	s.emit(ctx, failureEvent(err, silent))
}

func (s *organizationSynchronizer) emit(ctx context.Context, e state.Event) {
	select {
	case s.events <- e:
	case <-ctx.Done():
		s.logger.Debug().Str("event", state.Name(e)).Msg("event dropped, context done")
	}
}
