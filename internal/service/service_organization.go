package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/store"
	"github.com/MKhiriev/go-tasklist/internal/utils"
	"github.com/MKhiriev/go-tasklist/models"
)

const (
	organizationNamePrefix = "org"
	maxNameAttempts        = 5
)

type nameGenerator interface {
	Generate() string
}

type organizationService struct {
	repository store.OrganizationRepository
	names      nameGenerator
	logger     *logger.Logger
}

func NewOrganizationService(repository store.OrganizationRepository, logger *logger.Logger) OrganizationService {
	return &organizationService{
		repository: repository,
		names:      utils.NewNameGenerator(organizationNamePrefix),
		logger:     logger,
	}
}

func (s *organizationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	return s.repository.ListOrganizations(ctx)
}

// CreateOrganization tries up to maxNameAttempts generated names before
// giving up with ErrNameGenerationFailed.
func (s *organizationService) CreateOrganization(ctx context.Context) (models.Organization, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= maxNameAttempts; attempt++ {
		name := s.names.Generate()

		created, err := s.repository.CreateOrganization(ctx, models.Organization{Name: name})
		if errors.Is(err, store.ErrOrganizationAlreadyExists) {
			log.Warn().Str("name", name).Int("attempt", attempt).Msg("generated organization name is taken")
			continue
		}
		if err != nil {
			return models.Organization{}, err
		}

		log.Info().Str("name", created.Name).Str("by", actor(ctx)).Msg("organization created")
		return created, nil
	}

	return models.Organization{}, fmt.Errorf("%w after %d attempts", ErrNameGenerationFailed, maxNameAttempts)
}

func (s *organizationService) ActivateOrganization(ctx context.Context, name string) error {
	if err := s.repository.ActivateOrganization(ctx, name); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("name", name).Str("by", actor(ctx)).Msg("organization activated")
	return nil
}

func (s *organizationService) UpdateOrganization(ctx context.Context, oldName string, org models.Organization) error {
	if err := s.repository.UpdateOrganization(ctx, oldName, org); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("old_name", oldName).
		Str("name", org.Name).
		Str("by", actor(ctx)).
		Msg("organization updated")
	return nil
}

// actor is the username the request was authenticated with, "unknown" for
// calls made outside an authenticated request.
func actor(ctx context.Context) string {
	if username, ok := utils.GetUsernameFromContext(ctx); ok {
		return username
	}
	return "unknown"
}
