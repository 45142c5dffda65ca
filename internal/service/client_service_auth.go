package service

import (
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/utils"
	"github.com/MKhiriev/go-tasklist/models"
)

type clientAuthService struct {
	token  string
	logger *logger.Logger
}

// NewClientAuthService returns the auth collaborator of the client. The token
// comes from configuration; obtaining and renewing it is the job of the
// identity provider.
func NewClientAuthService(cfg config.ClientApp, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{token: cfg.Token, logger: logger}
}

func (a *clientAuthService) Token() string {
	return a.token
}

func (a *clientAuthService) CurrentUser() (models.User, error) {
	if a.token == "" {
		return models.User{}, ErrNotAuthenticated
	}

	username, err := utils.ParseUsername(a.token)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.CurrentUser").Msg("cannot read username from token")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return models.User{Username: username}, nil
}
