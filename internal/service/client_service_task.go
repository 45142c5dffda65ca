package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/adapter"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/models"
)

type clientTaskService struct {
	adapter adapter.TaskAdapter
	auth    ClientAuthService
	logger  *logger.Logger
}

func NewClientTaskService(taskAdapter adapter.TaskAdapter, auth ClientAuthService, logger *logger.Logger) ClientTaskService {
	return &clientTaskService{adapter: taskAdapter, auth: auth, logger: logger}
}

func (s *clientTaskService) Claim(ctx context.Context, task models.Task) (models.Task, error) {
	claimed, err := s.adapter.ClaimTask(ctx, task.ID)
	if err != nil {
		return task, fmt.Errorf("claim task %s: %w", task.ID, err)
	}

	s.logger.Info().Str("task_id", task.ID).Str("assignee", claimed.Assignee).Msg("task claimed")
	return claimed, nil
}

// Unclaim releases task. Only the assignee may do that; for anybody else
// ErrTaskNotClaimable is returned without calling the API.
func (s *clientTaskService) Unclaim(ctx context.Context, task models.Task) (models.Task, error) {
	user, err := s.auth.CurrentUser()
	if err != nil {
		return task, err
	}
	if task.Assigned() && !task.AssignedTo(user.Username) {
		return task, ErrTaskNotClaimable
	}

	unclaimed, err := s.adapter.UnclaimTask(ctx, task.ID)
	if err != nil {
		return task, fmt.Errorf("unclaim task %s: %w", task.ID, err)
	}

	s.logger.Info().Str("task_id", task.ID).Msg("task unclaimed")
	return unclaimed, nil
}

func (s *clientTaskService) ToggleClaim(ctx context.Context, task models.Task) (models.Task, error) {
	if task.Assigned() {
		return s.Unclaim(ctx, task)
	}
	return s.Claim(ctx, task)
}
