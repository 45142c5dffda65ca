package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/models"
	"github.com/go-resty/resty/v2"
)

type httpTaskAdapter struct {
	*httpAdapter
}

// NewHTTPTaskAdapter constructs the HTTP implementation of [TaskAdapter].
func NewHTTPTaskAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (TaskAdapter, error) {
	base, err := newHTTPAdapter(adapterCfg, tokens, logger)
	if err != nil {
		return nil, err
	}

	return &httpTaskAdapter{httpAdapter: base}, nil
}

func (h *httpTaskAdapter) ClaimTask(ctx context.Context, taskID string) (models.Task, error) {
	return h.changeAssignment(ctx, "claim task", taskID, "/tasks/{id}/claim")
}

func (h *httpTaskAdapter) UnclaimTask(ctx context.Context, taskID string) (models.Task, error) {
	return h.changeAssignment(ctx, "unclaim task", taskID, "/tasks/{id}/unclaim")
}

func (h *httpTaskAdapter) changeAssignment(ctx context.Context, op, taskID, path string) (models.Task, error) {
	req := h.authedRequest(ctx).SetPathParam("id", taskID)

	resp, err := h.do(op, req, resty.MethodPost, path)
	if err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode task: %w", err)
	}

	return task, nil
}
