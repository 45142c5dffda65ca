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

type httpOrganizationAdapter struct {
	*httpAdapter
}

// NewHTTPOrganizationAdapter constructs the HTTP implementation of
// [OrganizationAdapter]. The base URL comes from adapterCfg.HTTPAddress; a
// missing scheme defaults to http. Returns an error if the address is empty
// or does not parse.
func NewHTTPOrganizationAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (OrganizationAdapter, error) {
	base, err := newHTTPAdapter(adapterCfg, tokens, logger)
	if err != nil {
		return nil, err
	}

	return &httpOrganizationAdapter{httpAdapter: base}, nil
}

func (h *httpOrganizationAdapter) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	resp, err := h.do("list organizations", h.authedRequest(ctx), resty.MethodGet, "/organization")
	if err != nil {
		return nil, err
	}

	items := make([]models.Organization, 0)
	if len(resp.Body()) == 0 {
		return items, nil
	}
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode organizations: %w", err)
	}

	return items, nil
}

func (h *httpOrganizationAdapter) CreateOrganization(ctx context.Context) (models.Organization, error) {
	resp, err := h.do("create organization", h.authedRequest(ctx), resty.MethodPost, "/organization")
	if err != nil {
		return models.Organization{}, err
	}

	var created models.Organization
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Organization{}, fmt.Errorf("decode created organization: %w", err)
	}

	return created, nil
}

func (h *httpOrganizationAdapter) ActivateOrganization(ctx context.Context, oldName string) error {
	req := h.authedRequest(ctx).SetPathParam("oldname", oldName)

	_, err := h.do("activate organization", req, resty.MethodPost, "/organization/active/{oldname}")
	return err
}

func (h *httpOrganizationAdapter) UpdateOrganization(ctx context.Context, oldName string, org models.Organization) error {
	req := h.authedRequest(ctx).
		SetPathParam("oldname", oldName).
		SetHeader("Content-Type", "application/json").
		SetBody(org)

	_, err := h.do("update organization", req, resty.MethodPut, "/organization/{oldname}")
	return err
}
