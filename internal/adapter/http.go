package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/utils"
	"github.com/go-resty/resty/v2"
)

type httpAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

func newHTTPAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (*httpAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokens: tokens,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.tokens == nil {
		return req
	}
	if token := strings.TrimSpace(h.tokens.Token()); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do sends req and maps every failure into the adapter error classes.
func (h *httpAdapter) do(op string, req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		err = mapTransportError(op, err)
		h.logger.Debug().Err(err).Str("op", op).Msg("request failed before an answer")
		return nil, err
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("server rejected request")
		return nil, err
	}

	return resp, nil
}
