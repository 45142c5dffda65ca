// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to unset client settings.
const (
	DefaultRefreshInterval       = 5 * time.Second
	DefaultRequestTimeout        = 15 * time.Second
	DefaultWorkerRefreshInterval = time.Minute
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Token is the bearer token attached to every API request.
	Token string
	// RefreshInterval is the organization read guard window.
	RefreshInterval time.Duration
	// LogPath is the client log file.
	LogPath string
	// TaskFile is the task opened in the task form; empty hides the form.
	TaskFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the organization API.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// CacheDSN is the SQLite snapshot cache file; empty disables the cache.
	CacheDSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the background refresh runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:           cfg.App.Token,
			RefreshInterval: cfg.App.RefreshInterval,
			LogPath:         cfg.App.LogPath,
			TaskFile:        cfg.App.TaskFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CacheDSN: cfg.Storage.DB.CacheDSN,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if clientCfg.App.RefreshInterval == 0 {
		clientCfg.App.RefreshInterval = DefaultRefreshInterval
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Workers.RefreshInterval == 0 {
		clientCfg.Workers.RefreshInterval = DefaultWorkerRefreshInterval
	}

	return clientCfg
}
