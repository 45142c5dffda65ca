// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DefaultServerRequestTimeout is used when SERVER_REQUEST_TIMEOUT is unset.
const DefaultServerRequestTimeout = 30 * time.Second

// ServerConfig is the organization API configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Storage DB
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Storage: DB{DSN: cfg.Storage.DB.DSN},
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}

	return serverCfg
}
