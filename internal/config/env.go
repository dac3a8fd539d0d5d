// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the variables named by the env and envPrefix tags of
// [StructuredConfig]. A non-nil environ replaces the process environment.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
