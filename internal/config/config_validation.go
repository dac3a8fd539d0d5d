// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Backend-specific rules are
// enforced on the client view, so only cross-cutting values are checked here.
func (cfg *StructuredConfig) validate() error {
	if cfg.UI.PreviewWords < 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.Key) == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Backend {
	case BackendSQLite:
		if cfg.Storage.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendFile:
		if cfg.Storage.FilePath == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.UI.PreviewWords <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
