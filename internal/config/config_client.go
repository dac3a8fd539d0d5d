// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ClientStorage holds the backing settings used by the client store.
type ClientStorage struct {
	// Backend is one of [BackendSQLite], [BackendFile], [BackendMemory].
	Backend string
	// Key is the storage key of the serialized notes array.
	Key string
	// DSN is the SQLite data source name.
	DSN string
	// FilePath is the JSON-file backing location.
	FilePath string
}

// ClientUI holds presentation settings of the terminal client.
type ClientUI struct {
	// PreviewWords is the word limit of collapsed note previews.
	PreviewWords int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is the configured application version, if any.
	Version string
	// Storage contains key-value backing settings.
	Storage ClientStorage
	// UI contains presentation settings.
	UI ClientUI
	// LogFile is the client log file path.
	LogFile string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Version: cfg.App.Version,
		Storage: ClientStorage{
			Backend:  cfg.Storage.Backend,
			Key:      cfg.Storage.Key,
			DSN:      cfg.Storage.DB.DSN,
			FilePath: cfg.Storage.File.Path,
		},
		UI:      ClientUI{PreviewWords: cfg.UI.PreviewWords},
		LogFile: cfg.Log.File,
	}

	return clientCfg, clientCfg.validate()
}
