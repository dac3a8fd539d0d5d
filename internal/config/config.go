// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Storage backends accepted by [Storage.Backend].
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the notes
// client. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json/yaml: keys used when the config file is decoded.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_" json:"app" yaml:"app"`

	// Storage selects and configures the key-value backing of the note store.
	Storage Storage `envPrefix:"STORAGE_" json:"storage" yaml:"storage"`

	// UI holds presentation settings of the terminal client.
	UI UI `envPrefix:"UI_" json:"ui" yaml:"ui"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// JSONFilePath is the optional path to a configuration file. Despite the
	// historical name both .json and .yaml/.yml files are accepted.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version" yaml:"version"`
}

// Storage groups the configuration for the key-value backing.
type Storage struct {
	// Backend is one of "sqlite", "file" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND" json:"backend" yaml:"backend"`

	// Key is the single key under which the serialized note array lives.
	// Env: STORAGE_KEY
	Key string `env:"KEY" json:"key" yaml:"key"`

	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_" json:"db" yaml:"db"`

	// File holds the JSON-file backing settings.
	File File `envPrefix:"FILE_" json:"file" yaml:"file"`
}

// DB holds connection settings for the SQLite backing.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn" yaml:"dsn"`
}

// File holds settings for the JSON-file backing.
type File struct {
	// Path is the location of the JSON document holding all keys.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH" json:"path" yaml:"path"`
}

// UI holds terminal presentation settings.
type UI struct {
	// PreviewWords is the word limit of the collapsed note preview.
	// Env: UI_PREVIEW_WORDS
	PreviewWords int `env:"PREVIEW_WORDS" json:"preview_words" yaml:"preview_words"`
}

// Log holds logger output settings.
type Log struct {
	// File is the path of the client log file. Empty means "logs" next to
	// the executable.
	// Env: LOG_FILE
	File string `env:"FILE" json:"file" yaml:"file"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Backend: BackendSQLite,
			Key:     "pastes",
			DB:      DB{DSN: "notes.db"},
			File:    File{Path: "notes.json"},
		},
		UI: UI{PreviewWords: 50},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}
