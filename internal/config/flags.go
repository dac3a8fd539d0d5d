// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses the process command line into a partial config.
//
// Flags:
//
//	-storage backend name: sqlite, file or memory
//	-key storage key holding the notes array
//	-d SQLite DSN
//	-f JSON storage file path
//	-preview-words word limit of collapsed previews
//	-log client log file path
//	-c/-config json or yaml file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		backend      string
		key          string
		databaseDSN  string
		filePath     string
		previewWords int
		logFile      string
		configPath   string
	)

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.StringVar(&backend, "storage", "", "Storage backend: sqlite, file or memory")
	fs.StringVar(&key, "key", "", "Storage key holding the notes array")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&filePath, "f", "", "JSON storage file path")
	fs.IntVar(&previewWords, "preview-words", 0, "Word limit of collapsed note previews")
	fs.StringVar(&logFile, "log", "", "Client log file path")
	fs.StringVar(&configPath, "c", "", "Config file path (json or yaml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Backend: backend,
			Key:     key,
			DB:      DB{DSN: databaseDSN},
			File:    File{Path: filePath},
		},
		UI:           UI{PreviewWords: previewWords},
		Log:          Log{File: logFile},
		JSONFilePath: configPath,
	}, nil
}
