// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// notAvailable is shown for build fields that were not injected by ldflags.
const notAvailable = "N/A"

// BuildInfo carries the version metadata injected into the client binary at
// link time. It is printed on startup and shown in the TUI about window.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Normalized returns a copy of b where every blank field is replaced by "N/A".
func (b BuildInfo) Normalized() BuildInfo {
	return BuildInfo{
		Version: orNA(b.Version),
		Date:    orNA(b.Date),
		Commit:  orNA(b.Commit),
	}
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return strings.TrimSpace(v)
}
