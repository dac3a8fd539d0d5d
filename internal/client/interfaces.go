// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client process.
type Client interface {
	// Run blocks until the user quits or the process is signalled.
	Run() error
}

// UI is the interactive front end driven by [App]. MainLoop returns when the
// user quits or ctx is cancelled.
type UI interface {
	MainLoop(ctx context.Context) error
}

var _ Client = (*App)(nil)
