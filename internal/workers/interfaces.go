// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers that run alongside the
// HTTP server. It defines the Worker interface and a Workers aggregate that
// runs every worker until the shared context is canceled.
package workers

import "context"

// Worker is implemented by every background worker.
//
// Run blocks until ctx is canceled or the worker fails. Returning nil on
// cancellation is expected; a non-nil error stops the whole application.
//
// Example implementation:
//
//	type tickWorker struct{}
//
//	func (w *tickWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
