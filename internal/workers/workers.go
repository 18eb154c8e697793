// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured workers. The memory watchdog is enabled
// when its check interval is positive.
func NewWorkers(cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.MemoryCheckInterval > 0 {
		w.workers = append(w.workers, NewMemoryWatchdog(cfg, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first error cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	return g.Wait()
}
