// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"runtime"
	"time"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
)

// MemoryWatchdog periodically samples the Go heap and warns when the heap in
// use exceeds the high-water mark. Merges hold whole documents in memory, so
// this is the first signal of an oversized workload. It never aborts
// requests.
type MemoryWatchdog struct {
	interval      time.Duration
	highWaterMark uint64

	readMemStats func(*runtime.MemStats)
	logger       *logger.Logger
}

func NewMemoryWatchdog(cfg config.Workers, logger *logger.Logger) *MemoryWatchdog {
	return &MemoryWatchdog{
		interval:      cfg.MemoryCheckInterval,
		highWaterMark: cfg.MemoryHighWaterMark,
		readMemStats:  runtime.ReadMemStats,
		logger:        logger,
	}
}

func (m *MemoryWatchdog) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info().
		Dur("interval", m.interval).
		Uint64("high_water_mark", m.highWaterMark).
		Msg("memory watchdog started")

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("memory watchdog stopped")
			return nil
		case <-ticker.C:
			m.check()
		}
	}
}

// check reports whether HeapAlloc, the heapUsed figure of the healthcheck,
// is above the high-water mark.
func (m *MemoryWatchdog) check() bool {
	var stats runtime.MemStats
	m.readMemStats(&stats)

	if m.highWaterMark > 0 && stats.HeapAlloc > m.highWaterMark {
		m.logger.Warn().
			Uint64("heap_alloc", stats.HeapAlloc).
			Uint64("heap_sys", stats.HeapSys).
			Uint64("high_water_mark", m.highWaterMark).
			Msg("heap usage above high-water mark")
		return true
	}

	m.logger.Debug().
		Uint64("heap_alloc", stats.HeapAlloc).
		Uint32("num_gc", stats.NumGC).
		Msg("heap usage")
	return false
}
