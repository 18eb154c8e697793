// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"runtime"
	"time"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/models"
)

const statusHealthy = "healthy"

type healthService struct {
	startedAt   time.Time
	environment string
	version     string
	now         func() time.Time

	logger *logger.Logger
}

// NewHealthService returns a HealthService whose uptime counts from now.
// The version is taken from the config, falling back to the build version.
func NewHealthService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) HealthService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &healthService{
		startedAt:   time.Now(),
		environment: cfg.Environment,
		version:     version,
		now:         time.Now,
		logger:      logger,
	}
}

func (h *healthService) Health(ctx context.Context) models.HealthResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	now := h.now()

	return models.HealthResponse{
		Status:    statusHealthy,
		Timestamp: now.UTC(),
		Uptime:    now.Sub(h.startedAt).Seconds(),
		Memory: models.MemoryStats{
			HeapUsed:  mem.HeapAlloc,
			HeapTotal: mem.HeapSys,
			Sys:       mem.Sys,
			NumGC:     mem.NumGC,
		},
		Environment: h.environment,
		Version:     h.version,
	}
}
