// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/document"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/validators"
	"github.com/MKhiriev/go-pdf-merger/models"
)

type Services struct {
	MergeService  MergeService
	HealthService HealthService
}

func NewServices(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	mergeService := NewMergeService(
		validators.NewBatchValidator(cfg.Merge),
		document.NewLoader(logger),
		document.NewMerger(logger),
		document.NewSerializer(logger),
		logger,
	)

	return &Services{
		MergeService:  NewMergeLoggingService(logger).Wrap(mergeService),
		HealthService: NewHealthService(cfg.App, buildInfo, logger),
	}
}
