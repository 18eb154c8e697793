// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/service"
	"github.com/MKhiriev/go-pdf-merger/internal/utils"
	"github.com/MKhiriev/go-pdf-merger/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	cfg    config.StructuredConfig
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewBatchValidator(cfg.Merge),
		traceIDs:  utils.NewUUIDGenerator(),
		cfg:       cfg,
		logger:    logger,
	}
}
