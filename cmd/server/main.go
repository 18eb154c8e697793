// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/handler"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/server"
	"github.com/MKhiriev/go-pdf-merger/internal/service"
	"github.com/MKhiriev/go-pdf-merger/internal/workers"
	"github.com/MKhiriev/go-pdf-merger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-pdf-merger")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	logger.SetEnvironment(cfg.App.Environment)
	log.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(*cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("addr", cfg.Server.HTTPAddress()).
		Str("environment", cfg.App.Environment).
		Msg("PDF merge server starting")

	srv.RunServer()
}
