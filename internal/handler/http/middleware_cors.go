// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

var corsAllowedHeaders = []string{
	"X-CSRF-Token",
	"X-Requested-With",
	"Accept",
	"Accept-Version",
	"Content-Length",
	"Content-MD5",
	"Content-Type",
	"Date",
	"X-Api-Version",
	"X-Device-Type",
	"X-Client-Memory",
	"X-Total-Size",
	"X-Priority",
}

var corsExposedHeaders = []string{
	headerTotalPages,
	headerTotalSize,
	headerProcessingTime,
	headerCompressionRatio,
	"Content-Disposition",
	traceIDHeader,
}

// withCORS allows the configured frontend origin only.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.Server.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   corsAllowedHeaders,
		ExposedHeaders:   corsExposedHeaders,
		AllowCredentials: true,
		MaxAge:           300,
	})
}
