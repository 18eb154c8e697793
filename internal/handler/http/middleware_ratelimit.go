// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/utils"
	"github.com/MKhiriev/go-pdf-merger/models"
	"github.com/go-chi/httprate"
)

// withRateLimit limits every client IP to RateLimitRequests per
// RateLimitWindow.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.cfg.Server.RateLimitRequests,
		h.cfg.Server.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("rate limit exceeded")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgTooManyRequests}, http.StatusTooManyRequests)
		}),
	)
}
