// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/utils"
)

func (h *Handler) healthcheck(w http.ResponseWriter, r *http.Request) {
	health := h.services.HealthService.Health(r.Context())

	if _, err := utils.WriteJSON(w, health, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing healthcheck response")
	}
}
