// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pdf-merger/internal/utils"
	"github.com/MKhiriev/go-pdf-merger/models"
)

const msgEndpointNotFound = "Endpoint not found"

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w)
}

func writeNotFound(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgEndpointNotFound}, http.StatusNotFound)
}
