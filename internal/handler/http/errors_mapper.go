// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/document"
	"github.com/MKhiriev/go-pdf-merger/internal/service"
	"github.com/MKhiriev/go-pdf-merger/internal/utils"
	"github.com/MKhiriev/go-pdf-merger/internal/validators"
	"github.com/MKhiriev/go-pdf-merger/models"
)

const (
	msgMergeFailed     = "Failed to merge PDFs"
	msgTooManyRequests = "Too many requests, please try again later."
	msgMalformedBody   = "Invalid multipart form data"
	mebibyte           = 1 << 20
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,
	ErrMalformedMultipart: http.StatusBadRequest,

	validators.ErrTooFewFiles:            http.StatusBadRequest,
	validators.ErrTooManyFiles:           http.StatusBadRequest,
	validators.ErrFileTooLarge:           http.StatusBadRequest,
	validators.ErrTotalSizeTooLarge:      http.StatusBadRequest,
	validators.ErrUnsupportedContentType: http.StatusBadRequest,

	document.ErrParse:     http.StatusBadRequest,
	document.ErrCopy:      http.StatusBadRequest,
	document.ErrSerialize: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var fileErr *service.FileError
	if errors.As(err, &fileErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// clientMessage returns the message shown to the caller for a 400 error.
func clientMessage(err error, limits config.Merge) string {
	var fileErr *service.FileError
	switch {
	case errors.As(err, &fileErr):
		return fmt.Sprintf("Failed to process file %s: %s", fileErr.FileName, fileErr.Reason)
	case errors.Is(err, validators.ErrTooFewFiles):
		return fmt.Sprintf("At least %d PDF files are required", limits.MinFiles)
	case errors.Is(err, validators.ErrTooManyFiles):
		return fmt.Sprintf("Maximum %d files allowed", limits.MaxFiles)
	case errors.Is(err, validators.ErrFileTooLarge):
		return fmt.Sprintf("File too large. Maximum size is %dMB", limits.MaxFileSize/mebibyte)
	case errors.Is(err, validators.ErrTotalSizeTooLarge):
		return fmt.Sprintf("Total upload size too large. Maximum is %dMB", limits.MaxTotalSize/mebibyte)
	case errors.Is(err, validators.ErrUnsupportedContentType):
		return "Only PDF files are allowed"
	case errors.Is(err, ErrMalformedMultipart):
		return msgMalformedBody
	default:
		return err.Error()
	}
}

func writeMalformedBody(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgMalformedBody}, http.StatusBadRequest)
}
