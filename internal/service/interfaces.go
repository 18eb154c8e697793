// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pdf-merger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MergeService combines an ordered batch of uploaded PDFs into one document.
type MergeService interface {
	// Merge validates batch, loads and copies every file in order and
	// serializes the result. On failure no output is returned: validation
	// errors wrap ErrValidation, per-file errors are *FileError.
	Merge(ctx context.Context, batch models.Batch) (models.MergeResult, error)
}

// HealthService reports process health.
type HealthService interface {
	Health(ctx context.Context) models.HealthResponse
}

// MergeServiceWrapper defines middleware composition for MergeService.
// Implementations wrap an existing MergeService to add behavior such as
// logging.
type MergeServiceWrapper interface {
	Wrap(MergeService) MergeService // returns a decorated MergeService applying additional behavior
}
