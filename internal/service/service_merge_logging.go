// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/models"
)

// MergeLoggingService logs the input and outcome of every merge.
type MergeLoggingService struct {
	inner  MergeService
	logger *logger.Logger
}

func NewMergeLoggingService(logger *logger.Logger) MergeServiceWrapper {
	return &MergeLoggingService{logger: logger}
}

func (l *MergeLoggingService) Merge(ctx context.Context, batch models.Batch) (models.MergeResult, error) {
	log := logger.FromContextOr(ctx, l.logger)

	log.Info().
		Int("files", batch.Len()).
		Int64("total_bytes", batch.TotalSize()).
		Msg("merge started")

	result, err := l.inner.Merge(ctx, batch)
	if err != nil {
		var fileErr *FileError
		switch {
		case errors.Is(err, ErrValidation):
			log.Warn().Err(err).Msg("merge rejected")
		case errors.As(err, &fileErr):
			log.Warn().Err(fileErr.Err).
				Str("file", fileErr.FileName).
				Int("index", fileErr.Index).
				Msg("merge failed on file")
		default:
			log.Error().Err(err).Msg("merge failed")
		}
		return result, err
	}

	m := result.Metrics
	log.Info().
		Int("files", m.TotalInputFiles).
		Int64("input_bytes", m.TotalInputBytes).
		Int("pages", m.TotalPages).
		Int64("output_bytes", m.OutputBytes).
		Int64("elapsed_ms", m.ElapsedMillis).
		Float64("compression_ratio", m.CompressionRatio()).
		Msg("merge completed")

	return result, nil
}

func (l *MergeLoggingService) Wrap(inner MergeService) MergeService {
	l.inner = inner
	return l
}
