// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pdf-merger/internal/document"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/validators"
	"github.com/MKhiriev/go-pdf-merger/models"
	"github.com/bradhe/stopwatch"
)

type mergeService struct {
	validator  validators.Validator
	loader     document.Loader
	merger     document.Merger
	serializer document.Serializer

	logger *logger.Logger
}

func NewMergeService(
	validator validators.Validator,
	loader document.Loader,
	merger document.Merger,
	serializer document.Serializer,
	logger *logger.Logger,
) MergeService {
	return &mergeService{
		validator:  validator,
		loader:     loader,
		merger:     merger,
		serializer: serializer,
		logger:     logger,
	}
}

func (s *mergeService) Merge(ctx context.Context, batch models.Batch) (models.MergeResult, error) {
	run := newMergeRun(logger.FromContextOr(ctx, s.logger))
	watch := stopwatch.Start()

	run.to(StateValidating)
	if err := s.validator.Validate(ctx, batch); err != nil {
		return models.MergeResult{}, run.fail(fmt.Errorf("%w: %w", ErrValidation, err))
	}

	metrics := models.MergeMetrics{
		TotalInputFiles: batch.Len(),
		TotalInputBytes: batch.TotalSize(),
	}
	merged := document.NewMergedDocument()

	for i, file := range batch {
		if err := ctx.Err(); err != nil {
			return models.MergeResult{}, run.fail(err)
		}

		run.toFile(StateLoading, i, file.Name)
		doc, err := s.loader.Load(ctx, file.Name, file.Data)
		if err != nil {
			return models.MergeResult{}, run.fail(fileFailure(i, file.Name, err))
		}
		metrics.TotalPages += doc.PageCount()

		run.toFile(StateCopying, i, file.Name)
		if err = s.merger.Append(ctx, merged, doc); err != nil {
			return models.MergeResult{}, run.fail(fileFailure(i, file.Name, err))
		}
	}

	if err := ctx.Err(); err != nil {
		return models.MergeResult{}, run.fail(err)
	}

	run.to(StateSerializing)
	out, err := s.serializer.Serialize(ctx, merged)
	if err != nil {
		return models.MergeResult{}, run.fail(err)
	}

	watch.Stop()
	metrics.OutputBytes = int64(len(out))
	metrics.ElapsedMillis = int64(watch.Milliseconds())

	run.to(StateDone)

	return models.MergeResult{Output: out, Metrics: metrics}, nil
}

// fileFailure attributes err to file i unless the merge was canceled.
func fileFailure(i int, name string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return newFileError(i, name, err)
}
