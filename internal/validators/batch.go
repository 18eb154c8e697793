// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"mime"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldFileCount checks the number of files against the min/max bounds.
	FieldFileCount = "file_count"

	// FieldContentType checks that every file is declared as application/pdf.
	FieldContentType = "content_type"

	// FieldFileSize checks every file against the per-file size cap.
	FieldFileSize = "file_size"

	// FieldTotalSize checks the aggregate size of the batch.
	FieldTotalSize = "total_size"
)

// PDFContentType is the only media type accepted for uploaded parts.
const PDFContentType = "application/pdf"

// batchFields is the default check order for a batch.
var batchFields = []string{FieldFileCount, FieldContentType, FieldFileSize, FieldTotalSize}

// fileFields is the default check order for a single file.
var fileFields = []string{FieldContentType, FieldFileSize}

// BatchValidator checks merge batches against the configured limits. It
// only looks at counts, declared sizes and content types, never at bytes.
type BatchValidator struct {
	limits config.Merge
}

// NewBatchValidator constructs a BatchValidator for the given limits.
func NewBatchValidator(limits config.Merge) Validator {
	return &BatchValidator{limits: limits}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Batch / *models.Batch / []models.UploadedFile
//   - models.UploadedFile / *models.UploadedFile
//
// Returns ErrUnsupportedType for anything else.
func (v *BatchValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Batch:
		return v.validateBatch(ctx, value, fields...)
	case *models.Batch:
		return v.validateBatch(ctx, *value, fields...)
	case []models.UploadedFile:
		return v.validateBatch(ctx, value, fields...)

	case models.UploadedFile:
		return v.validateFile(ctx, value, fields...)
	case *models.UploadedFile:
		return v.validateFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BatchValidator) validateBatch(ctx context.Context, batch models.Batch, fields ...string) error {
	if len(fields) == 0 {
		fields = batchFields
	}

	for _, f := range fields {
		switch f {
		case FieldFileCount:
			if batch.Len() < v.limits.MinFiles {
				return fmt.Errorf("%w: at least %d files are required", ErrTooFewFiles, v.limits.MinFiles)
			}
			if batch.Len() > v.limits.MaxFiles {
				return fmt.Errorf("%w: at most %d files are allowed", ErrTooManyFiles, v.limits.MaxFiles)
			}
		case FieldContentType, FieldFileSize:
			for _, file := range batch {
				if err := v.validateFile(ctx, file, f); err != nil {
					return err
				}
			}
		case FieldTotalSize:
			if batch.TotalSize() > v.limits.MaxTotalSize {
				return fmt.Errorf("%w: limit is %d bytes", ErrTotalSizeTooLarge, v.limits.MaxTotalSize)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BatchValidator) validateFile(_ context.Context, file models.UploadedFile, fields ...string) error {
	if len(fields) == 0 {
		fields = fileFields
	}

	for _, f := range fields {
		switch f {
		case FieldContentType:
			if !isPDF(file.ContentType) {
				return fmt.Errorf("%w: %s", ErrUnsupportedContentType, file.Name)
			}
		case FieldFileSize:
			if file.Size > v.limits.MaxFileSize {
				return fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, file.Name, v.limits.MaxFileSize)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == PDFContentType
}
