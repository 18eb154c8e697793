// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/utils"
	"github.com/MKhiriev/go-pdf-merger/internal/validators"
	"github.com/MKhiriev/go-pdf-merger/models"
	"github.com/bradhe/stopwatch"
)

const (
	filesFormField = "files"

	// multipartOverhead is the room left for part headers and boundaries
	// on top of the aggregate file size limit.
	multipartOverhead = 1 << 20

	headerTotalPages       = "X-Total-Pages"
	headerTotalSize        = "X-Total-Size"
	headerProcessingTime   = "X-Processing-Time"
	headerCompressionRatio = "X-Compression-Ratio"
)

func (h *Handler) merge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	watch := stopwatch.Start()

	batch, err := h.readBatch(w, r)
	if err != nil {
		log.Warn().Err(err).Msg("invalid merge request")
		watch.Stop()
		h.writeMergeError(w, r, err, int64(watch.Milliseconds()))
		return
	}

	result, err := h.services.MergeService.Merge(ctx, batch)
	if err != nil {
		watch.Stop()
		h.writeMergeError(w, r, err, int64(watch.Milliseconds()))
		return
	}

	m := result.Metrics
	w.Header().Set("Content-Type", validators.PDFContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=merged.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Output)))
	w.Header().Set(headerTotalPages, strconv.Itoa(m.TotalPages))
	w.Header().Set(headerTotalSize, strconv.FormatInt(m.TotalInputBytes, 10))
	w.Header().Set(headerProcessingTime, fmt.Sprintf("%dms", m.ElapsedMillis))
	w.Header().Set(headerCompressionRatio, fmt.Sprintf("%.2f", m.CompressionRatio()))
	w.Header().Set("Cache-Control", "no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(result.Output); err != nil {
		log.Err(err).Msg("error writing merged document")
	}
}

// readBatch reads the "files" parts of a multipart body in order. Parts are
// checked for content type and size while they are read, so an oversized or
// non-PDF upload is rejected before the rest of the body is consumed.
func (h *Handler) readBatch(w http.ResponseWriter, r *http.Request) (models.Batch, error) {
	ctx := r.Context()
	limits := h.cfg.Merge

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxTotalSize+multipartOverhead)

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}

	batch := make(models.Batch, 0, limits.MinFiles)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, bodyError(err)
		}

		if part.FormName() != filesFormField {
			part.Close()
			continue
		}

		if batch.Len() == limits.MaxFiles {
			part.Close()
			return nil, fmt.Errorf("%w: at most %d files are allowed", validators.ErrTooManyFiles, limits.MaxFiles)
		}

		file := models.UploadedFile{
			Name:        part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
		}
		if err = h.validator.Validate(ctx, file, validators.FieldContentType); err != nil {
			part.Close()
			return nil, err
		}

		file.Data, err = io.ReadAll(io.LimitReader(part, limits.MaxFileSize+1))
		part.Close()
		if err != nil {
			return nil, bodyError(err)
		}
		file.Size = int64(len(file.Data))

		if err = h.validator.Validate(ctx, file, validators.FieldFileSize); err != nil {
			return nil, err
		}

		batch = append(batch, file)
	}

	return batch, nil
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: request body exceeds %d bytes", validators.ErrTotalSizeTooLarge, maxBytesErr.Limit)
	}

	return fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
}

func (h *Handler) writeMergeError(w http.ResponseWriter, r *http.Request, err error, elapsedMillis int64) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status != http.StatusInternalServerError {
		utils.WriteJSON(w, models.ErrorResponse{Error: clientMessage(err, h.cfg.Merge)}, status)
		return
	}

	log.Err(err).Msg("merge failed unexpectedly")

	response := models.ErrorResponse{
		Error:          msgMergeFailed,
		ProcessingTime: fmt.Sprintf("%dms", elapsedMillis),
	}
	if !h.cfg.App.IsProduction() {
		response.Details = err.Error()
	}

	utils.WriteJSON(w, response, status)
}
