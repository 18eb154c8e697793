// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/utils"
	"github.com/MKhiriev/go-pdf-merger/models"
)

const (
	mergePath       = "/api/merge"
	healthcheckPath = "/api/healthcheck"

	filesField = "files"
	pdfType    = "application/pdf"
)

type httpMergeAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPMergeAdapter constructs the HTTP implementation of [MergeAdapter].
// It normalises cfg.HTTPAddress ("localhost:3001" becomes
// "http://localhost:3001") and returns an error when it is not a valid URL.
func NewHTTPMergeAdapter(cfg config.ClientAdapter, logger *logger.Logger) (MergeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpMergeAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Merge implements [MergeAdapter]. Files are streamed from disk as repeated
// "files" parts in the order given.
func (h *httpMergeAdapter) Merge(ctx context.Context, paths []string) (models.MergeResult, error) {
	if len(paths) == 0 {
		return models.MergeResult{}, ErrNoFiles
	}

	req := h.client.R().SetContext(ctx)

	var totalInput int64
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return models.MergeResult{}, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		if info, err := f.Stat(); err == nil {
			totalInput += info.Size()
		}
		req.SetMultipartField(filesField, filepath.Base(path), pdfType, f)
	}

	h.logger.Debug().Int("files", len(paths)).Int64("bytes", totalInput).Msg("uploading files for merge")

	resp, err := req.Post(mergePath)
	if err != nil {
		return models.MergeResult{}, fmt.Errorf("merge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MergeResult{}, err
	}

	metrics, err := metricsFromHeaders(resp.Header().Get, len(paths), int64(len(resp.Body())))
	if err != nil {
		return models.MergeResult{}, err
	}

	h.logger.Debug().
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Int("pages", metrics.TotalPages).
		Msg("merge response received")

	return models.MergeResult{Output: resp.Body(), Metrics: metrics}, nil
}

// metricsFromHeaders rebuilds the merge metrics from the X-* response
// headers.
func metricsFromHeaders(header func(string) string, files int, outputBytes int64) (models.MergeMetrics, error) {
	pages, err := strconv.Atoi(header("X-Total-Pages"))
	if err != nil {
		return models.MergeMetrics{}, fmt.Errorf("%w: X-Total-Pages: %w", ErrInvalidResponse, err)
	}

	totalSize, err := strconv.ParseInt(header("X-Total-Size"), 10, 64)
	if err != nil {
		return models.MergeMetrics{}, fmt.Errorf("%w: X-Total-Size: %w", ErrInvalidResponse, err)
	}

	elapsed, err := strconv.ParseInt(strings.TrimSuffix(header("X-Processing-Time"), "ms"), 10, 64)
	if err != nil {
		return models.MergeMetrics{}, fmt.Errorf("%w: X-Processing-Time: %w", ErrInvalidResponse, err)
	}

	return models.MergeMetrics{
		TotalInputFiles: files,
		TotalInputBytes: totalSize,
		TotalPages:      pages,
		OutputBytes:     outputBytes,
		ElapsedMillis:   elapsed,
	}, nil
}

// Health implements [MergeAdapter].
func (h *httpMergeAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get(healthcheckPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("healthcheck request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}
