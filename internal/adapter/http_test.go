// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/document/pdftest"
	httphandler "github.com/MKhiriev/go-pdf-merger/internal/handler/http"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/service"
	"github.com/MKhiriev/go-pdf-merger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) MergeAdapter {
	t.Helper()

	a, err := NewHTTPMergeAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 10 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:3001", want: "http://localhost:3001"},
		{name: "full url with slash", raw: "https://merge.example.com/", want: "https://merge.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:3001 ", want: "http://127.0.0.1:3001"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMerge_SendsFilesInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/merge", r.URL.Path)

		reader, err := r.MultipartReader()
		require.NoError(t, err)

		var names []string
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			assert.Equal(t, "files", part.FormName())
			assert.Equal(t, "application/pdf", part.Header.Get("Content-Type"))
			names = append(names, part.FileName())
		}
		assert.Equal(t, []string{"b.pdf", "a.pdf"}, names)

		w.Header().Set("X-Total-Pages", "7")
		w.Header().Set("X-Total-Size", "2048")
		w.Header().Set("X-Processing-Time", "35ms")
		w.Header().Set("X-Compression-Ratio", "0.50")
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-merged"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	b := writeFile(t, dir, "b.pdf", []byte("%PDF-b"))
	a := writeFile(t, dir, "a.pdf", []byte("%PDF-a"))

	result, err := newTestAdapter(t, srv.URL).Merge(context.Background(), []string{b, a})

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-merged"), result.Output)
	assert.Equal(t, models.MergeMetrics{
		TotalInputFiles: 2,
		TotalInputBytes: 2048,
		TotalPages:      7,
		OutputBytes:     11,
		ElapsedMillis:   35,
	}, result.Metrics)
}

func TestMerge_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "validation",
			status:  http.StatusBadRequest,
			body:    `{"error":"At least 2 PDF files are required"}`,
			wantErr: ErrBadRequest,
			wantMsg: "At least 2 PDF files are required",
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{"error":"Too many requests, please try again later."}`,
			wantErr: ErrTooManyRequests,
		},
		{
			name:    "internal with details",
			status:  http.StatusInternalServerError,
			body:    `{"error":"Failed to merge PDFs","details":"boom","processingTime":"3ms"}`,
			wantErr: ErrInternalServerError,
			wantMsg: "Failed to merge PDFs (boom)",
		},
		{
			name:    "not found plain body",
			status:  http.StatusNotFound,
			body:    "nope",
			wantErr: ErrNotFound,
			wantMsg: "nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			path := writeFile(t, t.TempDir(), "a.pdf", []byte("%PDF"))
			_, err := newTestAdapter(t, srv.URL).Merge(context.Background(), []string{path, path})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMerge_LocalErrors(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.Merge(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	_, err = a.Merge(context.Background(), []string{filepath.Join(t.TempDir(), "missing.pdf")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMerge_MissingMetricHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	path := writeFile(t, t.TempDir(), "a.pdf", []byte("%PDF"))
	_, err := newTestAdapter(t, srv.URL).Merge(context.Background(), []string{path, path})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/healthcheck", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","timestamp":"2026-01-02T03:04:05Z","uptime":1.5,"memory":{"heapUsed":1,"heapTotal":2,"sys":3,"numGC":4},"environment":"production","version":"1.0.0"}`))
	}))
	defer srv.Close()

	health, err := newTestAdapter(t, srv.URL).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 1.5, health.Uptime)
	assert.Equal(t, uint64(2), health.Memory.HeapTotal)
	assert.Equal(t, "production", health.Environment)
	assert.Equal(t, "1.0.0", health.Version)
}

// TestMerge_AgainstServer runs the adapter against the real router and merge
// pipeline.
func TestMerge_AgainstServer(t *testing.T) {
	cfg := *config.Defaults()
	services := service.NewServices(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	srv := httptest.NewServer(httphandler.NewHandler(services, cfg, logger.Nop()).Init())
	defer srv.Close()

	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "one.pdf", pdftest.Build("1a", "1b")),
		writeFile(t, dir, "two.pdf", pdftest.Build("2a")),
	}

	a := newTestAdapter(t, srv.URL)

	result, err := a.Merge(context.Background(), paths)
	require.NoError(t, err)

	texts, err := pdftest.PageTexts(result.Output)
	require.NoError(t, err)
	assert.Equal(t, []string{"1a", "1b", "2a"}, texts)
	assert.Equal(t, 3, result.Metrics.TotalPages)
	assert.Equal(t, int64(len(result.Output)), result.Metrics.OutputBytes)

	health, err := a.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "development", health.Environment)

	_, err = a.Merge(context.Background(), paths[:1])
	assert.ErrorIs(t, err, ErrBadRequest)
}
