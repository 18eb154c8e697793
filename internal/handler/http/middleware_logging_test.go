// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request whose context logger writes to buf,
// the same way withTraceID attaches it.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "healthcheck 200",
			method:          http.MethodGet,
			path:            "/api/healthcheck",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"status":"healthy"}`,
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/healthcheck"`,
				`"status":200`,
				`"duration":`,
				`"size":20`,
			},
		},
		{
			name:            "merge rejected 400",
			method:          http.MethodPost,
			path:            "/api/merge",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: `{"error":"Only PDF files are allowed"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":400`,
			},
		},
		{
			name:            "rate limited 429",
			method:          http.MethodPost,
			path:            "/api/merge",
			handlerStatus:   http.StatusTooManyRequests,
			handlerResponse: `{"error":"Too many requests"}`,
			checkLogContains: []string{
				`"status":429`,
			},
		},
		{
			name:          "preflight without body",
			method:        http.MethodOptions,
			path:          "/api/merge",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"OPTIONS"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "query string kept in uri",
			method:          http.MethodGet,
			path:            "/api/healthcheck?verbose=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "ok",
			checkLogContains: []string{
				`"uri":"/api/healthcheck?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("%", 1024)))
		_, _ = w.Write([]byte(strings.Repeat("%", 1024)))
	})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodPost, "/api/merge", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":2048`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))
	})
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/healthcheck", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
