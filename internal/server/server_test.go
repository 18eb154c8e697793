// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/handler"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) (string, int) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	return "127.0.0.1", ln.Addr().(*net.TCPAddr).Port
}

func testServerConfig(t *testing.T) config.Server {
	host, port := freeAddr(t)
	return config.Server{
		Host:            host,
		Port:            port,
		RequestTimeout:  time.Minute,
		ShutdownTimeout: 5 * time.Second,
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_RunServesUntilCanceled(t *testing.T) {
	cfg := testServerConfig(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	s := &server{
		httpServer:      newHTTPServer(mux, cfg, logger.Nop()),
		workers:         workers.NewWorkers(config.Workers{MemoryCheckInterval: 10 * time.Millisecond}, logger.Nop()),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	url := "http://" + cfg.HTTPAddress() + "/ping"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}

	_, err := http.Get(url)
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Server{
		Host:            "127.0.0.1",
		Port:            ln.Addr().(*net.TCPAddr).Port,
		ShutdownTimeout: time.Second,
	}
	s := &server{
		httpServer:      newHTTPServer(http.NewServeMux(), cfg, logger.Nop()),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger.Nop(),
	}

	assert.Error(t, s.run(context.Background()))
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{Host: "0.0.0.0", Port: 3001, RequestTimeout: 5 * time.Minute}

	h := newHTTPServer(http.NewServeMux(), cfg, logger.Nop())

	assert.Equal(t, "0.0.0.0:3001", h.server.Addr)
	assert.Equal(t, 5*time.Minute, h.server.ReadTimeout)
	assert.Equal(t, 5*time.Minute, h.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
}
