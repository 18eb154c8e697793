// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pdf-merger server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// App and Server carry no prefix so that the plain PORT, FRONTEND_URL and
// NODE_ENV variables keep working.
type StructuredConfig struct {
	// App holds application-level settings: runtime environment and version.
	App App

	// Server holds listener, CORS, timeout and rate-limit settings.
	Server Server

	// Merge holds the batch limits enforced before any document is parsed.
	Merge Merge `envPrefix:"MERGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the runtime environment name ("development",
	// "production", ...). Reported by the healthcheck endpoint.
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// IsProduction reports whether the application runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == "production"
}

// Server holds network, CORS and timeout settings for the HTTP server.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// FrontendURL is the single origin allowed by the CORS policy.
	// Env: FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "5m"). Large uploads need generous values.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// RateLimitRequests is the number of requests a single client IP may
	// issue per RateLimitWindow.
	// Env: RATE_LIMIT_REQUESTS
	RateLimitRequests int `env:"RATE_LIMIT_REQUESTS"`

	// RateLimitWindow is the length of the rate-limit window.
	// Env: RATE_LIMIT_WINDOW
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW"`
}

// HTTPAddress returns the listen address in "host:port" form.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Merge holds the batch-level limits of a merge request.
type Merge struct {
	// MinFiles is the minimum number of files per request.
	// Env: MERGE_MIN_FILES
	MinFiles int `env:"MIN_FILES"`

	// MaxFiles is the maximum number of files per request.
	// Env: MERGE_MAX_FILES
	MaxFiles int `env:"MAX_FILES"`

	// MaxFileSize is the maximum size of a single file in bytes.
	// Env: MERGE_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// MaxTotalSize is the maximum aggregate size of all files in bytes.
	// Env: MERGE_MAX_TOTAL_SIZE
	MaxTotalSize int64 `env:"MAX_TOTAL_SIZE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MemoryCheckInterval is how often the memory watchdog samples the heap.
	// Env: WORKERS_MEMORY_CHECK_INTERVAL
	MemoryCheckInterval time.Duration `env:"MEMORY_CHECK_INTERVAL"`

	// MemoryHighWaterMark is the heap size in bytes above which the memory
	// watchdog logs a warning.
	// Env: WORKERS_MEMORY_HIGH_WATER_MARK
	MemoryHighWaterMark uint64 `env:"MEMORY_HIGH_WATER_MARK"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (the first
// source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
