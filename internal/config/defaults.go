// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	mebibyte = 1 << 20
	gibibyte = 1 << 30
)

// Defaults returns the built-in configuration. It is merged last, so every
// field left unset by env, flags and the JSON file falls back to it.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: "development",
		},
		Server: Server{
			Port:              3001,
			FrontendURL:       "http://localhost:3000",
			RequestTimeout:    5 * time.Minute,
			ShutdownTimeout:   10 * time.Second,
			RateLimitRequests: 100,
			RateLimitWindow:   15 * time.Minute,
		},
		Merge: Merge{
			MinFiles:     2,
			MaxFiles:     20,
			MaxFileSize:  200 * mebibyte,
			MaxTotalSize: 200 * mebibyte,
		},
		Workers: Workers{
			MemoryCheckInterval: 30 * time.Second,
			MemoryHighWaterMark: gibibyte,
		},
	}
}
