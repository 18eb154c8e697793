// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	// Error is the client-facing message.
	Error string `json:"error"`

	// Details carries diagnostic detail for unexpected failures only.
	Details string `json:"details,omitempty"`

	// ProcessingTime is the time spent on the request before it failed,
	// formatted as "<ms>ms". Set for unexpected failures only.
	ProcessingTime string `json:"processingTime,omitempty"`
}

// MemoryStats is a snapshot of the Go runtime memory counters, in bytes.
type MemoryStats struct {
	HeapUsed  uint64 `json:"heapUsed"`
	HeapTotal uint64 `json:"heapTotal"`
	Sys       uint64 `json:"sys"`
	NumGC     uint32 `json:"numGC"`
}

// HealthResponse is returned by the healthcheck endpoint.
type HealthResponse struct {
	Status      string      `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
	Uptime      float64     `json:"uptime"`
	Memory      MemoryStats `json:"memory"`
	Environment string      `json:"environment"`
	Version     string      `json:"version,omitempty"`
}
