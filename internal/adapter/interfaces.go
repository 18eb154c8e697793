// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the merge service.
//
// [MergeAdapter] decouples the command-line client from the transport. The
// package ships an HTTP implementation ([NewHTTPMergeAdapter]) built on
// resty. Error responses are mapped to the sentinel values in errors.go so
// callers can use [errors.Is] regardless of the status code.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pdf-merger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/merge_adapter_mock.go -package=mock

// MergeAdapter talks to a running merge server.
type MergeAdapter interface {
	// Merge uploads the files at paths, in order, and returns the merged
	// document together with the metrics the server reported in its
	// response headers.
	Merge(ctx context.Context, paths []string) (models.MergeResult, error)

	// Health fetches the server's healthcheck report.
	Health(ctx context.Context) (models.HealthResponse, error)
}
