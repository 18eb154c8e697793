// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener, CORS, timeout or
	// rate-limit settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidMergeConfigs indicates inconsistent batch limits
	// (for example, max files below min files).
	ErrInvalidMergeConfigs = errors.New("invalid merge configuration")

	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero memory check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")

	// ErrInvalidClientConfigs indicates invalid command-line client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
