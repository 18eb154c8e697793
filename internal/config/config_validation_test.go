// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*StructuredConfig) {},
		},
		{
			name:    "zero port",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Port = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty frontend url",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.FrontendURL = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero rate limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RateLimitRequests = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero min files",
			mutate:  func(cfg *StructuredConfig) { cfg.Merge.MinFiles = 0 },
			wantErr: ErrInvalidMergeConfigs,
		},
		{
			name:    "negative file size",
			mutate:  func(cfg *StructuredConfig) { cfg.Merge.MaxFileSize = -1 },
			wantErr: ErrInvalidMergeConfigs,
		},
		{
			name:    "zero memory interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.MemoryCheckInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
