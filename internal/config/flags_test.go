// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-p", "4000",
				"-host", "0.0.0.0",
				"-frontend-url", "https://app.example.com",
				"-env", "production",
				"-request-timeout", "90s",
				"-c", "/etc/merger.json",
			},
			expected: &StructuredConfig{
				App: App{Environment: "production"},
				Server: Server{
					Host:           "0.0.0.0",
					Port:           4000,
					FrontendURL:    "https://app.example.com",
					RequestTimeout: 90 * time.Second,
				},
				JSONFilePath: "/etc/merger.json",
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "cfg.json"},
			expected: &StructuredConfig{
				JSONFilePath: "cfg.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non numeric port", []string{"-p", "abc"}},
		{"bad duration", []string{"-request-timeout", "soon"}},
		{"unknown flag", []string{"-unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)

			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
