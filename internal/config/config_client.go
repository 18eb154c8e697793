// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

const (
	defaultClientServerURL = "http://localhost:3001"
	defaultClientOutput    = "merged.pdf"
	defaultClientTimeout   = 5 * time.Minute
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the merge server.
	HTTPAddress string
	// RequestTimeout is the timeout for a single merge request.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Output is the path the merged PDF is written to.
	Output string
	// Files are the input PDF paths, in merge order.
	Files []string
}

// GetClientConfig parses the client command line.
//
// Flags:
//
//	-a merge server base URL
//	-o output file path
//	-timeout request timeout (e.g., "30s", "5m")
//
// Remaining arguments are the PDF files to merge, in order.
func GetClientConfig(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("go-pdf-merger-client", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", defaultClientServerURL, "Merge server base URL")
	fs.StringVar(&cfg.Output, "o", defaultClientOutput, "Output file path")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", defaultClientTimeout, "Request timeout (e.g., 30s, 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Files = fs.Args()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: server address and timeout are required", ErrInvalidClientConfigs)
	}
	if cfg.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidClientConfigs)
	}
	if len(cfg.Files) == 0 {
		return fmt.Errorf("%w: no input files given", ErrInvalidClientConfigs)
	}

	return nil
}
