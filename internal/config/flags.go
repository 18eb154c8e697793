// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses server configuration flags from args (usually
// os.Args[1:]).
//
// Flags:
//
//	-p port to listen on
//	-host interface to bind to
//	-frontend-url allowed CORS origin
//	-env runtime environment name
//	-request-timeout request timeout (e.g., "30s", "5m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pdf-merger", flag.ContinueOnError)

	var port int
	var host string
	var frontendURL string
	var environment string
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&host, "host", "", "Interface to bind to")
	fs.StringVar(&frontendURL, "frontend-url", "", "Allowed CORS origin")
	fs.StringVar(&environment, "env", "", "Runtime environment (development, production)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Server: Server{
			Host:           host,
			Port:           port,
			FrontendURL:    frontendURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
