// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the merge service's HTTP server together
// with the background workers.
//
// Both run under one errgroup bound to a context that is canceled on
// SIGTERM, SIGINT or SIGQUIT. On cancellation the HTTP server stops
// accepting connections and drains in-flight merges within the configured
// shutdown timeout.
package server
