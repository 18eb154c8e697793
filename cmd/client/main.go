// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pdf-merger/internal/adapter"
	"github.com/MKhiriev/go-pdf-merger/internal/config"
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/MKhiriev/go-pdf-merger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewConsoleLogger("go-pdf-merger-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	mergeAdapter, err := adapter.NewHTTPMergeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create merge adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, mergeAdapter, os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("merge failed")
	}
}

// run merges cfg.Files through the server, writes the result to cfg.Output
// and prints the reported metrics to out.
func run(ctx context.Context, cfg *config.ClientConfig, mergeAdapter adapter.MergeAdapter, out io.Writer, log *logger.Logger) error {
	health, err := mergeAdapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("server is not available: %w", err)
	}
	log.Debug().Str("status", health.Status).Str("version", health.Version).Msg("server healthcheck")

	result, err := mergeAdapter.Merge(ctx, cfg.Files)
	if err != nil {
		return err
	}

	if err = os.WriteFile(cfg.Output, result.Output, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	m := result.Metrics
	fmt.Fprintf(out, "Merged %d files into %s\n", m.TotalInputFiles, cfg.Output)
	fmt.Fprintf(out, "Total pages:       %d\n", m.TotalPages)
	fmt.Fprintf(out, "Input size:        %d bytes\n", m.TotalInputBytes)
	fmt.Fprintf(out, "Output size:       %d bytes\n", m.OutputBytes)
	fmt.Fprintf(out, "Processing time:   %dms\n", m.ElapsedMillis)
	fmt.Fprintf(out, "Compression ratio: %.2f\n", m.CompressionRatio())

	return nil
}
