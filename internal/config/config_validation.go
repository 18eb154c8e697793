// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Server.validate(); err != nil {
		return err
	}
	if err := cfg.Merge.validate(); err != nil {
		return err
	}

	return cfg.Workers.validate()
}

func (s Server) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, s.Port)
	}
	if s.FrontendURL == "" {
		return fmt.Errorf("%w: frontend url is empty", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}
	if s.RateLimitRequests <= 0 || s.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (m Merge) validate() error {
	if m.MinFiles < 1 {
		return fmt.Errorf("%w: min files must be at least 1", ErrInvalidMergeConfigs)
	}
	if m.MaxFiles < m.MinFiles {
		return fmt.Errorf("%w: max files %d is less than min files %d", ErrInvalidMergeConfigs, m.MaxFiles, m.MinFiles)
	}
	if m.MaxFileSize <= 0 || m.MaxTotalSize <= 0 {
		return fmt.Errorf("%w: size limits must be positive", ErrInvalidMergeConfigs)
	}

	return nil
}

func (w Workers) validate() error {
	if w.MemoryCheckInterval <= 0 || w.MemoryHighWaterMark == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
