// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		Host              string   `json:"host"`
		Port              int      `json:"port"`
		FrontendURL       string   `json:"frontend_url"`
		RequestTimeout    Duration `json:"request_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
		RateLimitRequests int      `json:"rate_limit_requests"`
		RateLimitWindow   Duration `json:"rate_limit_window"`
	} `json:"server,omitempty"`

	Merge struct {
		MinFiles     int   `json:"min_files"`
		MaxFiles     int   `json:"max_files"`
		MaxFileSize  int64 `json:"max_file_size"`
		MaxTotalSize int64 `json:"max_total_size"`
	} `json:"merge,omitempty"`

	Workers struct {
		MemoryCheckInterval Duration `json:"memory_check_interval"`
		MemoryHighWaterMark uint64   `json:"memory_high_water_mark"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
			Version:     jsonCfg.App.Version,
		},
		Server: Server{
			Host:              jsonCfg.Server.Host,
			Port:              jsonCfg.Server.Port,
			FrontendURL:       jsonCfg.Server.FrontendURL,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
			RateLimitRequests: jsonCfg.Server.RateLimitRequests,
			RateLimitWindow:   time.Duration(jsonCfg.Server.RateLimitWindow),
		},
		Merge: Merge{
			MinFiles:     jsonCfg.Merge.MinFiles,
			MaxFiles:     jsonCfg.Merge.MaxFiles,
			MaxFileSize:  jsonCfg.Merge.MaxFileSize,
			MaxTotalSize: jsonCfg.Merge.MaxTotalSize,
		},
		Workers: Workers{
			MemoryCheckInterval: time.Duration(jsonCfg.Workers.MemoryCheckInterval),
			MemoryHighWaterMark: jsonCfg.Workers.MemoryHighWaterMark,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
