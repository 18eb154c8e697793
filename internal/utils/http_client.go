// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the adapter can use its API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL with the given request
// timeout. Each call returns an independent client.
//
//	client := utils.NewHTTPClient("http://localhost:3001", 5*time.Minute)
//	resp, err := client.R().Get("/api/healthcheck")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		Client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}
