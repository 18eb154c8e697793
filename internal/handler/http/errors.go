// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMalformedMultipart is returned when the request body is not a
	// readable multipart/form-data stream.
	ErrMalformedMultipart = errors.New("malformed multipart form data")
)
