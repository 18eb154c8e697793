// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTooFewFiles            = errors.New("too few files")
	ErrTooManyFiles           = errors.New("too many files")
	ErrFileTooLarge           = errors.New("file is too large")
	ErrTotalSizeTooLarge      = errors.New("total size of files is too large")
	ErrUnsupportedContentType = errors.New("only PDF files are allowed")
)
