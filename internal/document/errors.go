// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "errors"

var (
	ErrParse     = errors.New("failed to parse document")
	ErrCopy      = errors.New("failed to copy pages")
	ErrSerialize = errors.New("failed to serialize document")

	ErrEmptyDocument  = errors.New("document has no pages")
	ErrDocumentFailed = errors.New("document is in a failed state")
	ErrPasswordNeeded = errors.New("document is password protected")
)
