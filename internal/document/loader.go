// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

type pdfLoader struct {
	logger *logger.Logger
}

// NewLoader returns a Loader backed by pdfcpu.
func NewLoader(logger *logger.Logger) Loader {
	return &pdfLoader{logger: logger}
}

func (l *pdfLoader) Load(ctx context.Context, name string, data []byte) (doc *Document, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// pdfcpu panics on some malformed object graphs
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrParse, r)
		}
	}()

	pdf, err := api.ReadContext(bytes.NewReader(data), newConfiguration())
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return nil, fmt.Errorf("%w: %w", ErrParse, ErrPasswordNeeded)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err = api.ValidateContext(pdf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err = pdf.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	doc = newDocument(name, pdf)
	l.logger.Debug().
		Str("file", name).
		Int("pages", doc.PageCount()).
		Bool("encrypted", doc.Encrypted()).
		Msg("document loaded")

	return doc, nil
}
