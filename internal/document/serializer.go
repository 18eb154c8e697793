// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type pdfSerializer struct {
	logger *logger.Logger
}

// NewSerializer returns a Serializer that writes with object and xref streams.
func NewSerializer(logger *logger.Logger) Serializer {
	return &pdfSerializer{logger: logger}
}

func (s *pdfSerializer) Serialize(ctx context.Context, doc *MergedDocument) (out []byte, err error) {
	if doc.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, ErrDocumentFailed)
	}
	if doc.pdf == nil || doc.PageCount() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, ErrEmptyDocument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrSerialize, r)
		}
	}()

	pdf := doc.pdf
	pdf.Configuration.WriteObjectStream = true
	pdf.Configuration.WriteXRefStream = true
	pdf.EnsureVersionForWriting()

	var buf bytes.Buffer
	if err = api.WriteContext(pdf, &buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	s.logger.Debug().
		Int("pages", doc.PageCount()).
		Int("bytes", buf.Len()).
		Msg("document serialized")

	return buf.Bytes(), nil
}
