// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pdf-merger/internal/logger"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

type pdfMerger struct {
	logger *logger.Logger
}

// NewMerger returns a Merger backed by pdfcpu xref table merging.
func NewMerger(logger *logger.Logger) Merger {
	return &pdfMerger{logger: logger}
}

func (m *pdfMerger) Append(ctx context.Context, dst *MergedDocument, src *Document) (err error) {
	if dst.err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, ErrDocumentFailed)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrCopy, src.name, r)
		}
		if err != nil {
			dst.fail(err)
		}
	}()

	if src.PageCount() == 0 {
		return nil
	}

	// the first source becomes the destination as is
	if dst.pdf == nil {
		// the merged output is always written unencrypted
		src.pdf.Encrypt = nil
		src.pdf.E = nil
		src.pdf.EncKey = nil
		src.pdf.EnsureVersionForWriting()
		dst.pdf = src.pdf
		dst.appendPages(src)
		return nil
	}

	want := dst.pdf.PageCount + src.PageCount()
	if err = pdfcpu.MergeXRefTables(src.name, src.pdf, dst.pdf, false, false); err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}

	got, err := pageTreeCount(dst.pdf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}
	if got != want {
		return fmt.Errorf("%w: expected %d pages after appending %s, got %d", ErrCopy, want, src.name, got)
	}
	dst.pdf.PageCount = got
	dst.appendPages(src)

	m.logger.Debug().
		Str("file", src.name).
		Int("pages", src.PageCount()).
		Int("total_pages", dst.PageCount()).
		Msg("pages appended")

	return nil
}
