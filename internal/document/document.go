// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Page is a handle to one page of a loaded document, numbered from 1.
type Page struct {
	Number int
}

// PageRef identifies a page of a MergedDocument by its origin.
type PageRef struct {
	Source string
	Number int
}

// Document is a parsed PDF.
type Document struct {
	name      string
	encrypted bool
	pages     []Page
	pdf       *model.Context
}

func newDocument(name string, pdf *model.Context) *Document {
	pages := make([]Page, pdf.PageCount)
	for i := range pages {
		pages[i] = Page{Number: i + 1}
	}

	return &Document{
		name:      name,
		encrypted: pdf.Encrypt != nil,
		pages:     pages,
		pdf:       pdf,
	}
}

// Name returns the file name the document was uploaded with.
func (d *Document) Name() string { return d.name }

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.pages) }

// Pages returns page handles in document order.
func (d *Document) Pages() []Page { return d.pages }

// Encrypted reports whether the document declared a security handler.
func (d *Document) Encrypted() bool { return d.encrypted }

// MergedDocument accumulates pages copied from loaded documents.
type MergedDocument struct {
	pdf   *model.Context
	pages []PageRef
	err   error
}

// NewMergedDocument returns an empty merge target.
func NewMergedDocument() *MergedDocument {
	return &MergedDocument{}
}

// PageCount returns the number of pages copied so far.
func (m *MergedDocument) PageCount() int { return len(m.pages) }

// Pages returns the copied pages in output order.
func (m *MergedDocument) Pages() []PageRef { return m.pages }

// Err returns the error that put the document into the failed state, if any.
func (m *MergedDocument) Err() error { return m.err }

func (m *MergedDocument) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

func (m *MergedDocument) appendPages(src *Document) {
	for _, p := range src.pages {
		m.pages = append(m.pages, PageRef{Source: src.name, Number: p.Number})
	}
}

var disableConfigDir sync.Once

// newConfiguration returns the relaxed pdfcpu configuration used for every
// load. pdfcpu must not create its config directory on the host.
func newConfiguration() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.Cmd = model.MERGECREATE
	conf.UserPW = ""
	// the adopted first source has no /Outlines for pdfcpu to merge into
	conf.CreateBookmarks = false

	return conf
}

// pageTreeCount reads /Count from the root page tree node.
func pageTreeCount(pdf *model.Context) (int, error) {
	root, err := pdf.Pages()
	if err != nil {
		return 0, err
	}

	d, err := pdf.DereferenceDict(*root)
	if err != nil {
		return 0, err
	}
	if d == nil {
		return 0, fmt.Errorf("missing page tree root")
	}

	count := d.IntEntry("Count")
	if count == nil {
		return 0, fmt.Errorf("page tree root has no /Count")
	}

	return *count, nil
}
