// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pdftest builds small PDFs in memory and reads their page text back
// for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Build returns a valid PDF-1.4 document with one page per text. Each page
// shows its text in Helvetica. Texts must not contain parentheses or
// backslashes.
func Build(texts ...string) []byte {
	var buf bytes.Buffer

	size := 4 + 2*len(texts)
	offsets := make([]int, size)

	writeObject := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	kids := make([]string, len(texts))
	for i := range texts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObject(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObject(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(texts)))
	writeObject(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range texts {
		pageNum, contentNum := 4+2*i, 5+2*i
		writeObject(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentNum))

		content := fmt.Sprintf("BT /F1 24 Tf 72 720 Td (%s) Tj ET", text)
		writeObject(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num < size; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xref)

	return buf.Bytes()
}

// Corrupt returns bytes that start like a PDF but cannot be parsed.
func Corrupt() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog /Pages 2 0 R\nthis is not a pdf\n")
}

// Truncated keeps only the header and the start of the first object.
func Truncated(data []byte) []byte {
	return append([]byte(nil), data[:min(len(data), 32)]...)
}

// Encrypt returns data encrypted with AES-256. An empty userPW yields a
// document that opens without a password.
func Encrypt(data []byte, userPW, ownerPW string) ([]byte, error) {
	api.DisableConfigDir()

	var buf bytes.Buffer
	if err := api.Encrypt(bytes.NewReader(data), &buf, model.NewAESConfiguration(userPW, ownerPW, 256)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

var showText = regexp.MustCompile(`\(([^)]*)\)\s*Tj`)

// PageTexts parses data and returns the shown text of every page in order.
func PageTexts(data []byte) ([]string, error) {
	ctx, err := read(data)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, ctx.PageCount)
	for i := 1; i <= ctx.PageCount; i++ {
		pageDict, _, _, err := ctx.PageDict(i, false)
		if err != nil {
			return nil, err
		}
		if pageDict == nil {
			return nil, fmt.Errorf("page %d not found", i)
		}

		content, err := ctx.PageContent(pageDict)
		if err != nil {
			return nil, err
		}

		var shown []string
		for _, m := range showText.FindAllSubmatch(content, -1) {
			shown = append(shown, string(m[1]))
		}
		texts = append(texts, strings.Join(shown, " "))
	}

	return texts, nil
}

// PageCount parses data and returns its page count.
func PageCount(data []byte) (int, error) {
	ctx, err := read(data)
	if err != nil {
		return 0, err
	}

	return ctx.PageCount, nil
}

func read(data []byte) (*model.Context, error) {
	api.DisableConfigDir()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}

	return ctx, nil
}
