// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/document_mock.go -package=mock

// Loader parses raw PDF bytes.
type Loader interface {
	// Load parses data into a Document named name. Encrypted documents that
	// open with an empty user password load normally. Any failure wraps
	// ErrParse.
	Load(ctx context.Context, name string, data []byte) (*Document, error)
}

// Merger copies pages between documents.
type Merger interface {
	// Append copies every page of src, in order, to the end of dst. Either
	// all pages of src are appended or an error wrapping ErrCopy is returned
	// and dst is marked as failed.
	Append(ctx context.Context, dst *MergedDocument, src *Document) error
}

// Serializer encodes a merged document.
type Serializer interface {
	// Serialize writes doc as PDF bytes, preferring object streams. Any
	// failure wraps ErrSerialize.
	Serialize(ctx context.Context, doc *MergedDocument) ([]byte, error)
}
