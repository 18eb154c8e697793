// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadedFile is a single PDF received in a merge request.
// It is immutable once received and lives only for the duration of the
// request that carried it.
type UploadedFile struct {
	// Name is the original file name supplied by the client.
	Name string `json:"name"`

	// Data holds the raw bytes of the uploaded file.
	Data []byte `json:"-"`

	// Size is the declared size of the file in bytes. For multipart uploads
	// it equals the number of bytes read from the part.
	Size int64 `json:"size"`

	// ContentType is the media type declared for the multipart part.
	ContentType string `json:"content_type"`
}

// Batch is the ordered set of files submitted in one merge request.
// Order is significant: it defines the page order of the merged output.
type Batch []UploadedFile

// Len returns the number of files in the batch.
func (b Batch) Len() int {
	return len(b)
}

// TotalSize returns the aggregate declared size of all files in bytes.
func (b Batch) TotalSize() int64 {
	var total int64
	for _, f := range b {
		total += f.Size
	}
	return total
}
