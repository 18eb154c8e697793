// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
)

// FileError reports a file of the batch that could not be loaded or copied.
// It terminates the merge.
type FileError struct {
	// FileName is the name the file was uploaded with.
	FileName string
	// Index is the zero-based position of the file in the batch.
	Index int
	// Reason is the diagnostic message of the underlying failure.
	Reason string
	// Err is the underlying error (wrapping document.ErrParse or document.ErrCopy).
	Err error
}

func newFileError(index int, name string, err error) *FileError {
	return &FileError{
		FileName: name,
		Index:    index,
		Reason:   err.Error(),
		Err:      err,
	}
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to process file %s: %s", e.FileName, e.Reason)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
