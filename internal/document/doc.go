// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document wraps pdfcpu behind three small interfaces used by the
// merge service:
//
//   - [Loader] parses an uploaded buffer into a [Document];
//   - [Merger] appends every page of a [Document] to a [MergedDocument];
//   - [Serializer] writes a [MergedDocument] to bytes.
//
// A [Document] is consumed by the merge that copies it. A [MergedDocument]
// is owned by one request and becomes unusable after a failed append, so a
// partially copied source never reaches the output.
package document
