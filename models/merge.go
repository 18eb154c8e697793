// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MergeMetrics describes a completed merge. It is filled in incrementally
// while the batch is processed and finalized once the output is serialized.
type MergeMetrics struct {
	// TotalInputFiles is the number of files that were merged.
	TotalInputFiles int `json:"total_input_files"`

	// TotalInputBytes is the sum of the declared sizes of all input files.
	TotalInputBytes int64 `json:"total_input_bytes"`

	// TotalPages is the sum of page counts of all loaded input documents.
	TotalPages int `json:"total_pages"`

	// OutputBytes is the length of the serialized merged document.
	OutputBytes int64 `json:"output_bytes"`

	// ElapsedMillis is the time from the start of validation to the end of
	// serialization, in milliseconds.
	ElapsedMillis int64 `json:"elapsed_millis"`
}

// CompressionRatio returns OutputBytes / TotalInputBytes.
//
// Despite the name no compression pass is applied; the value only reflects
// the size difference caused by re-encoding. Zero input yields zero.
func (m MergeMetrics) CompressionRatio() float64 {
	if m.TotalInputBytes == 0 {
		return 0
	}
	return float64(m.OutputBytes) / float64(m.TotalInputBytes)
}

// MergeResult is the successful outcome of a merge: the merged PDF bytes and
// the metrics collected while producing them.
type MergeResult struct {
	Output  []byte
	Metrics MergeMetrics
}
