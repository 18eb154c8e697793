// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pdf-merger/internal/logger"
)

// MergeState is a step of a single merge.
//
//	Idle -> Validating -> Loading[i] -> Copying[i] -> (Loading[i+1] | Serializing) -> Done
//
// Any step may move to Failed.
type MergeState int

const (
	StateIdle MergeState = iota
	StateValidating
	StateLoading
	StateCopying
	StateSerializing
	StateDone
	StateFailed
)

func (s MergeState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateLoading:
		return "loading"
	case StateCopying:
		return "copying"
	case StateSerializing:
		return "serializing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transition may follow s.
func (s MergeState) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// mergeRun tracks the state of one Merge call. It is never shared.
type mergeRun struct {
	state  MergeState
	index  int
	file   string
	err    error
	logger *logger.Logger
}

func newMergeRun(logger *logger.Logger) *mergeRun {
	return &mergeRun{state: StateIdle, index: -1, logger: logger}
}

// to moves the run to state. Transitions out of a terminal state are ignored.
func (r *mergeRun) to(state MergeState) {
	if r.state.Terminal() {
		return
	}

	r.logger.Debug().
		Stringer("from", r.state).
		Stringer("to", state).
		Int("index", r.index).
		Str("file", r.file).
		Msg("merge state transition")

	r.state = state
}

// toFile moves the run to a per-file state for file i.
func (r *mergeRun) toFile(state MergeState, i int, name string) {
	r.index, r.file = i, name
	r.to(state)
}

// fail moves the run to Failed and records err.
func (r *mergeRun) fail(err error) error {
	r.to(StateFailed)
	r.err = err
	return err
}
