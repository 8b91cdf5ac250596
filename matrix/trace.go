// SPDX-License-Identifier: MIT
// Package matrix - step-trace side channel.
//
// Purpose:
//   - Let callers observe stepwise elimination (LU, RowEchelon/Rank, Inverse):
//     one Step per planned operation, pairing a snapshot of the working matrix
//     with a description of the operation about to be applied.
//
// Contract:
//   - Recorders are passed per call via WithRecorder; there is no global sink.
//   - Snapshots are clones: a recorder can keep them, kernels never see them again.
//   - Recording never changes a kernel's result.

package matrix

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// StepDone is the description attached to the final snapshot of a trace.
const StepDone = "done"

const (
	fmtStepSwap      = "swap rows %d and %d"
	fmtStepEliminate = "eliminate column %d below pivot (%d,%d)"
	fmtStepSkip      = "skip column %d: no nonzero pivot at or below row %d"
	fmtStepNormalize = "normalize row %d by pivot"
	fmtStepClear     = "eliminate column %d from all other rows"
)

// Step is one trace record: the working matrix before Next is applied.
type Step[T any] struct {
	State *Dense[T]
	Next  string
}

// Recorder receives trace steps in order.
type Recorder[T any] interface {
	Record(s Step[T])
}

// StepLog is an in-memory Recorder. The zero value is ready to use.
type StepLog[T any] struct {
	steps []Step[T]
}

var _ Recorder[float64] = (*StepLog[float64])(nil)

// Record appends s.
func (l *StepLog[T]) Record(s Step[T]) { l.steps = append(l.steps, s) }

// Len returns the number of recorded steps.
func (l *StepLog[T]) Len() int { return len(l.steps) }

// Steps returns a copy of the recorded steps.
func (l *StepLog[T]) Steps() []Step[T] {
	out := make([]Step[T], len(l.steps))
	copy(out, l.steps)

	return out
}

// All iterates over the recorded steps in order.
func (l *StepLog[T]) All() iter.Seq2[int, Step[T]] {
	return func(yield func(int, Step[T]) bool) {
		for i, s := range l.steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Descriptions returns the Next field of every step, in order.
func (l *StepLog[T]) Descriptions() []string {
	out := make([]string, len(l.steps))
	for i, s := range l.steps {
		out[i] = s.Next
	}

	return out
}

// logRecorder forwards steps to a zap logger at debug level.
type logRecorder[T any] struct {
	logger *zap.Logger
	n      int
}

// LogRecorder returns a Recorder that writes each step to l at debug level.
// A nil logger discards the steps.
func LogRecorder[T any](l *zap.Logger) Recorder[T] {
	if l == nil {
		l = zap.NewNop()
	}

	return &logRecorder[T]{logger: l}
}

func (r *logRecorder[T]) Record(s Step[T]) {
	r.logger.Debug("elimination step",
		zap.Int("step", r.n),
		zap.String("next", s.Next),
		zap.Stringer("state", s.State),
	)
	r.n++
}

// record snapshots state into r (no-op when r is nil).
func record[T any](r Recorder[T], state *Dense[T], format string, args ...any) {
	if r == nil {
		return
	}
	next := format
	if len(args) > 0 {
		next = fmt.Sprintf(format, args...)
	}
	r.Record(Step[T]{State: state.Clone(), Next: next})
}
