// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose the elimination predicate and a read-only view of Options to
//     matrix_test ONLY, without widening the production API.
//   - Keep ALL test-only bridges co-located here.

// OptionsSnapshot is a stable, read-only view of the internal Options.
type OptionsSnapshot struct {
	Eps         float64
	EpsSet      bool
	HasRecorder bool
	HasLogger   bool
}

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Eps:         o.eps,
		EpsSet:      o.epsSet,
		HasRecorder: o.recorder != nil,
		HasLogger:   o.logger != nil,
	}
}

// Eliminated_TestOnly forwards to the elimination loop's termination predicate.
func Eliminated_TestOnly[T any](m *Dense[T]) bool { return eliminated(m) }
