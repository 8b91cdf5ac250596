// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Per-call configuration: a recorder or logger passed to one call never
//     leaks into another.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/numeric"
)

// log is the package logger; its level is controlled through go-log
// (GOLOG_LOG_LEVEL or logging.SetLogLevel("lvlalg/matrix", "debug")).
var log = logging.Logger("lvlalg/matrix")

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the elimination tolerance before conversion to the
// element type. Exact element types ignore it unless WithEpsilon is given.
const DefaultEpsilon = numeric.Nano

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64 // >= 0; meaningful only when epsSet
	epsSet   bool    // false => per-type constant table
	recorder any     // Recorder[T] for the call's element type, or nil
	logger   *zap.Logger
}

// WithEpsilon overrides the snapping tolerance for one call. The value is
// converted with the element type's FromFloat64, so integer kinds still
// truncate it to zero.
//
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.epsSet = true
	}
}

// WithRecorder attaches a step recorder to the call. Kernels that perform
// stepwise elimination (LUDecomposition, RowEchelon, Rank, Inverse) report
// every intermediate state to r. A recorder whose element type differs from
// the matrix's is ignored.
func WithRecorder[T any](r Recorder[T]) Option {
	return func(o *Options) { o.recorder = r }
}

// WithLogger routes kernel debug logs to l. A nil logger silences them.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{logger: log.Desugar()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// epsilonFor resolves the tolerance for element type T.
func epsilonFor[T any](o Options, f numeric.Field[T]) T {
	if o.epsSet {
		return f.FromFloat64(o.eps)
	}

	return numeric.Epsilon(f)
}

// recorderFor resolves the recorder for element type T (nil if none).
func recorderFor[T any](o Options) Recorder[T] {
	if o.recorder == nil {
		return nil
	}
	r, ok := o.recorder.(Recorder[T])
	if !ok {
		o.logger.Debug("recorder ignored: element type mismatch")
		return nil
	}

	return r
}
