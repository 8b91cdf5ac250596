// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlalg/matrix"
)

// TestDefaultOptions_Documented verifies that gatherOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.False(t, o.EpsSet, "per-type epsilon by default")
	require.False(t, o.HasRecorder, "no recorder by default")
	require.True(t, o.HasLogger, "package logger by default")
	require.Equal(t, 1e-9, matrix.DefaultEpsilon)
}

// TestOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(0))
	require.True(t, o.EpsSet)
	require.Equal(t, 0.0, o.Eps)

	var log matrix.StepLog[float64]
	o = matrix.GatherOptionsSnapshot_TestOnly(nil, matrix.WithRecorder[float64](&log), matrix.WithLogger(nil))
	require.True(t, o.HasRecorder)
	require.True(t, o.HasLogger, "nil logger falls back to a no-op logger")
	require.False(t, o.EpsSet)
}

// TestWithEpsilon_PanicsOnInvalid checks programmer-error panics.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.PanicsWithValue(t, matrix.PanicEpsilonInvalid_TestOnly, func() {
			_ = matrix.WithEpsilon(eps)
		})
	}
}

// TestWithEpsilon_ControlsSnapping shows a custom tolerance changing the
// echelon form: the 1e-6 residue survives the default and is snapped at 1e-3.
func TestWithEpsilon_ControlsSnapping(t *testing.T) {
	m := MustNew(t, 2, 2, 1, 1, 1, 1+1e-6)

	rank, err := matrix.Rank(m)
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	rank, err = matrix.Rank(m, matrix.WithEpsilon(1e-3))
	require.NoError(t, err)
	require.Equal(t, 1, rank)
}

// TestWithRecorder_TypeMismatchIgnored verifies a recorder for another element
// type is ignored (and reported at debug) instead of failing the call.
func TestWithRecorder_TypeMismatchIgnored(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var wrong matrix.StepLog[float32]

	_, err := matrix.RowEchelon(MustNew(t, 2, 2, 1, 2, 3, 4),
		matrix.WithRecorder[float32](&wrong),
		matrix.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)
	require.Zero(t, wrong.Len())
	require.Equal(t, 1, logs.FilterMessage("recorder ignored: element type mismatch").Len())
}
