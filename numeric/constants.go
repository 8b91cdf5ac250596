// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"reflect"
	"sync"
)

// Nano is the default elimination tolerance before conversion to T.
// Integer kinds truncate it to zero.
const Nano = 1e-9

// Constants is the per-type constant table.
type Constants[T any] struct {
	// Epsilon: values with |v| < Epsilon are snapped to zero after an
	// elimination step. Zero for exact fields and integer kinds.
	Epsilon T
	Pi      T
	E       T
}

// constantTable maps reflect.Type -> Constants[T]. Entries are written once.
var constantTable sync.Map

// ConstantsOf returns the constant table for T, computing it with f on the
// first call for T. Later calls return the stored entry even when a
// different Field for the same T is passed.
func ConstantsOf[T any](f Field[T]) Constants[T] {
	key := reflect.TypeFor[T]()
	if v, ok := constantTable.Load(key); ok {
		return v.(Constants[T])
	}

	c := Constants[T]{
		Epsilon: f.FromFloat64(Nano),
		Pi:      f.FromFloat64(math.Pi),
		E:       f.FromFloat64(math.E),
	}
	if ex, ok := f.(exact); ok && ex.Exact() {
		c.Epsilon = f.Zero()
	}
	v, _ := constantTable.LoadOrStore(key, c)

	return v.(Constants[T])
}

// Epsilon is ConstantsOf(f).Epsilon.
func Epsilon[T any](f Field[T]) T { return ConstantsOf(f).Epsilon }
