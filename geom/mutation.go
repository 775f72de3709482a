// SPDX-License-Identifier: MIT

// Package geom - the setter pipeline shared by every mutable shape.
//
// Every write, whether a plain setter, a compound operator or a binary
// operation targeting an output value, funnels through mutation.commit:
//
//	tolerance no-op check → write → invalidate owned caches → notify observer
//
// Derived cells (transpose, inverse, conjugate) are the exception: a
// recompute goes through mutation.refresh, which always writes.
//
// Concurrency: there is no locking. A mutable value must be mutated by one
// goroutine at a time; the caller serializes access.

package geom

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/tolerance"
)

// cacheOwner is implemented by each mutable type; it resets every derived
// cache the instance owns.
type cacheOwner interface {
	invalidateCaches()
}

// mutation carries the observer of a mutable value and whether it is a
// sealed derived cell. T is the mutable type itself.
type mutation[T cacheOwner] struct {
	observer ChangeObserver[T]
	sealed   bool
}

// commit writes next into s unless it already equals the current components.
// Returns true when a mutation was committed. Callers validate len(next) == s.n.
func (mu *mutation[T]) commit(s *state, next []float32, self T) bool {
	if tolerance.EqualSlices(s.values(), next) {
		return false
	}
	copy(s.data[:s.n], next)
	self.invalidateCaches()
	if mu.observer != nil {
		mu.observer.OnChanged(self)
	}

	return true
}

// refresh overwrites a derived cell with a recomputed value. It bypasses the
// no-op check: a cell must hold exactly the latest result, however close it
// is to the previous one. Cells carry no observer.
func (mu *mutation[T]) refresh(s *state, next []float32, self T) {
	copy(s.data[:s.n], next)
	self.invalidateCaches()
}

// write is commit behind the read-only guard. Used by binary operations
// writing into an output value.
func (mu *mutation[T]) write(op string, s *state, self T, next []float32) error {
	if mu.sealed {
		return geomErrorf(op, ErrReadOnly)
	}
	mu.commit(s, next, self)

	return nil
}

func (mu *mutation[T]) set(s *state, self T, components []float32) error {
	if mu.sealed {
		return geomErrorf(opSet, ErrReadOnly)
	}
	if len(components) != s.n {
		return geomErrorf(opSet, fmt.Errorf("got %d components, want %d: %w", len(components), s.n, ErrBadLength))
	}
	mu.commit(s, components, self)

	return nil
}

func (mu *mutation[T]) setFrom(s *state, self T, src GeometricValue) error {
	if mu.sealed {
		return geomErrorf(opSetFrom, ErrReadOnly)
	}
	if isNil(src) {
		return geomErrorf(opSetFrom, ErrNilValue)
	}
	if !s.sameShape(src) {
		return geomErrorf(opSetFrom, fmt.Errorf("%s[%d] from %s[%d]: %w", s.kind, s.n, src.Kind(), src.Len(), ErrShapeMismatch))
	}
	var buf [maxComponents]float32
	mu.commit(s, readValues(src, &buf), self)

	return nil
}

func (mu *mutation[T]) setAt(s *state, self T, i int, v float32) error {
	if mu.sealed {
		return geomErrorf(opSetAt, ErrReadOnly)
	}
	if i < 0 || i >= s.n {
		return geomErrorf(opSetAt, fmt.Errorf("index %d of %d: %w", i, s.n, ErrOutOfRange))
	}
	next := s.data
	next[i] = v
	mu.commit(s, next[:s.n], self)

	return nil
}
