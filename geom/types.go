// SPDX-License-Identifier: MIT

// Package geom: capability interfaces shared by every shape.
//
// Each shape comes as two concrete types: an immutable one (Vector, Point,
// Matrix, Quaternion) and a mutable one (MutableVector, ...). Both satisfy
// GeometricValue; the mutable ones also satisfy MutableGeometricValue.
// Shape-specific operand interfaces (VectorValue, PointValue, SquareMatrix,
// QuaternionValue) accept either variant and are sealed to this package.

package geom

import "github.com/katalvlaran/lvgeom/tolerance"

// Kind identifies the shape family of a value.
type Kind uint8

// Shape families.
const (
	KindVector Kind = iota + 1
	KindPoint
	KindMatrix
	KindQuaternion
)

// String returns the lower-case family name.
func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindPoint:
		return "point"
	case KindMatrix:
		return "matrix"
	case KindQuaternion:
		return "quaternion"
	default:
		return "unknown"
	}
}

// GeometricValue is the read-only capability of every value.
type GeometricValue interface {
	// Kind returns the shape family.
	Kind() Kind

	// Len returns the fixed component count.
	Len() int

	// At returns component i or ErrOutOfRange.
	At(i int) (float32, error)

	// Components returns a copy of the components (row-major for matrices).
	Components() []float32

	// Equals reports same kind, same length and tolerance-equal components.
	Equals(other GeometricValue) bool

	// EqualsWithin is Equals under a caller-supplied tolerance policy.
	EqualsWithin(other GeometricValue, p tolerance.Policy) bool

	// Hash hashes the raw components; Equals values hash alike unless they
	// differ within the tolerance band.
	Hash() uint64
}

// MutableGeometricValue adds in-place setters. Every setter is a no-op when
// the requested state already equals the current one; otherwise it writes,
// invalidates the derived caches and notifies the observer exactly once.
type MutableGeometricValue interface {
	GeometricValue

	// Set replaces all components; len(components) must equal Len().
	Set(components ...float32) error

	// SetFrom copies the components of a value of the same kind and length.
	SetFrom(src GeometricValue) error

	// SetAt replaces component i.
	SetAt(i int, v float32) error
}

// ChangeObserver receives a mutable value after each committed mutation.
// It runs synchronously on the mutating goroutine, before the setter returns.
type ChangeObserver[T any] interface {
	OnChanged(value T)
}

// ObserverFunc adapts a plain function to ChangeObserver.
type ObserverFunc[T any] func(value T)

// OnChanged calls f(value).
func (f ObserverFunc[T]) OnChanged(value T) { f(value) }
