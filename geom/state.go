// SPDX-License-Identifier: MIT

// Package geom - fixed-size component storage shared by every shape.
//
// Purpose:
//   - One flat buffer (row-major for matrices) sized for the largest shape (4×4).
//   - Bounds-checked public accessors; unexported slice access for kernels.
//   - Tolerant equality and hashing implemented once for all shapes.

package geom

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/katalvlaran/lvgeom/tolerance"
)

// maxComponents is the component count of the largest shape (4×4 matrix).
const maxComponents = 16

// state is the component buffer embedded by every shape core.
// n never changes after construction.
type state struct {
	kind Kind
	n    int
	data [maxComponents]float32
}

// stateful is implemented by every value of this package; readValues uses it
// to skip the At() fallback.
type stateful interface {
	ref() *state
}

func newState(kind Kind, components []float32) state {
	s := state{kind: kind, n: len(components)}
	copy(s.data[:], components)

	return s
}

func (s *state) ref() *state { return s }

// values exposes the live components to kernels. Never hand it to callers.
func (s *state) values() []float32 { return s.data[:s.n] }

// Kind returns the shape family.
func (s *state) Kind() Kind { return s.kind }

// Len returns the component count.
func (s *state) Len() int { return s.n }

// At returns component i.
// Errors: ErrOutOfRange.
func (s *state) At(i int) (float32, error) {
	if i < 0 || i >= s.n {
		return 0, geomErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, s.n, ErrOutOfRange))
	}

	return s.data[i], nil
}

// Components returns a copy of the components.
func (s *state) Components() []float32 {
	out := make([]float32, s.n)
	copy(out, s.values())

	return out
}

// Equals reports same kind, same length and tolerance-equal components.
func (s *state) Equals(other GeometricValue) bool {
	if !s.sameShape(other) {
		return false
	}
	var buf [maxComponents]float32

	return tolerance.EqualSlices(s.values(), readValues(other, &buf))
}

// EqualsWithin is Equals under p.
func (s *state) EqualsWithin(other GeometricValue, p tolerance.Policy) bool {
	if !s.sameShape(other) {
		return false
	}
	var buf [maxComponents]float32

	return p.EqualSlices(s.values(), readValues(other, &buf))
}

// EqualsComponents compares against a raw component list of the same length.
func (s *state) EqualsComponents(components ...float32) bool {
	return tolerance.EqualSlices(s.values(), components)
}

// Hash returns an FNV-1a hash of kind, length and component bits.
// -0 is folded into +0 so the two zeros, which always compare equal, hash alike.
func (s *state) Hash() uint64 {
	h := fnv.New64a()
	var word [4]byte
	_, _ = h.Write([]byte{byte(s.kind), byte(s.n)})
	for _, v := range s.values() {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(v))
		_, _ = h.Write(word[:])
	}

	return h.Sum64()
}

func (s *state) sameShape(other GeometricValue) bool {
	return !isNil(other) && other.Kind() == s.kind && other.Len() == s.n
}

// isNil reports whether v is nil or a nil pointer to one of this package's
// value types. Foreign implementations are trusted to be usable.
func isNil(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *Vector:
		return t == nil
	case *MutableVector:
		return t == nil
	case *Point:
		return t == nil
	case *MutablePoint:
		return t == nil
	case *Matrix:
		return t == nil
	case *MutableMatrix:
		return t == nil
	case *Quaternion:
		return t == nil
	case *MutableQuaternion:
		return t == nil
	default:
		return false
	}
}

// readValues returns the components of v without copying when v belongs to
// this package, or via At() into buf otherwise. The result is read-only.
func readValues(v GeometricValue, buf *[maxComponents]float32) []float32 {
	if sv, ok := v.(stateful); ok {
		return sv.ref().values()
	}
	n := min(v.Len(), maxComponents)
	for i := 0; i < n; i++ {
		buf[i], _ = v.At(i)
	}

	return buf[:n]
}
