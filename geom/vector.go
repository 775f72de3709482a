// SPDX-License-Identifier: MIT

// Package geom - vectors (2, 3 or 4 components).
//
// Purpose:
//   - vecCore holds the components and the magnitude cache and implements every
//     read-only operation once; Vector and MutableVector embed it.
//   - Operations never change the receiver: they write into an explicit
//     *MutableVector output (which may be the receiver itself) and return it.
//
// Complexity quicksheet:
//   - Add/Sub/Scale/Negate/Lerp/Dot: O(n); Magnitude: O(n) once, then O(1).

package geom

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/lvgeom/tolerance"
)

// VectorValue is implemented by *Vector and *MutableVector.
type VectorValue interface {
	GeometricValue
	vector() *vecCore
}

type vecCore struct {
	state
	magnitude derived[float32]
}

func (v *vecCore) vector() *vecCore { return v }

// Vector is an immutable 2-, 3- or 4-component vector.
// Its magnitude is computed on first access and cached forever.
type Vector struct {
	vecCore
}

var (
	_ VectorValue    = (*Vector)(nil)
	_ GeometricValue = (*Vector)(nil)
)

// NewVector builds a vector from 2, 3 or 4 components.
// Errors: ErrBadLength.
func NewVector(components ...float32) (*Vector, error) {
	if err := checkVectorLen(len(components)); err != nil {
		return nil, geomErrorf(opNew, err)
	}

	return &Vector{vecCore{state: newState(KindVector, components)}}, nil
}

// Vec2 returns the vector (x, y).
func Vec2(x, y float32) *Vector { return &Vector{vecCore{state: newState(KindVector, []float32{x, y})}} }

// Vec3 returns the vector (x, y, z).
func Vec3(x, y, z float32) *Vector {
	return &Vector{vecCore{state: newState(KindVector, []float32{x, y, z})}}
}

// Vec4 returns the vector (x, y, z, w).
func Vec4(x, y, z, w float32) *Vector {
	return &Vector{vecCore{state: newState(KindVector, []float32{x, y, z, w})}}
}

// VectorFrom converts a vector or point to a dim-component vector.
// Narrowing drops trailing components; widening fills them with 0.
// Errors: ErrNilValue, ErrShapeMismatch (other kinds), ErrBadLength (dim).
func VectorFrom(src GeometricValue, dim int) (*Vector, error) {
	s, err := resizeVector(src, dim)
	if err != nil {
		return nil, geomErrorf(opFrom, err)
	}

	return &Vector{vecCore{state: s}}, nil
}

// Mutable returns a mutable copy observed by obs (may be nil).
func (v *Vector) Mutable(obs ChangeObserver[*MutableVector]) *MutableVector {
	return &MutableVector{vecCore: vecCore{state: v.state}, mut: mutation[*MutableVector]{observer: obs}}
}

// X returns component 0.
func (v *vecCore) X() float32 { return v.data[0] }

// Y returns component 1.
func (v *vecCore) Y() float32 { return v.data[1] }

// Z returns component 2, or 0 for a 2-component vector.
func (v *vecCore) Z() float32 { return v.data[2] }

// W returns component 3, or 0 for vectors with fewer components.
func (v *vecCore) W() float32 { return v.data[3] }

// Magnitude returns the Euclidean length (cached derived attribute).
func (v *vecCore) Magnitude() float32 {
	if v.magnitude.stale() {
		v.magnitude.store(math32.Sqrt(dot(v.values(), v.values())), nil)
	}
	m, _ := v.magnitude.load()

	return m
}

// MagnitudeSquared returns the squared length (not cached).
func (v *vecCore) MagnitudeSquared() float32 { return dot(v.values(), v.values()) }

// IsZero reports whether every component is zero within tolerance.
func (v *vecCore) IsZero() bool {
	for _, c := range v.values() {
		if !tolerance.IsZero(c) {
			return false
		}
	}

	return true
}

// Dot returns v·o. Errors: ErrNilValue, ErrShapeMismatch.
func (v *vecCore) Dot(o VectorValue) (float32, error) {
	if err := v.checkOperand(o); err != nil {
		return 0, geomErrorf("Dot", err)
	}

	return dot(v.values(), o.vector().values()), nil
}

// Distance returns |v-o|. Errors: ErrNilValue, ErrShapeMismatch.
func (v *vecCore) Distance(o VectorValue) (float32, error) {
	if err := v.checkOperand(o); err != nil {
		return 0, geomErrorf("Distance", err)
	}

	return distance(v.values(), o.vector().values()), nil
}

// Add writes v+o into out and returns out.
func (v *vecCore) Add(o VectorValue, out *MutableVector) (*MutableVector, error) {
	return v.combine(opAdd, o, 1, out)
}

// Sub writes v-o into out and returns out.
func (v *vecCore) Sub(o VectorValue, out *MutableVector) (*MutableVector, error) {
	return v.combine(opSub, o, -1, out)
}

func (v *vecCore) combine(op string, o VectorValue, sign float32, out *MutableVector) (*MutableVector, error) {
	if err := v.checkOperand(o); err != nil {
		return nil, geomErrorf(op, err)
	}
	if err := checkVectorOut(out, v.n); err != nil {
		return nil, geomErrorf(op, err)
	}
	var next [4]float32
	a, b := v.values(), o.vector().values()
	for i := range a {
		next[i] = a[i] + sign*b[i]
	}
	if err := out.write(op, next[:v.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// Scale writes s·v into out and returns out.
func (v *vecCore) Scale(s float32, out *MutableVector) (*MutableVector, error) {
	if err := checkVectorOut(out, v.n); err != nil {
		return nil, geomErrorf(opScale, err)
	}
	var next [4]float32
	for i, c := range v.values() {
		next[i] = c * s
	}
	if err := out.write(opScale, next[:v.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// Negate writes -v into out and returns out.
func (v *vecCore) Negate(out *MutableVector) (*MutableVector, error) {
	if err := checkVectorOut(out, v.n); err != nil {
		return nil, geomErrorf(opNegate, err)
	}
	var next [4]float32
	for i, c := range v.values() {
		next[i] = -c
	}
	if err := out.write(opNegate, next[:v.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// Lerp writes v + t(o-v) into out and returns out.
func (v *vecCore) Lerp(o VectorValue, t float32, out *MutableVector) (*MutableVector, error) {
	if err := v.checkOperand(o); err != nil {
		return nil, geomErrorf(opLerp, err)
	}
	if err := checkVectorOut(out, v.n); err != nil {
		return nil, geomErrorf(opLerp, err)
	}
	var next [4]float32
	lerp(next[:v.n], v.values(), o.vector().values(), t)
	if err := out.write(opLerp, next[:v.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// Cross writes v×o into out (3-component vectors only) and returns out.
func (v *vecCore) Cross(o VectorValue, out *MutableVector) (*MutableVector, error) {
	if v.n != 3 {
		return nil, geomErrorf(opCross, fmt.Errorf("cross of %d components: %w", v.n, ErrShapeMismatch))
	}
	if err := v.checkOperand(o); err != nil {
		return nil, geomErrorf(opCross, err)
	}
	if err := checkVectorOut(out, 3); err != nil {
		return nil, geomErrorf(opCross, err)
	}
	var next [3]float32
	cross(next[:], v.values(), o.vector().values())
	if err := out.write(opCross, next[:]); err != nil {
		return nil, err
	}

	return out, nil
}

// Normalize writes v/|v| into out and returns out.
// Errors: ErrZeroMagnitude when |v| is zero within tolerance.
func (v *vecCore) Normalize(out *MutableVector) (*MutableVector, error) {
	if err := checkVectorOut(out, v.n); err != nil {
		return nil, geomErrorf(opNormalize, err)
	}
	m := v.Magnitude()
	if tolerance.IsZero(m) {
		return nil, geomErrorf(opNormalize, ErrZeroMagnitude)
	}
	var next [4]float32
	for i, c := range v.values() {
		next[i] = c / m
	}
	if err := out.write(opNormalize, next[:v.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// String implements fmt.Stringer.
func (v *vecCore) String() string { return formatTuple("Vector", v.values()) }

func (v *vecCore) checkOperand(o VectorValue) error {
	if isNil(o) {
		return ErrNilValue
	}
	if o.Len() != v.n {
		return fmt.Errorf("%d vs %d components: %w", v.n, o.Len(), ErrShapeMismatch)
	}

	return nil
}

func checkVectorOut(out *MutableVector, n int) error {
	if out == nil {
		return ErrNilValue
	}
	if out.n != n {
		return fmt.Errorf("output has %d components, want %d: %w", out.n, n, ErrShapeMismatch)
	}

	return nil
}

func checkVectorLen(n int) error {
	if n < 2 || n > 4 {
		return fmt.Errorf("vector of %d components: %w", n, ErrBadLength)
	}

	return nil
}

// resizeVector copies src (a vector or point) into a dim-component vector
// state, zero-filling new axes.
func resizeVector(src GeometricValue, dim int) (state, error) {
	if isNil(src) {
		return state{}, ErrNilValue
	}
	if k := src.Kind(); k != KindVector && k != KindPoint {
		return state{}, fmt.Errorf("vector from %s: %w", k, ErrShapeMismatch)
	}
	if err := checkVectorLen(dim); err != nil {
		return state{}, err
	}
	var buf [maxComponents]float32
	s := state{kind: KindVector, n: dim}
	copy(s.data[:dim], readValues(src, &buf))

	return s, nil
}

func distance(a, b []float32) float32 {
	var sum, d float32
	for i := range a {
		d = a[i] - b[i]
		sum += d * d
	}

	return math32.Sqrt(sum)
}

func lerp(dst, a, b []float32, t float32) {
	for i := range a {
		dst[i] = a[i] + t*(b[i]-a[i])
	}
}

func cross(dst, a, b []float32) {
	dst[0] = a[1]*b[2] - a[2]*b[1]
	dst[1] = a[2]*b[0] - a[0]*b[2]
	dst[2] = a[0]*b[1] - a[1]*b[0]
}
