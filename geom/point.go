// SPDX-License-Identifier: MIT

// Package geom - points (2 or 3 components).
//
// A point is a position, not a direction: it is translated by vectors, the
// difference of two points is a vector, and matrices transform it with an
// implicit homogeneous w = 1 (see Matrix.TransformPoint).

package geom

import (
	"fmt"
)

// PointValue is implemented by *Point and *MutablePoint.
type PointValue interface {
	GeometricValue
	point() *pointCore
}

type pointCore struct {
	state
}

func (p *pointCore) point() *pointCore { return p }

// Point is an immutable 2- or 3-component point.
type Point struct {
	pointCore
}

var _ PointValue = (*Point)(nil)

// NewPoint builds a point from 2 or 3 components. Errors: ErrBadLength.
func NewPoint(components ...float32) (*Point, error) {
	if err := checkPointLen(len(components)); err != nil {
		return nil, geomErrorf(opNew, err)
	}

	return &Point{pointCore{newState(KindPoint, components)}}, nil
}

// Pt2 returns the point (x, y).
func Pt2(x, y float32) *Point { return &Point{pointCore{newState(KindPoint, []float32{x, y})}} }

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float32) *Point { return &Point{pointCore{newState(KindPoint, []float32{x, y, z})}} }

// PointFrom converts a point or vector to a dim-component point, dropping or
// zero-filling trailing components.
func PointFrom(src GeometricValue, dim int) (*Point, error) {
	s, err := resizePoint(src, dim)
	if err != nil {
		return nil, geomErrorf(opFrom, err)
	}

	return &Point{pointCore{s}}, nil
}

// Mutable returns a mutable copy observed by obs (may be nil).
func (p *Point) Mutable(obs ChangeObserver[*MutablePoint]) *MutablePoint {
	return newMutablePoint(p.state, obs)
}

// X returns component 0.
func (p *pointCore) X() float32 { return p.data[0] }

// Y returns component 1.
func (p *pointCore) Y() float32 { return p.data[1] }

// Z returns component 2, or 0 for a 2D point.
func (p *pointCore) Z() float32 { return p.data[2] }

// Translate writes p+v into out and returns out.
func (p *pointCore) Translate(v VectorValue, out *MutablePoint) (*MutablePoint, error) {
	if err := p.checkDirection(v); err != nil {
		return nil, geomErrorf(opTranslate, err)
	}
	if err := checkPointOut(out, p.n); err != nil {
		return nil, geomErrorf(opTranslate, err)
	}
	var next [3]float32
	a, b := p.values(), v.vector().values()
	for i := range a {
		next[i] = a[i] + b[i]
	}
	if err := out.write(opTranslate, next[:p.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// Sub writes the vector p-o (from o to p) into out and returns out.
func (p *pointCore) Sub(o PointValue, out *MutableVector) (*MutableVector, error) {
	if err := p.checkOperand(o); err != nil {
		return nil, geomErrorf(opSub, err)
	}
	if err := checkVectorOut(out, p.n); err != nil {
		return nil, geomErrorf(opSub, err)
	}
	var next [3]float32
	a, b := p.values(), o.point().values()
	for i := range a {
		next[i] = a[i] - b[i]
	}
	if err := out.write(opSub, next[:p.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// Distance returns |p-o|.
func (p *pointCore) Distance(o PointValue) (float32, error) {
	if err := p.checkOperand(o); err != nil {
		return 0, geomErrorf("Distance", err)
	}

	return distance(p.values(), o.point().values()), nil
}

// Lerp writes p + t(o-p) into out and returns out.
func (p *pointCore) Lerp(o PointValue, t float32, out *MutablePoint) (*MutablePoint, error) {
	if err := p.checkOperand(o); err != nil {
		return nil, geomErrorf(opLerp, err)
	}
	if err := checkPointOut(out, p.n); err != nil {
		return nil, geomErrorf(opLerp, err)
	}
	var next [3]float32
	lerp(next[:p.n], p.values(), o.point().values(), t)
	if err := out.write(opLerp, next[:p.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// String implements fmt.Stringer.
func (p *pointCore) String() string { return formatTuple("Point", p.values()) }

func (p *pointCore) checkOperand(o PointValue) error {
	if isNil(o) {
		return ErrNilValue
	}
	if o.Len() != p.n {
		return fmt.Errorf("%d vs %d components: %w", p.n, o.Len(), ErrShapeMismatch)
	}

	return nil
}

func (p *pointCore) checkDirection(v VectorValue) error {
	if isNil(v) {
		return ErrNilValue
	}
	if v.Len() != p.n {
		return fmt.Errorf("point of %d vs vector of %d components: %w", p.n, v.Len(), ErrShapeMismatch)
	}

	return nil
}

func checkPointOut(out *MutablePoint, n int) error {
	if out == nil {
		return ErrNilValue
	}
	if out.n != n {
		return fmt.Errorf("output has %d components, want %d: %w", out.n, n, ErrShapeMismatch)
	}

	return nil
}

func checkPointLen(n int) error {
	if n < 2 || n > 3 {
		return fmt.Errorf("point of %d components: %w", n, ErrBadLength)
	}

	return nil
}

func resizePoint(src GeometricValue, dim int) (state, error) {
	if isNil(src) {
		return state{}, ErrNilValue
	}
	if k := src.Kind(); k != KindVector && k != KindPoint {
		return state{}, fmt.Errorf("point from %s: %w", k, ErrShapeMismatch)
	}
	if err := checkPointLen(dim); err != nil {
		return state{}, err
	}
	var buf [maxComponents]float32
	s := state{kind: KindPoint, n: dim}
	copy(s.data[:dim], readValues(src, &buf))

	return s, nil
}
