// SPDX-License-Identifier: MIT

// Package geom - quaternions stored as (x, y, z, w), w the scalar part.
//
// Purpose:
//   - Rotation representation: Hamilton product, conjugate, inverse,
//     normalize, axis-angle construction, conversion to rotation matrices.
//
// Unit contract:
//   - Rotate assumes q is unit length and is silently wrong otherwise.
//   - RotateSafe normalizes a stack copy first and reports ErrZeroMagnitude.
//   - ToMatrix scales by 2/|q|², so it accepts any non-zero quaternion.

package geom

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/lvgeom/tolerance"
)

// QuaternionValue is implemented by *Quaternion and *MutableQuaternion.
type QuaternionValue interface {
	GeometricValue
	quaternion() *quatCore
}

const quatLen = 4

type quatCore struct {
	state
	magnitude derived[float32]
	class     derived[operandClass]
}

func (q *quatCore) quaternion() *quatCore { return q }

// Quaternion is an immutable quaternion. Magnitude, conjugate and inverse are
// cached forever once computed.
type Quaternion struct {
	quatCore
	conjugate derived[*Quaternion]
	inverse   derived[*Quaternion]
}

var _ QuaternionValue = (*Quaternion)(nil)

// NewQuaternion returns x·i + y·j + z·k + w.
func NewQuaternion(x, y, z, w float32) *Quaternion {
	return newQuaternion(newState(KindQuaternion, []float32{x, y, z, w}))
}

// IdentityQuaternion returns (0, 0, 0, 1).
func IdentityQuaternion() *Quaternion { return NewQuaternion(0, 0, 0, 1) }

// QuaternionFromSlice builds a quaternion from exactly 4 components (x, y, z, w).
func QuaternionFromSlice(components []float32) (*Quaternion, error) {
	if len(components) != quatLen {
		return nil, geomErrorf(opNew, fmt.Errorf("quaternion of %d components: %w", len(components), ErrBadLength))
	}

	return newQuaternion(newState(KindQuaternion, components)), nil
}

// QuaternionFromAxisAngle returns the unit rotation of angle radians about
// axis (3 components, normalized internally).
// Errors: ErrShapeMismatch, ErrZeroMagnitude (zero axis).
func QuaternionFromAxisAngle(axis VectorValue, angle float32, opts ...Option) (*Quaternion, error) {
	var next [quatLen]float32
	if err := axisAngle(next[:], axis, angle, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return newQuaternion(newState(KindQuaternion, next[:])), nil
}

func newQuaternion(s state) *Quaternion { return &Quaternion{quatCore: quatCore{state: s}} }

// Conjugate returns (-x, -y, -z, w) (cached; its conjugate is q itself).
func (q *Quaternion) Conjugate() *Quaternion {
	if q.conjugate.stale() {
		c := newQuaternion(state{kind: KindQuaternion, n: quatLen})
		conjugate(c.data[:quatLen], q.values())
		c.conjugate.store(q, nil)
		q.conjugate.store(c, nil)
	}
	c, _ := q.conjugate.load()

	return c
}

// Inverse returns q⁻¹ = conj(q)/|q|² (cached, including the error).
// Errors: ErrZeroMagnitude.
func (q *Quaternion) Inverse() (*Quaternion, error) {
	if q.inverse.stale() {
		inv := newQuaternion(state{kind: KindQuaternion, n: quatLen})
		if err := invertQuaternion(inv.data[:quatLen], q.values()); err != nil {
			q.inverse.store(nil, geomErrorf(opInverse, err))
		} else {
			q.inverse.store(inv, nil)
		}
	}

	return q.inverse.load()
}

// Mutable returns a mutable copy observed by obs (may be nil).
func (q *Quaternion) Mutable(obs ChangeObserver[*MutableQuaternion]) *MutableQuaternion {
	return newMutableQuaternion(q.state, obs)
}

// X returns the i coefficient.
func (q *quatCore) X() float32 { return q.data[0] }

// Y returns the j coefficient.
func (q *quatCore) Y() float32 { return q.data[1] }

// Z returns the k coefficient.
func (q *quatCore) Z() float32 { return q.data[2] }

// W returns the scalar part.
func (q *quatCore) W() float32 { return q.data[3] }

// Magnitude returns |q| (cached derived attribute).
func (q *quatCore) Magnitude() float32 {
	if q.magnitude.stale() {
		q.magnitude.store(math32.Sqrt(dot(q.values(), q.values())), nil)
	}
	m, _ := q.magnitude.load()

	return m
}

// IsIdentity reports whether q equals (0, 0, 0, 1) within tolerance.
func (q *quatCore) IsIdentity() bool { return q.classify() == classIdentity }

// IsUnit reports whether |q| is one within tolerance.
func (q *quatCore) IsUnit() bool { return tolerance.IsOne(q.Magnitude()) }

func (q *quatCore) classify() operandClass {
	if q.class.stale() {
		q.class.store(classifyQuaternion(q.values()), nil)
	}
	c, _ := q.class.load()

	return c
}

// Dot returns the 4D dot product. Errors: ErrNilValue.
func (q *quatCore) Dot(o QuaternionValue) (float32, error) {
	if isNil(o) {
		return 0, geomErrorf("Dot", ErrNilValue)
	}

	return dot(q.values(), o.quaternion().values()), nil
}

// Mul writes the Hamilton product q⊗o into out and returns out.
// Applying the result rotates by o first, then by q.
// An identity operand skips the general product.
func (q *quatCore) Mul(o QuaternionValue, out *MutableQuaternion) (*MutableQuaternion, error) {
	if isNil(o) || out == nil {
		return nil, geomErrorf(opMul, ErrNilValue)
	}
	oq := o.quaternion()

	var next [quatLen]float32
	switch productShortcut(q.classify(), oq.classify()) {
	case takeRight:
		copy(next[:], oq.values())
	case takeLeft:
		copy(next[:], q.values())
	default:
		mulQuaternion(next[:], q.values(), oq.values())
	}
	if err := out.write(opMul, next[:]); err != nil {
		return nil, err
	}

	return out, nil
}

// Normalize writes q/|q| into out and returns out. Errors: ErrZeroMagnitude.
func (q *quatCore) Normalize(out *MutableQuaternion) (*MutableQuaternion, error) {
	if out == nil {
		return nil, geomErrorf(opNormalize, ErrNilValue)
	}
	var next [quatLen]float32
	if err := normalizeQuaternion(next[:], q.values(), q.Magnitude()); err != nil {
		return nil, geomErrorf(opNormalize, err)
	}
	if err := out.write(opNormalize, next[:]); err != nil {
		return nil, err
	}

	return out, nil
}

// Slerp writes the spherical interpolation from q (t=0) to o (t=1) into out.
// Both operands must be unit quaternions. The shorter arc is taken; nearly
// parallel operands fall back to a normalized lerp.
func (q *quatCore) Slerp(o QuaternionValue, t float32, out *MutableQuaternion) (*MutableQuaternion, error) {
	if isNil(o) || out == nil {
		return nil, geomErrorf(opLerp, ErrNilValue)
	}
	a, b := q.values(), o.quaternion().values()
	var to [quatLen]float32
	copy(to[:], b)
	cos := dot(a, b)
	if cos < 0 {
		cos = -cos
		for i := range to {
			to[i] = -to[i]
		}
	}

	var next [quatLen]float32
	if tolerance.IsOne(cos) || cos > 1 {
		lerp(next[:], a, to[:], t)
		if err := normalizeQuaternion(next[:], next[:], math32.Sqrt(dot(next[:], next[:]))); err != nil {
			return nil, geomErrorf(opLerp, err)
		}
	} else {
		theta := math32.Acos(cos)
		sin := math32.Sin(theta)
		wa := math32.Sin((1-t)*theta) / sin
		wb := math32.Sin(t*theta) / sin
		for i := range next {
			next[i] = wa*a[i] + wb*to[i]
		}
	}
	if err := out.write(opLerp, next[:]); err != nil {
		return nil, err
	}

	return out, nil
}

// Rotate writes q·v·q* for a 3-component v into out and returns out.
// q must be unit length; use RotateSafe otherwise.
func (q *quatCore) Rotate(v VectorValue, out *MutableVector) (*MutableVector, error) {
	if err := checkRotateOperands(v, out); err != nil {
		return nil, geomErrorf(opRotate, err)
	}

	return q.rotate(q.values(), v, out)
}

// RotateSafe is Rotate on a normalized copy of q. Errors: ErrZeroMagnitude.
func (q *quatCore) RotateSafe(v VectorValue, out *MutableVector) (*MutableVector, error) {
	if err := checkRotateOperands(v, out); err != nil {
		return nil, geomErrorf(opRotate, err)
	}
	var unit [quatLen]float32
	if err := normalizeQuaternion(unit[:], q.values(), q.Magnitude()); err != nil {
		return nil, geomErrorf(opRotate, err)
	}

	return q.rotate(unit[:], v, out)
}

func (q *quatCore) rotate(unit []float32, v VectorValue, out *MutableVector) (*MutableVector, error) {
	if transformShortcut(q.classify()) {
		if err := out.write(opRotate, v.vector().values()); err != nil {
			return nil, err
		}
		return out, nil
	}
	var next [3]float32
	rotateByUnit(next[:], unit, v.vector().values())
	if err := out.write(opRotate, next[:]); err != nil {
		return nil, err
	}

	return out, nil
}

// ToMatrix writes the rotation matrix of q into out (3×3, or 4×4 with the
// translation part zero) and returns out. Errors: ErrZeroMagnitude,
// ErrShapeMismatch (out of order 2).
func (q *quatCore) ToMatrix(out *MutableMatrix) (*MutableMatrix, error) {
	if out == nil {
		return nil, geomErrorf(opToMatrix, ErrNilValue)
	}
	if out.order < 3 {
		return nil, geomErrorf(opToMatrix, fmt.Errorf("rotation into %dx%d: %w", out.order, out.order, ErrShapeMismatch))
	}
	n2 := dot(q.values(), q.values())
	if tolerance.IsZero(n2) {
		return nil, geomErrorf(opToMatrix, ErrZeroMagnitude)
	}
	s := 2 / n2
	x, y, z, w := q.data[0], q.data[1], q.data[2], q.data[3]

	n := out.order
	next := identityState(n)
	m := next.data[:]
	m[0], m[1], m[2] = 1-s*(y*y+z*z), s*(x*y-z*w), s*(x*z+y*w)
	m[n], m[n+1], m[n+2] = s*(x*y+z*w), 1-s*(x*x+z*z), s*(y*z-x*w)
	m[2*n], m[2*n+1], m[2*n+2] = s*(x*z-y*w), s*(y*z+x*w), 1-s*(x*x+y*y)
	if err := out.write(opToMatrix, next.values()); err != nil {
		return nil, err
	}

	return out, nil
}

// String implements fmt.Stringer.
func (q *quatCore) String() string { return formatTuple("Quaternion", q.values()) }

func checkRotateOperands(v VectorValue, out *MutableVector) error {
	if isNil(v) {
		return ErrNilValue
	}
	if v.Len() != 3 {
		return fmt.Errorf("rotate %d-vector: %w", v.Len(), ErrShapeMismatch)
	}

	return checkVectorOut(out, 3)
}

func conjugate(dst, src []float32) {
	dst[0], dst[1], dst[2], dst[3] = -src[0], -src[1], -src[2], src[3]
}

func invertQuaternion(dst, src []float32) error {
	n2 := dot(src, src)
	if tolerance.IsZero(n2) {
		return ErrZeroMagnitude
	}
	dst[0], dst[1], dst[2], dst[3] = -src[0]/n2, -src[1]/n2, -src[2]/n2, src[3]/n2

	return nil
}

// normalizeQuaternion writes src/mag into dst; dst may alias src.
func normalizeQuaternion(dst, src []float32, mag float32) error {
	if tolerance.IsZero(mag) {
		return ErrZeroMagnitude
	}
	for i := 0; i < quatLen; i++ {
		dst[i] = src[i] / mag
	}

	return nil
}

func axisAngle(dst []float32, axis VectorValue, angle float32, o Options) error {
	if isNil(axis) {
		return geomErrorf(opAxisAngle, ErrNilValue)
	}
	if axis.Len() != 3 {
		return geomErrorf(opAxisAngle, fmt.Errorf("axis of %d components: %w", axis.Len(), ErrShapeMismatch))
	}
	a := axis.vector()
	mag := a.Magnitude()
	if tolerance.IsZero(mag) {
		return geomErrorf(opAxisAngle, ErrZeroMagnitude)
	}
	half := angle / 2
	s := o.trig.Sin(half) / mag
	dst[0], dst[1], dst[2], dst[3] = a.data[0]*s, a.data[1]*s, a.data[2]*s, o.trig.Cos(half)

	return nil
}
