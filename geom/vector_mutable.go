// SPDX-License-Identifier: MIT

package geom

// MutableVector is a vector that can be changed in place.
//
// Every setter is a no-op when the new components equal the current ones
// within tolerance; otherwise it writes them, drops the cached magnitude and
// notifies the observer once. Not safe for concurrent mutation.
type MutableVector struct {
	vecCore
	mut mutation[*MutableVector]
}

var _ MutableGeometricValue = (*MutableVector)(nil)

// NewMutableVector builds a mutable vector from 2, 3 or 4 components.
// obs may be nil; it cannot be changed later.
// Errors: ErrBadLength.
func NewMutableVector(obs ChangeObserver[*MutableVector], components ...float32) (*MutableVector, error) {
	if err := checkVectorLen(len(components)); err != nil {
		return nil, geomErrorf(opNew, err)
	}

	return newMutableVector(newState(KindVector, components), obs), nil
}

// NewMutableVec2 returns the mutable vector (x, y).
func NewMutableVec2(x, y float32, obs ChangeObserver[*MutableVector]) *MutableVector {
	return newMutableVector(newState(KindVector, []float32{x, y}), obs)
}

// NewMutableVec3 returns the mutable vector (x, y, z).
func NewMutableVec3(x, y, z float32, obs ChangeObserver[*MutableVector]) *MutableVector {
	return newMutableVector(newState(KindVector, []float32{x, y, z}), obs)
}

// NewMutableVec4 returns the mutable vector (x, y, z, w).
func NewMutableVec4(x, y, z, w float32, obs ChangeObserver[*MutableVector]) *MutableVector {
	return newMutableVector(newState(KindVector, []float32{x, y, z, w}), obs)
}

// MutableVectorFrom is the mutable counterpart of VectorFrom.
func MutableVectorFrom(src GeometricValue, dim int, obs ChangeObserver[*MutableVector]) (*MutableVector, error) {
	s, err := resizeVector(src, dim)
	if err != nil {
		return nil, geomErrorf(opFrom, err)
	}

	return newMutableVector(s, obs), nil
}

func newMutableVector(s state, obs ChangeObserver[*MutableVector]) *MutableVector {
	return &MutableVector{vecCore: vecCore{state: s}, mut: mutation[*MutableVector]{observer: obs}}
}

// Set replaces all components.
func (m *MutableVector) Set(components ...float32) error {
	return m.mut.set(&m.state, m, components)
}

// SetFrom copies another vector of the same dimension.
func (m *MutableVector) SetFrom(src GeometricValue) error {
	return m.mut.setFrom(&m.state, m, src)
}

// SetAt replaces component i.
func (m *MutableVector) SetAt(i int, v float32) error {
	return m.mut.setAt(&m.state, m, i, v)
}

// AddAssign sets m = m + o.
func (m *MutableVector) AddAssign(o VectorValue) error {
	_, err := m.Add(o, m)
	return err
}

// SubAssign sets m = m - o.
func (m *MutableVector) SubAssign(o VectorValue) error {
	_, err := m.Sub(o, m)
	return err
}

// ScaleAssign sets m = s·m.
func (m *MutableVector) ScaleAssign(s float32) error {
	_, err := m.Scale(s, m)
	return err
}

// NegateAssign sets m = -m.
func (m *MutableVector) NegateAssign() error {
	_, err := m.Negate(m)
	return err
}

// NormalizeAssign sets m = m/|m|. Errors: ErrZeroMagnitude.
func (m *MutableVector) NormalizeAssign() error {
	_, err := m.Normalize(m)
	return err
}

// TransformAssign sets m = mat·m (homogeneous w = 0 when m is one shorter
// than mat's order).
func (m *MutableVector) TransformAssign(mat SquareMatrix) error {
	if isNil(mat) {
		return geomErrorf(opTransform, ErrNilValue)
	}
	_, err := mat.matrix().TransformVector(m, m)
	return err
}

// RotateAssign rotates m (3 components) by the unit quaternion q.
func (m *MutableVector) RotateAssign(q QuaternionValue) error {
	if isNil(q) {
		return geomErrorf(opRotate, ErrNilValue)
	}
	_, err := q.quaternion().Rotate(m, m)
	return err
}

// Freeze returns an immutable snapshot of the current components.
func (m *MutableVector) Freeze() *Vector { return &Vector{vecCore{state: m.state}} }

func (m *MutableVector) write(op string, next []float32) error {
	return m.mut.write(op, &m.state, m, next)
}

func (m *MutableVector) invalidateCaches() { m.magnitude.invalidate() }
