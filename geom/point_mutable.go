// SPDX-License-Identifier: MIT

package geom

// MutablePoint is a point that can be changed in place. Points own no derived
// caches, so a committed mutation only notifies the observer.
// Not safe for concurrent mutation.
type MutablePoint struct {
	pointCore
	mut mutation[*MutablePoint]
}

var (
	_ MutableGeometricValue = (*MutablePoint)(nil)
	_ PointValue            = (*MutablePoint)(nil)
)

// NewMutablePoint builds a mutable point from 2 or 3 components.
func NewMutablePoint(obs ChangeObserver[*MutablePoint], components ...float32) (*MutablePoint, error) {
	if err := checkPointLen(len(components)); err != nil {
		return nil, geomErrorf(opNew, err)
	}

	return newMutablePoint(newState(KindPoint, components), obs), nil
}

// MutablePointFrom is the mutable counterpart of PointFrom.
func MutablePointFrom(src GeometricValue, dim int, obs ChangeObserver[*MutablePoint]) (*MutablePoint, error) {
	s, err := resizePoint(src, dim)
	if err != nil {
		return nil, geomErrorf(opFrom, err)
	}

	return newMutablePoint(s, obs), nil
}

func newMutablePoint(s state, obs ChangeObserver[*MutablePoint]) *MutablePoint {
	return &MutablePoint{pointCore: pointCore{s}, mut: mutation[*MutablePoint]{observer: obs}}
}

// Set replaces all components.
func (m *MutablePoint) Set(components ...float32) error { return m.mut.set(&m.state, m, components) }

// SetFrom copies another point of the same dimension.
func (m *MutablePoint) SetFrom(src GeometricValue) error { return m.mut.setFrom(&m.state, m, src) }

// SetAt replaces component i.
func (m *MutablePoint) SetAt(i int, v float32) error { return m.mut.setAt(&m.state, m, i, v) }

// TranslateAssign sets m = m + v.
func (m *MutablePoint) TranslateAssign(v VectorValue) error {
	_, err := m.Translate(v, m)
	return err
}

// TransformAssign sets m = mat·m (homogeneous w = 1, see Matrix.TransformPoint).
func (m *MutablePoint) TransformAssign(mat SquareMatrix) error {
	if isNil(mat) {
		return geomErrorf(opTransform, ErrNilValue)
	}
	_, err := mat.matrix().TransformPoint(m, m)
	return err
}

// Freeze returns an immutable snapshot.
func (m *MutablePoint) Freeze() *Point { return &Point{pointCore{m.state}} }

func (m *MutablePoint) write(op string, next []float32) error {
	return m.mut.write(op, &m.state, m, next)
}

func (m *MutablePoint) invalidateCaches() {}
