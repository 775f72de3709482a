// SPDX-License-Identifier: MIT

package geom

// MutableQuaternion is a quaternion that can be changed in place.
// Conjugate and Inverse return read-only cells owned by the receiver and
// refreshed on the first access after a mutation.
// Not safe for concurrent mutation.
type MutableQuaternion struct {
	quatCore
	conjugate derived[*MutableQuaternion]
	inverse   derived[*MutableQuaternion]
	mut       mutation[*MutableQuaternion]
}

var (
	_ QuaternionValue       = (*MutableQuaternion)(nil)
	_ MutableGeometricValue = (*MutableQuaternion)(nil)
)

// NewMutableQuaternion returns a mutable x·i + y·j + z·k + w observed by obs.
func NewMutableQuaternion(x, y, z, w float32, obs ChangeObserver[*MutableQuaternion]) *MutableQuaternion {
	return newMutableQuaternion(newState(KindQuaternion, []float32{x, y, z, w}), obs)
}

// NewMutableIdentityQuaternion returns a mutable (0, 0, 0, 1).
func NewMutableIdentityQuaternion(obs ChangeObserver[*MutableQuaternion]) *MutableQuaternion {
	return NewMutableQuaternion(0, 0, 0, 1, obs)
}

func newMutableQuaternion(s state, obs ChangeObserver[*MutableQuaternion]) *MutableQuaternion {
	return &MutableQuaternion{quatCore: quatCore{state: s}, mut: mutation[*MutableQuaternion]{observer: obs}}
}

func newQuaternionCell() *MutableQuaternion {
	q := newMutableQuaternion(state{kind: KindQuaternion, n: quatLen}, nil)
	q.mut.sealed = true

	return q
}

// Set replaces all four components (x, y, z, w).
func (q *MutableQuaternion) Set(components ...float32) error {
	return q.mut.set(&q.state, q, components)
}

// SetFrom copies another quaternion.
func (q *MutableQuaternion) SetFrom(src GeometricValue) error {
	return q.mut.setFrom(&q.state, q, src)
}

// SetAt replaces component i.
func (q *MutableQuaternion) SetAt(i int, v float32) error {
	return q.mut.setAt(&q.state, q, i, v)
}

// SetIdentity resets q to (0, 0, 0, 1).
func (q *MutableQuaternion) SetIdentity() error {
	return q.write(opSet, []float32{0, 0, 0, 1})
}

// SetAxisAngle sets q to the rotation of angle radians about axis.
func (q *MutableQuaternion) SetAxisAngle(axis VectorValue, angle float32, opts ...Option) error {
	var next [quatLen]float32
	if err := axisAngle(next[:], axis, angle, gatherOptions(opts...)); err != nil {
		return err
	}

	return q.write(opAxisAngle, next[:])
}

// Conjugate returns the read-only conjugate cell.
func (q *MutableQuaternion) Conjugate() *MutableQuaternion {
	if q.conjugate.stale() {
		cell, _ := q.conjugate.load()
		if cell == nil {
			cell = newQuaternionCell()
		}
		var next [quatLen]float32
		conjugate(next[:], q.values())
		cell.mut.refresh(&cell.state, next[:], cell)
		q.conjugate.store(cell, nil)
	}
	c, _ := q.conjugate.load()

	return c
}

// Inverse returns the read-only inverse cell. Errors: ErrZeroMagnitude.
func (q *MutableQuaternion) Inverse() (*MutableQuaternion, error) {
	if q.inverse.stale() {
		cell, _ := q.inverse.load()
		if cell == nil {
			cell = newQuaternionCell()
		}
		var next [quatLen]float32
		if err := invertQuaternion(next[:], q.values()); err != nil {
			q.inverse.store(cell, geomErrorf(opInverse, err))
		} else {
			cell.mut.refresh(&cell.state, next[:], cell)
			q.inverse.store(cell, nil)
		}
	}
	inv, err := q.inverse.load()
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// MulAssign sets q = q⊗o.
func (q *MutableQuaternion) MulAssign(o QuaternionValue) error {
	_, err := q.Mul(o, q)
	return err
}

// PreMulAssign sets q = o⊗q.
func (q *MutableQuaternion) PreMulAssign(o QuaternionValue) error {
	if isNil(o) {
		return geomErrorf(opMul, ErrNilValue)
	}
	_, err := o.quaternion().Mul(q, q)
	return err
}

// NormalizeAssign sets q = q/|q|.
func (q *MutableQuaternion) NormalizeAssign() error {
	_, err := q.Normalize(q)
	return err
}

// ConjugateAssign sets q = conj(q).
func (q *MutableQuaternion) ConjugateAssign() error {
	var next [quatLen]float32
	conjugate(next[:], q.values())

	return q.write(opConjugate, next[:])
}

// InvertAssign sets q = q⁻¹. Errors: ErrZeroMagnitude (q unchanged).
func (q *MutableQuaternion) InvertAssign() error {
	var next [quatLen]float32
	if err := invertQuaternion(next[:], q.values()); err != nil {
		return geomErrorf(opInverse, err)
	}

	return q.write(opInverse, next[:])
}

// Freeze returns an immutable snapshot.
func (q *MutableQuaternion) Freeze() *Quaternion { return newQuaternion(q.state) }

func (q *MutableQuaternion) write(op string, next []float32) error {
	return q.mut.write(op, &q.state, q, next)
}

func (q *MutableQuaternion) invalidateCaches() {
	q.magnitude.invalidate()
	q.class.invalidate()
	q.conjugate.invalidate()
	q.inverse.invalidate()
}
