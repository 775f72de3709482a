// SPDX-License-Identifier: MIT

// Package geom - mutable square matrices.
//
// Derived cells:
//   - Transpose and Inverse return a read-only *MutableMatrix owned by the
//     receiver. The cell is allocated on first access and reused afterwards:
//     a recomputation writes into the same instance, so a caller holding it
//     sees the refreshed value after the next access.
//   - Writing into a cell (directly or as an operation output) fails with
//     ErrReadOnly.
//   - The determinant and operand class are plain cached scalars.
//
// Every committed mutation marks all four caches Dirty; nothing is recomputed
// until the next access.

package geom

import (
	"fmt"
)

// MutableMatrix is a square matrix that can be changed in place.
// Not safe for concurrent mutation.
type MutableMatrix struct {
	matCore
	transpose derived[*MutableMatrix]
	inverse   derived[*MutableMatrix]
	mut       mutation[*MutableMatrix]
}

var (
	_ SquareMatrix          = (*MutableMatrix)(nil)
	_ MutableGeometricValue = (*MutableMatrix)(nil)
)

// NewMutableMatrix builds a mutable matrix from 4, 9 or 16 row-major
// components. obs may be nil. Errors: ErrBadLength.
func NewMutableMatrix(obs ChangeObserver[*MutableMatrix], components ...float32) (*MutableMatrix, error) {
	order, err := orderOf(len(components))
	if err != nil {
		return nil, geomErrorf(opNew, err)
	}

	return newMutableMatrix(newState(KindMatrix, components), order, obs), nil
}

// NewMutableIdentity returns a mutable order×order identity.
func NewMutableIdentity(order int, obs ChangeObserver[*MutableMatrix]) (*MutableMatrix, error) {
	if err := checkOrder(order); err != nil {
		return nil, geomErrorf(opNew, err)
	}

	return newMutableMatrix(identityState(order), order, obs), nil
}

// MutableMatrixFrom is the mutable counterpart of MatrixFrom.
func MutableMatrixFrom(src SquareMatrix, order int, obs ChangeObserver[*MutableMatrix]) (*MutableMatrix, error) {
	s, err := resizeMatrix(src, order)
	if err != nil {
		return nil, geomErrorf(opFrom, err)
	}

	return newMutableMatrix(s, order, obs), nil
}

func newMutableMatrix(s state, order int, obs ChangeObserver[*MutableMatrix]) *MutableMatrix {
	return &MutableMatrix{
		matCore: matCore{state: s, order: order},
		mut:     mutation[*MutableMatrix]{observer: obs},
	}
}

// newMatrixCell allocates a sealed derived cell of the given order.
func newMatrixCell(order int) *MutableMatrix {
	m := newMutableMatrix(state{kind: KindMatrix, n: order * order}, order, nil)
	m.mut.sealed = true

	return m
}

// Set replaces all components (row-major).
func (m *MutableMatrix) Set(components ...float32) error { return m.mut.set(&m.state, m, components) }

// SetFrom copies another matrix of the same order.
func (m *MutableMatrix) SetFrom(src GeometricValue) error { return m.mut.setFrom(&m.state, m, src) }

// SetAt replaces component i (row-major offset).
func (m *MutableMatrix) SetAt(i int, v float32) error { return m.mut.setAt(&m.state, m, i, v) }

// SetRC replaces the entry at row r, column c.
func (m *MutableMatrix) SetRC(r, c int, v float32) error {
	if r < 0 || r >= m.order || c < 0 || c >= m.order {
		return geomErrorf(opSetAt, fmt.Errorf("(%d,%d) of %dx%d: %w", r, c, m.order, m.order, ErrOutOfRange))
	}

	return m.mut.setAt(&m.state, m, r*m.order+c, v)
}

// SetIdentity resets m to the identity.
func (m *MutableMatrix) SetIdentity() error {
	id := identityState(m.order)

	return m.write(opSet, id.values())
}

// Transpose returns the read-only transpose cell.
func (m *MutableMatrix) Transpose() *MutableMatrix {
	if m.transpose.stale() {
		cell, _ := m.transpose.load()
		if cell == nil {
			cell = newMatrixCell(m.order)
		}
		var next [maxComponents]float32
		transposeSquare(next[:m.n], m.values(), m.order)
		cell.mut.refresh(&cell.state, next[:m.n], cell)
		m.transpose.store(cell, nil)
	}
	t, _ := m.transpose.load()

	return t
}

// Inverse returns the read-only inverse cell.
// Errors: ErrSingular (cached until the next mutation); the cell keeps its
// previous contents and is not returned.
func (m *MutableMatrix) Inverse() (*MutableMatrix, error) {
	if m.inverse.stale() {
		cell, _ := m.inverse.load()
		if cell == nil {
			cell = newMatrixCell(m.order)
		}
		var next [maxComponents]float32
		if err := invertSquare(next[:m.n], m.values(), m.order, m.Determinant()); err != nil {
			m.inverse.store(cell, geomErrorf(opInverse, err))
		} else {
			cell.mut.refresh(&cell.state, next[:m.n], cell)
			m.inverse.store(cell, nil)
		}
	}
	inv, err := m.inverse.load()
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// MulAssign sets m = m × o.
func (m *MutableMatrix) MulAssign(o SquareMatrix) error {
	_, err := m.Mul(o, m)
	return err
}

// PreMulAssign sets m = o × m.
func (m *MutableMatrix) PreMulAssign(o SquareMatrix) error {
	if isNil(o) {
		return geomErrorf(opMul, ErrNilValue)
	}
	_, err := o.matrix().Mul(m, m)
	return err
}

// AddAssign sets m = m + o.
func (m *MutableMatrix) AddAssign(o SquareMatrix) error {
	_, err := m.Add(o, m)
	return err
}

// ScaleAssign sets m = s·m.
func (m *MutableMatrix) ScaleAssign(s float32) error {
	_, err := m.Scale(s, m)
	return err
}

// TransposeAssign sets m = mᵀ.
func (m *MutableMatrix) TransposeAssign() error {
	var next [maxComponents]float32
	transposeSquare(next[:m.n], m.values(), m.order)

	return m.write(opTranspose, next[:m.n])
}

// InvertAssign sets m = m⁻¹. Errors: ErrSingular (m unchanged).
func (m *MutableMatrix) InvertAssign() error {
	var next [maxComponents]float32
	if err := invertSquare(next[:m.n], m.values(), m.order, m.Determinant()); err != nil {
		return geomErrorf(opInverse, err)
	}

	return m.write(opInverse, next[:m.n])
}

// Freeze returns an immutable snapshot.
func (m *MutableMatrix) Freeze() *Matrix { return newMatrix(m.state, m.order) }

func (m *MutableMatrix) write(op string, next []float32) error {
	return m.mut.write(op, &m.state, m, next)
}

func (m *MutableMatrix) invalidateCaches() {
	m.det.invalidate()
	m.class.invalidate()
	m.transpose.invalidate()
	m.inverse.invalidate()
}
