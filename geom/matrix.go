// SPDX-License-Identifier: MIT

// Package geom - square matrices (2×2, 3×3, 4×4), row-major.
//
// Purpose:
//   - matCore holds the row-major buffer plus the determinant and operand-class
//     caches and implements every read-only operation once.
//   - Matrix adds forever-cached transpose/inverse; MutableMatrix adds setters
//     and dirty-flagged transpose/inverse cells.
//
// Conventions:
//   - Offset of (r, c) is r*order + c.
//   - Column-vector convention: TransformVector computes M·v.
//
// Complexity quicksheet:
//   - RC: O(1); Mul: O(n³) (O(n²) copy on the identity fast path);
//     Determinant/Inverse: O(n³) once per state; Transpose: O(n²) once per state.

package geom

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/tolerance"
)

// SquareMatrix is implemented by *Matrix and *MutableMatrix.
type SquareMatrix interface {
	GeometricValue
	Order() int
	RC(r, c int) (float32, error)
	matrix() *matCore
}

type matCore struct {
	state
	order int
	det   derived[float32]
	class derived[operandClass]
}

func (m *matCore) matrix() *matCore { return m }

// Matrix is an immutable square matrix. Transpose, inverse and determinant
// are computed on first access and cached forever.
type Matrix struct {
	matCore
	transpose derived[*Matrix]
	inverse   derived[*Matrix]
}

var _ SquareMatrix = (*Matrix)(nil)

// NewMatrix builds a matrix from 4, 9 or 16 row-major components.
// Errors: ErrBadLength.
func NewMatrix(components ...float32) (*Matrix, error) {
	order, err := orderOf(len(components))
	if err != nil {
		return nil, geomErrorf(opNew, err)
	}

	return newMatrix(newState(KindMatrix, components), order), nil
}

// Identity returns the order×order identity. Errors: ErrBadLength.
func Identity(order int) (*Matrix, error) {
	if err := checkOrder(order); err != nil {
		return nil, geomErrorf(opNew, err)
	}

	return newMatrix(identityState(order), order), nil
}

// MatrixFrom converts src to the given order. Upcasting keeps src in the
// top-left block and fills the rest with identity rows/columns; downcasting
// keeps the top-left block.
func MatrixFrom(src SquareMatrix, order int) (*Matrix, error) {
	s, err := resizeMatrix(src, order)
	if err != nil {
		return nil, geomErrorf(opFrom, err)
	}

	return newMatrix(s, order), nil
}

func newMatrix(s state, order int) *Matrix {
	return &Matrix{matCore: matCore{state: s, order: order}}
}

// Transpose returns mᵀ (cached; mᵀᵀ is m itself).
func (m *Matrix) Transpose() *Matrix {
	if m.transpose.stale() {
		t := newMatrix(state{kind: KindMatrix, n: m.n}, m.order)
		transposeSquare(t.data[:m.n], m.values(), m.order)
		t.transpose.store(m, nil)
		m.transpose.store(t, nil)
	}
	t, _ := m.transpose.load()

	return t
}

// Inverse returns m⁻¹ (cached, including the error).
// Errors: ErrSingular when the determinant is zero within tolerance.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.inverse.stale() {
		inv := newMatrix(state{kind: KindMatrix, n: m.n}, m.order)
		if err := invertSquare(inv.data[:m.n], m.values(), m.order, m.Determinant()); err != nil {
			m.inverse.store(nil, geomErrorf(opInverse, err))
		} else {
			m.inverse.store(inv, nil)
		}
	}

	return m.inverse.load()
}

// Mutable returns a mutable copy observed by obs (may be nil).
func (m *Matrix) Mutable(obs ChangeObserver[*MutableMatrix]) *MutableMatrix {
	return newMutableMatrix(m.state, m.order, obs)
}

// Order returns the row (and column) count.
func (m *matCore) Order() int { return m.order }

// RC returns the entry at row r, column c. Errors: ErrOutOfRange.
func (m *matCore) RC(r, c int) (float32, error) {
	if r < 0 || r >= m.order || c < 0 || c >= m.order {
		return 0, geomErrorf(opAt, fmt.Errorf("(%d,%d) of %dx%d: %w", r, c, m.order, m.order, ErrOutOfRange))
	}

	return m.data[r*m.order+c], nil
}

// Determinant returns det(m) (cached derived attribute).
func (m *matCore) Determinant() float32 {
	if m.det.stale() {
		m.det.store(determinant(m.values(), m.order), nil)
	}
	d, _ := m.det.load()

	return d
}

// IsIdentity reports whether m equals the identity within tolerance.
func (m *matCore) IsIdentity() bool { return m.classify() == classIdentity }

// IsZero reports whether every entry is zero within tolerance.
func (m *matCore) IsZero() bool { return m.classify() == classZero }

func (m *matCore) classify() operandClass {
	if m.class.stale() {
		m.class.store(classifySquare(m.values(), m.order), nil)
	}
	c, _ := m.class.load()

	return c
}

// Mul writes m×o into out and returns out. out may be m or o.
// When either operand is the identity the general kernel is skipped and
// out receives a copy of the other operand.
func (m *matCore) Mul(o SquareMatrix, out *MutableMatrix) (*MutableMatrix, error) {
	if err := m.checkOperand(o); err != nil {
		return nil, geomErrorf(opMul, err)
	}
	if err := checkMatrixOut(out, m.order); err != nil {
		return nil, geomErrorf(opMul, err)
	}
	om := o.matrix()

	var next [maxComponents]float32
	switch productShortcut(m.classify(), om.classify()) {
	case takeRight:
		copy(next[:], om.values())
	case takeLeft:
		copy(next[:], m.values())
	default:
		mulSquare(next[:m.n], m.values(), om.values(), m.order)
	}
	if err := out.write(opMul, next[:m.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// Add writes m+o into out and returns out.
func (m *matCore) Add(o SquareMatrix, out *MutableMatrix) (*MutableMatrix, error) {
	if err := m.checkOperand(o); err != nil {
		return nil, geomErrorf(opAdd, err)
	}
	if err := checkMatrixOut(out, m.order); err != nil {
		return nil, geomErrorf(opAdd, err)
	}
	var next [maxComponents]float32
	a, b := m.values(), o.matrix().values()
	for i := range a {
		next[i] = a[i] + b[i]
	}
	if err := out.write(opAdd, next[:m.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// Scale writes s·m into out and returns out.
func (m *matCore) Scale(s float32, out *MutableMatrix) (*MutableMatrix, error) {
	if err := checkMatrixOut(out, m.order); err != nil {
		return nil, geomErrorf(opScale, err)
	}
	var next [maxComponents]float32
	for i, v := range m.values() {
		next[i] = v * s
	}
	if err := out.write(opScale, next[:m.n]); err != nil {
		return nil, err
	}

	return out, nil
}

// TransformVector writes M·v into out and returns out.
// v has either Order() components, or Order()-1 components with an implicit
// homogeneous w = 0 (directions ignore translation).
// The identity fast path copies v unchanged.
func (m *matCore) TransformVector(v VectorValue, out *MutableVector) (*MutableVector, error) {
	if isNil(v) {
		return nil, geomErrorf(opTransform, ErrNilValue)
	}
	vn := v.Len()
	if vn != m.order && vn != m.order-1 {
		return nil, geomErrorf(opTransform, fmt.Errorf("%dx%d matrix by %d-vector: %w", m.order, m.order, vn, ErrShapeMismatch))
	}
	if err := checkVectorOut(out, vn); err != nil {
		return nil, geomErrorf(opTransform, err)
	}
	if transformShortcut(m.classify()) {
		if err := out.write(opTransform, v.vector().values()); err != nil {
			return nil, err
		}
		return out, nil
	}

	var in, res [4]float32
	copy(in[:], v.vector().values()) // in[vn] stays 0 for the homogeneous case
	mulVec(res[:m.order], m.values(), in[:m.order], m.order)
	if err := out.write(opTransform, res[:vn]); err != nil {
		return nil, err
	}

	return out, nil
}

// TransformPoint writes M·p into out and returns out.
// p has either Order() components (linear map), or Order()-1 components with
// an implicit w = 1; the result is then divided by its w unless w is one.
// Errors: ErrZeroDivisor when the resulting w is zero within tolerance.
func (m *matCore) TransformPoint(p PointValue, out *MutablePoint) (*MutablePoint, error) {
	if isNil(p) {
		return nil, geomErrorf(opTransform, ErrNilValue)
	}
	pn := p.Len()
	if pn != m.order && pn != m.order-1 {
		return nil, geomErrorf(opTransform, fmt.Errorf("%dx%d matrix by %d-point: %w", m.order, m.order, pn, ErrShapeMismatch))
	}
	if err := checkPointOut(out, pn); err != nil {
		return nil, geomErrorf(opTransform, err)
	}
	if transformShortcut(m.classify()) {
		if err := out.write(opTransform, p.point().values()); err != nil {
			return nil, err
		}
		return out, nil
	}

	homogeneous := pn == m.order-1
	var in, res [4]float32
	copy(in[:], p.point().values())
	if homogeneous {
		in[pn] = 1
	}
	mulVec(res[:m.order], m.values(), in[:m.order], m.order)
	if homogeneous {
		w := res[pn]
		if !tolerance.IsOne(w) {
			if tolerance.IsZero(w) {
				return nil, geomErrorf(opTransform, ErrZeroDivisor)
			}
			for i := 0; i < pn; i++ {
				res[i] /= w
			}
		}
	}
	if err := out.write(opTransform, res[:pn]); err != nil {
		return nil, err
	}

	return out, nil
}

// String implements fmt.Stringer: one bracketed row per line.
func (m *matCore) String() string { return formatRows(m.values(), m.order) }

func (m *matCore) checkOperand(o SquareMatrix) error {
	if isNil(o) {
		return ErrNilValue
	}
	if o.Order() != m.order {
		return fmt.Errorf("%dx%d vs %dx%d: %w", m.order, m.order, o.Order(), o.Order(), ErrShapeMismatch)
	}

	return nil
}

func checkMatrixOut(out *MutableMatrix, order int) error {
	if out == nil {
		return ErrNilValue
	}
	if out.order != order {
		return fmt.Errorf("output is %dx%d, want %dx%d: %w", out.order, out.order, order, order, ErrShapeMismatch)
	}

	return nil
}

func checkOrder(order int) error {
	if order < 2 || order > 4 {
		return fmt.Errorf("order %d: %w", order, ErrBadLength)
	}

	return nil
}

func orderOf(count int) (int, error) {
	switch count {
	case 4:
		return 2, nil
	case 9:
		return 3, nil
	case 16:
		return 4, nil
	default:
		return 0, fmt.Errorf("matrix of %d components: %w", count, ErrBadLength)
	}
}

func identityState(order int) state {
	s := state{kind: KindMatrix, n: order * order}
	for i := 0; i < order; i++ {
		s.data[i*order+i] = 1
	}

	return s
}

// resizeMatrix copies the overlapping top-left block of src into an identity
// of the requested order.
func resizeMatrix(src SquareMatrix, order int) (state, error) {
	if isNil(src) {
		return state{}, ErrNilValue
	}
	if err := checkOrder(order); err != nil {
		return state{}, err
	}
	s := identityState(order)
	from := src.matrix()
	k := min(order, from.order)
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			s.data[r*order+c] = from.data[r*from.order+c]
		}
	}

	return s, nil
}
