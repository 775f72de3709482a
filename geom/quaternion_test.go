// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvgeom/geom"
)

const halfPi = float32(math.Pi / 2)

// spyTrig counts trig evaluations and delegates to MathTrig.
type spyTrig struct{ calls int }

func (s *spyTrig) Sin(r float32) float32 { s.calls++; return geom.MathTrig{}.Sin(r) }
func (s *spyTrig) Cos(r float32) float32 { s.calls++; return geom.MathTrig{}.Cos(r) }
func (s *spyTrig) Tan(r float32) float32 { s.calls++; return geom.MathTrig{}.Tan(r) }

func toGonum(q geom.QuaternionValue) quat.Number {
	c := q.Components()
	return quat.Number{Real: float64(c[3]), Imag: float64(c[0]), Jmag: float64(c[1]), Kmag: float64(c[2])}
}

func mustAxisAngle(t *testing.T, axis *geom.Vector, angle float32) *geom.Quaternion {
	t.Helper()
	q, err := geom.QuaternionFromAxisAngle(axis, angle)
	require.NoError(t, err)

	return q
}

func TestQuaternion_MulMatchesGonum(t *testing.T) {
	a := geom.NewQuaternion(1, 2, 3, 4)
	b := geom.NewQuaternion(-2, 0.5, 1, 3)
	out := geom.NewMutableIdentityQuaternion(nil)

	_, err := a.Mul(b, out)
	require.NoError(t, err)

	want := quat.Mul(toGonum(a), toGonum(b))
	got := toGonum(out)
	assert.InDelta(t, want.Real, got.Real, 1e-5)
	assert.InDelta(t, want.Imag, got.Imag, 1e-5)
	assert.InDelta(t, want.Jmag, got.Jmag, 1e-5)
	assert.InDelta(t, want.Kmag, got.Kmag, 1e-5)
}

func TestQuaternion_AxisAngleRotate(t *testing.T) {
	qz := mustAxisAngle(t, geom.Vec3(0, 0, 5), halfPi) // axis is normalized internally
	assert.True(t, qz.IsUnit())

	out := geom.NewMutableVec3(0, 0, 0, nil)
	_, err := qz.Rotate(geom.Vec3(1, 0, 0), out)
	require.NoError(t, err)
	requireComponents(t, []float32{0, 1, 0}, out)

	// ToMatrix gives the same rotation
	m := zeroMatrix(t, 3)
	_, err = qz.ToMatrix(m)
	require.NoError(t, err)
	viaMatrix := geom.NewMutableVec3(0, 0, 0, nil)
	_, err = m.TransformVector(geom.Vec3(1, 0, 0), viaMatrix)
	require.NoError(t, err)
	assert.True(t, viaMatrix.Equals(out), "got %v", viaMatrix)

	_, err = geom.QuaternionFromAxisAngle(geom.Vec3(0, 0, 0), 1)
	assert.ErrorIs(t, err, geom.ErrZeroMagnitude)
	_, err = geom.QuaternionFromAxisAngle(geom.Vec2(1, 0), 1)
	assert.ErrorIs(t, err, geom.ErrShapeMismatch)
}

// TestQuaternion_Composition: (qz ⊗ qx)·v rotates about x first, then z.
func TestQuaternion_Composition(t *testing.T) {
	qx := mustAxisAngle(t, geom.Vec3(1, 0, 0), halfPi)
	qz := mustAxisAngle(t, geom.Vec3(0, 0, 1), halfPi)

	both := geom.NewMutableIdentityQuaternion(nil)
	_, err := qz.Mul(qx, both)
	require.NoError(t, err)

	v := geom.NewMutableVec3(0, 0, 1, nil)
	require.NoError(t, v.RotateAssign(both))
	requireComponents(t, []float32{1, 0, 0}, v)
}

func TestQuaternion_RotateSafeVersusUnsafe(t *testing.T) {
	unit := mustAxisAngle(t, geom.Vec3(0, 0, 1), halfPi)
	c := unit.Components()
	scaled := geom.NewQuaternion(2*c[0], 2*c[1], 2*c[2], 2*c[3])
	assert.False(t, scaled.IsUnit())

	safe := geom.NewMutableVec3(0, 0, 0, nil)
	_, err := scaled.RotateSafe(geom.Vec3(1, 0, 0), safe)
	require.NoError(t, err)
	requireComponents(t, []float32{0, 1, 0}, safe)

	fast := geom.NewMutableVec3(0, 0, 0, nil)
	_, err = scaled.Rotate(geom.Vec3(1, 0, 0), fast)
	require.NoError(t, err)
	assert.False(t, fast.Equals(safe), "Rotate assumes a unit quaternion")

	_, err = geom.NewQuaternion(0, 0, 0, 0).RotateSafe(geom.Vec3(1, 0, 0), safe)
	assert.ErrorIs(t, err, geom.ErrZeroMagnitude)
	_, err = unit.Rotate(geom.Vec2(1, 0), geom.NewMutableVec2(0, 0, nil))
	assert.ErrorIs(t, err, geom.ErrShapeMismatch)
}

// TestQuaternion_InverseRoundTrip checks q⁻¹⁻¹ = q and q ⊗ q⁻¹ = 1.
func TestQuaternion_InverseRoundTrip(t *testing.T) {
	q := geom.NewQuaternion(1, 2, 3, 4)
	inv, err := q.Inverse()
	require.NoError(t, err)
	back, err := inv.Inverse()
	require.NoError(t, err)
	assert.True(t, back.Equals(q), "got %v", back)

	prod := geom.NewMutableIdentityQuaternion(nil)
	_, err = q.Mul(inv, prod)
	require.NoError(t, err)
	assert.True(t, prod.IsIdentity(), "got %v", prod)

	again, err := q.Inverse()
	require.NoError(t, err)
	assert.Same(t, inv, again)

	_, err = geom.NewQuaternion(0, 0, 0, 0).Inverse()
	assert.ErrorIs(t, err, geom.ErrZeroMagnitude)
}

func TestQuaternion_ConjugateBackLink(t *testing.T) {
	q := geom.NewQuaternion(1, 2, 3, 4)
	c := q.Conjugate()
	assert.True(t, c.EqualsComponents(-1, -2, -3, 4))
	assert.Same(t, c, q.Conjugate())
	assert.Same(t, q, c.Conjugate())
}

func TestMutableQuaternion_DerivedCells(t *testing.T) {
	q := geom.NewMutableQuaternion(1, 2, 3, 4, nil)
	c := q.Conjugate()
	require.Same(t, c, q.Conjugate())
	assert.Equal(t, 1, geom.ConjugateRecomputes(q))

	require.NoError(t, q.Set(1, 2, 3, 4))
	require.Same(t, c, q.Conjugate())
	assert.Equal(t, 1, geom.ConjugateRecomputes(q))

	require.NoError(t, q.SetAt(3, 5))
	require.Same(t, c, q.Conjugate())
	assert.True(t, c.EqualsComponents(-1, -2, -3, 5))
	assert.Equal(t, 2, geom.ConjugateRecomputes(q))

	require.NoError(t, q.Set(0, 0, 0, 2))
	inv, err := q.Inverse()
	require.NoError(t, err)
	assert.True(t, inv.EqualsComponents(0, 0, 0, 0.5))
	assert.Equal(t, 1, geom.QuatInverseRecomputes(q))

	assert.True(t, geom.IsSealed(c))
	assert.ErrorIs(t, c.Set(0, 0, 0, 1), geom.ErrReadOnly)
	assert.ErrorIs(t, inv.NormalizeAssign(), geom.ErrReadOnly)

	require.NoError(t, q.Set(0, 0, 0, 0))
	_, err = q.Inverse()
	assert.ErrorIs(t, err, geom.ErrZeroMagnitude)
}

// TestMutableQuaternion_SmallDerivedCells: conjugate and inverse cells with
// entries inside the absolute band match the immutable results exactly.
func TestMutableQuaternion_SmallDerivedCells(t *testing.T) {
	t.Run("conjugate", func(t *testing.T) {
		q := geom.NewMutableQuaternion(1e-6, 0, 0, 1e-6, nil)
		c := q.Conjugate()
		assert.Equal(t, q.Freeze().Conjugate().Components(), c.Components())
		assert.Equal(t, []float32{-1e-6, 0, 0, 1e-6}, c.Components())

		require.NoError(t, q.Set(2e-6, 0, 0, 1e-6))
		q.Conjugate()
		assert.Equal(t, []float32{-2e-6, 0, 0, 1e-6}, c.Components())
	})

	t.Run("inverse", func(t *testing.T) {
		q := geom.NewMutableQuaternion(0, 0, 0, 1e5, nil)
		inv, err := q.Inverse()
		require.NoError(t, err)
		frozen, err := q.Freeze().Inverse()
		require.NoError(t, err)
		assert.Equal(t, frozen.Components(), inv.Components())

		require.NoError(t, q.Set(0, 0, 0, 2e5))
		inv, err = q.Inverse()
		require.NoError(t, err)
		frozen, err = q.Freeze().Inverse()
		require.NoError(t, err)
		assert.Equal(t, frozen.Components(), inv.Components())

		out := geom.NewMutableQuaternion(0, 0, 0, 0, nil)
		_, err = q.Mul(inv, out)
		require.NoError(t, err)
		assert.True(t, out.IsIdentity(), "got %v", out)
	})
}

func TestMutableQuaternion_Compound(t *testing.T) {
	obs := &counter[*geom.MutableQuaternion]{}
	q := geom.NewMutableIdentityQuaternion(obs)
	qz := mustAxisAngle(t, geom.Vec3(0, 0, 1), halfPi)

	require.NoError(t, q.MulAssign(geom.IdentityQuaternion()))
	assert.Equal(t, 0, obs.calls)

	require.NoError(t, q.MulAssign(qz))
	assert.True(t, q.Equals(qz))
	require.NoError(t, q.PreMulAssign(qz))
	require.NoError(t, q.ConjugateAssign())
	require.NoError(t, q.InvertAssign())
	assert.Equal(t, 4, obs.calls)

	// qz⊗qz is a half turn about z; conjugate then invert of a unit is the identity map
	half := mustAxisAngle(t, geom.Vec3(0, 0, 1), 2*halfPi)
	assert.True(t, q.Equals(half), "got %v", q)

	require.NoError(t, q.Set(0, 0, 0, 3))
	require.NoError(t, q.NormalizeAssign())
	assert.True(t, q.IsIdentity())

	require.NoError(t, q.SetAxisAngle(geom.Vec3(1, 0, 0), halfPi))
	require.NoError(t, q.SetIdentity())
	assert.Equal(t, 8, obs.calls)

	assert.ErrorIs(t, geom.NewMutableQuaternion(0, 0, 0, 0, nil).InvertAssign(), geom.ErrZeroMagnitude)
}

func TestQuaternion_WithTrig(t *testing.T) {
	spy := &spyTrig{}
	q, err := geom.QuaternionFromAxisAngle(geom.Vec3(0, 1, 0), halfPi, geom.WithTrig(spy))
	require.NoError(t, err)
	assert.Equal(t, 2, spy.calls)
	assert.True(t, q.Equals(mustAxisAngle(t, geom.Vec3(0, 1, 0), halfPi)))

	assert.Panics(t, func() { geom.WithTrig(nil) })
}

func TestQuaternion_Slerp(t *testing.T) {
	from := geom.IdentityQuaternion()
	to := mustAxisAngle(t, geom.Vec3(0, 0, 1), halfPi)
	out := geom.NewMutableIdentityQuaternion(nil)

	_, err := from.Slerp(to, 0, out)
	require.NoError(t, err)
	assert.True(t, out.Equals(from))

	_, err = from.Slerp(to, 1, out)
	require.NoError(t, err)
	assert.True(t, out.Equals(to))

	_, err = from.Slerp(to, 0.5, out)
	require.NoError(t, err)
	assert.True(t, out.Equals(mustAxisAngle(t, geom.Vec3(0, 0, 1), halfPi/2)), "got %v", out)

	// nearly parallel operands fall back to a normalized lerp
	_, err = to.Slerp(to, 0.3, out)
	require.NoError(t, err)
	assert.True(t, out.Equals(to))
}

func TestQuaternion_ToMatrix(t *testing.T) {
	q := mustAxisAngle(t, geom.Vec3(0, 0, 1), halfPi)
	m4 := zeroMatrix(t, 4)
	_, err := q.ToMatrix(m4)
	require.NoError(t, err)
	assert.True(t, m4.EqualsComponents(
		0, -1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	), "got\n%v", m4)

	_, err = q.ToMatrix(zeroMatrix(t, 2))
	assert.ErrorIs(t, err, geom.ErrShapeMismatch)
	_, err = geom.NewQuaternion(0, 0, 0, 0).ToMatrix(m4)
	assert.ErrorIs(t, err, geom.ErrZeroMagnitude)

	// a non-unit quaternion yields the same rotation matrix
	c := q.Components()
	m3a, m3b := zeroMatrix(t, 3), zeroMatrix(t, 3)
	_, err = q.ToMatrix(m3a)
	require.NoError(t, err)
	_, err = geom.NewQuaternion(3*c[0], 3*c[1], 3*c[2], 3*c[3]).ToMatrix(m3b)
	require.NoError(t, err)
	assert.True(t, m3a.Equals(m3b))
}

func TestQuaternionFromSlice(t *testing.T) {
	_, err := geom.QuaternionFromSlice([]float32{1, 2, 3})
	assert.ErrorIs(t, err, geom.ErrBadLength)

	q, err := geom.QuaternionFromSlice([]float32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, geom.KindQuaternion, q.Kind())
	assert.Equal(t, float32(4), q.W())
	assert.InDelta(t, math.Sqrt(30), q.Magnitude(), 1e-5)

	d, err := q.Dot(geom.IdentityQuaternion())
	require.NoError(t, err)
	assert.Equal(t, float32(4), d)
	assert.Equal(t, "Quaternion(0, 0, 0, 1)", geom.IdentityQuaternion().String())
}
