// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
)

// project maps p through m with the homogeneous divide.
func project(t *testing.T, m *geom.MutableMatrix, p *geom.Point) *geom.MutablePoint {
	t.Helper()
	out, err := geom.NewMutablePoint(nil, 0, 0, 0)
	require.NoError(t, err)
	_, err = m.TransformPoint(p, out)
	require.NoError(t, err)

	return out
}

func TestPerspective(t *testing.T) {
	obs := &counter[*geom.MutableMatrix]{}
	m := mustMutableIdentity(t, 4).Freeze().Mutable(obs)

	_, err := geom.Perspective(halfPi, 1, 1, 3, m)
	require.NoError(t, err)
	assert.True(t, m.EqualsComponents(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -2, -3,
		0, 0, -1, 0,
	), "got\n%v", m)

	requireComponents(t, []float32{0, 0, -1}, project(t, m, geom.Pt3(0, 0, -1)))
	requireComponents(t, []float32{0, 0, 1}, project(t, m, geom.Pt3(0, 0, -3)))
	requireComponents(t, []float32{1, 1, -1}, project(t, m, geom.Pt3(1, 1, -1)))

	_, err = geom.Perspective(halfPi, 1, 1, 3, m)
	require.NoError(t, err)
	assert.Equal(t, 1, obs.calls, "rebuilding the same projection is a no-op")

	spy := &spyTrig{}
	_, err = geom.Perspective(halfPi/2, 2, 0.1, 100, m, geom.WithTrig(spy))
	require.NoError(t, err)
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, 2, obs.calls)
	f := float32(1 / math.Tan(math.Pi/8))
	rc00, _ := m.RC(0, 0)
	rc11, _ := m.RC(1, 1)
	assert.InDelta(t, f/2, rc00, 1e-5)
	assert.InDelta(t, f, rc11, 1e-5)
}

func TestPerspective_Errors(t *testing.T) {
	m := mustMutableIdentity(t, 4)
	for _, tc := range []struct {
		name   string
		fov    float32
		aspect float32
		near   float32
		far    float32
	}{
		{"zero fov", 0, 1, 1, 2},
		{"straight fov", float32(math.Pi), 1, 1, 2},
		{"zero aspect", 1, 0, 1, 2},
		{"zero near", 1, 1, 0, 2},
		{"far equals near", 1, 1, 2, 2},
		{"far before near", 1, 1, 2, 1},
		{"nan", float32(math.NaN()), 1, 1, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geom.Perspective(tc.fov, tc.aspect, tc.near, tc.far, m)
			assert.ErrorIs(t, err, geom.ErrInvalidProjection)
		})
	}
	assert.True(t, m.IsIdentity(), "failed builds leave the output untouched")

	_, err := geom.Perspective(1, 1, 1, 2, zeroMatrix(t, 3))
	assert.ErrorIs(t, err, geom.ErrShapeMismatch)
	_, err = geom.Perspective(1, 1, 1, 2, nil)
	assert.ErrorIs(t, err, geom.ErrNilValue)
}

func TestOrthographic(t *testing.T) {
	m := mustMutableIdentity(t, 4)
	_, err := geom.Orthographic(-2, 2, -1, 1, 0.1, 10, m)
	require.NoError(t, err)

	requireComponents(t, []float32{1, 1, 1}, project(t, m, geom.Pt3(2, 1, -10)))
	requireComponents(t, []float32{-1, -1, -1}, project(t, m, geom.Pt3(-2, -1, -0.1)))
	requireComponents(t, []float32{0, 0, 0}, project(t, m, geom.Pt3(0, 0, -5.05)))

	_, err = geom.Orthographic(1, 1, -1, 1, 0.1, 10, m)
	assert.ErrorIs(t, err, geom.ErrInvalidProjection)
	_, err = geom.Orthographic(-1, 1, 2, 2, 0.1, 10, m)
	assert.ErrorIs(t, err, geom.ErrInvalidProjection)
	_, err = geom.Orthographic(-1, 1, -1, 1, 3, 3, m)
	assert.ErrorIs(t, err, geom.ErrInvalidProjection)
}

func TestLookAt(t *testing.T) {
	m := mustMutableIdentity(t, 4)
	_, err := geom.LookAt(geom.Pt3(0, 0, 5), geom.Pt3(0, 0, 0), geom.Vec3(0, 1, 0), m)
	require.NoError(t, err)
	assert.True(t, m.EqualsComponents(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, -5,
		0, 0, 0, 1,
	), "got\n%v", m)

	// general placement: eye to the origin, target onto -Z at its distance
	_, err = geom.LookAt(geom.Pt3(1, 2, 3), geom.Pt3(4, 6, 3), geom.Vec3(0, 0, 1), m)
	require.NoError(t, err)
	requireComponents(t, []float32{0, 0, 0}, project(t, m, geom.Pt3(1, 2, 3)))
	requireComponents(t, []float32{0, 0, -5}, project(t, m, geom.Pt3(4, 6, 3)))

	inv, err := m.Inverse()
	require.NoError(t, err)
	requireComponents(t, []float32{1, 2, 3}, project(t, inv, geom.Pt3(0, 0, 0)))
}

func TestLookAt_Errors(t *testing.T) {
	m := mustMutableIdentity(t, 4)

	_, err := geom.LookAt(geom.Pt3(1, 1, 1), geom.Pt3(1, 1, 1), geom.Vec3(0, 1, 0), m)
	assert.ErrorIs(t, err, geom.ErrInvalidProjection)
	_, err = geom.LookAt(geom.Pt3(0, 0, 0), geom.Pt3(0, 5, 0), geom.Vec3(0, 1, 0), m)
	assert.ErrorIs(t, err, geom.ErrInvalidProjection)
	_, err = geom.LookAt(geom.Pt2(0, 0), geom.Pt2(0, 1), geom.Vec3(0, 0, 1), m)
	assert.ErrorIs(t, err, geom.ErrShapeMismatch)
	_, err = geom.LookAt(nil, geom.Pt3(0, 0, 0), geom.Vec3(0, 1, 0), m)
	assert.ErrorIs(t, err, geom.ErrNilValue)
	assert.True(t, m.IsIdentity())
}
