// SPDX-License-Identifier: MIT
// Package geom_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by the shape tests.
//   • hide masks the concrete type of a value to force the At() fallback.

package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
)

// hide wraps any GeometricValue so readers cannot reach its internal buffer.
type hide struct{ geom.GeometricValue }

// counter is an observer counting notifications and remembering the last value.
type counter[T any] struct {
	calls int
	last  T
}

func (c *counter[T]) OnChanged(v T) {
	c.calls++
	c.last = v
}

func mustMatrix(t *testing.T, components ...float32) *geom.Matrix {
	t.Helper()
	m, err := geom.NewMatrix(components...)
	require.NoError(t, err)

	return m
}

func mustMutableMatrix(t *testing.T, obs geom.ChangeObserver[*geom.MutableMatrix], components ...float32) *geom.MutableMatrix {
	t.Helper()
	m, err := geom.NewMutableMatrix(obs, components...)
	require.NoError(t, err)

	return m
}

func mustIdentity(t *testing.T, order int) *geom.Matrix {
	t.Helper()
	m, err := geom.Identity(order)
	require.NoError(t, err)

	return m
}

func mustMutableIdentity(t *testing.T, order int) *geom.MutableMatrix {
	t.Helper()
	m, err := geom.NewMutableIdentity(order, nil)
	require.NoError(t, err)

	return m
}

// zeroMatrix returns a mutable order×order output buffer.
func zeroMatrix(t *testing.T, order int) *geom.MutableMatrix {
	t.Helper()
	return mustMutableMatrix(t, nil, make([]float32, order*order)...)
}

// sample4 is a well-conditioned 4×4 matrix with small integer entries.
var sample4 = []float32{
	4, 1, 0, 2,
	1, 3, 1, 0,
	0, 2, 5, 1,
	1, 0, 1, 6,
}

// translation4 builds a 4×4 translation by (x, y, z).
func translation4(t *testing.T, x, y, z float32) *geom.Matrix {
	t.Helper()
	return mustMatrix(t,
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

func requireComponents(t *testing.T, want []float32, got geom.GeometricValue) {
	t.Helper()
	require.NotNil(t, got)
	require.Len(t, got.Components(), len(want))
	for i, w := range want {
		require.InDelta(t, w, got.Components()[i], 1e-5, "component %d of %v", i, got.Components())
	}
}
