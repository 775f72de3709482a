// SPDX-License-Identifier: MIT

// Package geom - conversions to and from golang.org/x/image/math/f32.
//
// f32 matrices are row-major like this package, so conversions copy
// components one to one.

package geom

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// F32Vec2 copies a 2-component vector into an f32.Vec2.
func F32Vec2(v VectorValue) (f32.Vec2, error) {
	var out f32.Vec2
	err := exportComponents(v, out[:])

	return out, err
}

// F32Vec3 copies a 3-component vector into an f32.Vec3.
func F32Vec3(v VectorValue) (f32.Vec3, error) {
	var out f32.Vec3
	err := exportComponents(v, out[:])

	return out, err
}

// F32Vec4 copies a 4-component vector into an f32.Vec4.
func F32Vec4(v VectorValue) (f32.Vec4, error) {
	var out f32.Vec4
	err := exportComponents(v, out[:])

	return out, err
}

// F32Mat3 copies a 3×3 matrix into an f32.Mat3.
func F32Mat3(m SquareMatrix) (f32.Mat3, error) {
	var out f32.Mat3
	err := exportComponents(m, out[:])

	return out, err
}

// F32Mat4 copies a 4×4 matrix into an f32.Mat4.
func F32Mat4(m SquareMatrix) (f32.Mat4, error) {
	var out f32.Mat4
	err := exportComponents(m, out[:])

	return out, err
}

// VectorFromF32Vec2 returns the vector (v[0], v[1]).
func VectorFromF32Vec2(v f32.Vec2) *Vector { return Vec2(v[0], v[1]) }

// VectorFromF32Vec3 returns the vector (v[0], v[1], v[2]).
func VectorFromF32Vec3(v f32.Vec3) *Vector { return Vec3(v[0], v[1], v[2]) }

// VectorFromF32Vec4 returns the vector (v[0], v[1], v[2], v[3]).
func VectorFromF32Vec4(v f32.Vec4) *Vector { return Vec4(v[0], v[1], v[2], v[3]) }

// MatrixFromF32Mat3 returns the 3×3 matrix m.
func MatrixFromF32Mat3(m f32.Mat3) *Matrix { return newMatrix(newState(KindMatrix, m[:]), 3) }

// MatrixFromF32Mat4 returns the 4×4 matrix m.
func MatrixFromF32Mat4(m f32.Mat4) *Matrix { return newMatrix(newState(KindMatrix, m[:]), 4) }

func exportComponents(v GeometricValue, dst []float32) error {
	if isNil(v) {
		return geomErrorf(opInterop, ErrNilValue)
	}
	if v.Len() != len(dst) {
		return geomErrorf(opInterop, fmt.Errorf("%s of %d components into %d: %w", v.Kind(), v.Len(), len(dst), ErrShapeMismatch))
	}
	var buf [maxComponents]float32
	copy(dst, readValues(v, &buf))

	return nil
}
