// SPDX-License-Identifier: MIT

// Package geom - projection and view builders.
//
// Conventions:
//   - Right-handed eye space looking down -Z, column vectors (clip = P·V·p).
//   - Clip-space depth in [-1, 1].
//   - Results are written into a 4×4 *MutableMatrix through the regular
//     setter path, so rebuilding an unchanged projection is a no-op and does
//     not notify the observer.

package geom

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/lvgeom/tolerance"
)

// Perspective writes a perspective projection into out (4×4).
// fovY is the vertical field of view in radians, in (0, π).
// Errors: ErrInvalidProjection (fovY, aspect ≤ 0, near ≤ 0, far ≈ near,
// far < near), ErrShapeMismatch (out not 4×4).
func Perspective(fovY, aspect, near, far float32, out *MutableMatrix, opts ...Option) (*MutableMatrix, error) {
	if err := checkProjectionOut(out); err != nil {
		return nil, geomErrorf(opPerspective, err)
	}
	switch {
	case !(fovY > 0 && fovY < math32.Pi):
		return nil, geomErrorf(opPerspective, fmt.Errorf("fovY %v: %w", fovY, ErrInvalidProjection))
	case !(aspect > 0):
		return nil, geomErrorf(opPerspective, fmt.Errorf("aspect %v: %w", aspect, ErrInvalidProjection))
	case !(near > 0) || far < near || tolerance.Equal(near, far):
		return nil, geomErrorf(opPerspective, fmt.Errorf("near %v far %v: %w", near, far, ErrInvalidProjection))
	}
	o := gatherOptions(opts...)
	f := 1 / o.trig.Tan(fovY/2)
	depth := near - far

	next := [16]float32{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / depth, 2 * far * near / depth,
		0, 0, -1, 0,
	}
	if err := out.write(opPerspective, next[:]); err != nil {
		return nil, err
	}

	return out, nil
}

// Orthographic writes an orthographic projection of the box
// [left, right]×[bottom, top]×[-near, -far] into out (4×4).
// Errors: ErrInvalidProjection (any zero-width axis), ErrShapeMismatch.
func Orthographic(left, right, bottom, top, near, far float32, out *MutableMatrix) (*MutableMatrix, error) {
	if err := checkProjectionOut(out); err != nil {
		return nil, geomErrorf(opOrthographic, err)
	}
	if tolerance.Equal(left, right) || tolerance.Equal(bottom, top) || tolerance.Equal(near, far) {
		return nil, geomErrorf(opOrthographic, fmt.Errorf("degenerate box: %w", ErrInvalidProjection))
	}
	w, h, d := right-left, top-bottom, far-near

	next := [16]float32{
		2 / w, 0, 0, -(right + left) / w,
		0, 2 / h, 0, -(top + bottom) / h,
		0, 0, -2 / d, -(far + near) / d,
		0, 0, 0, 1,
	}
	if err := out.write(opOrthographic, next[:]); err != nil {
		return nil, err
	}

	return out, nil
}

// LookAt writes the view matrix of a camera at eye looking at target into
// out (4×4). eye and target are 3D points; up is a 3-component vector.
// Errors: ErrInvalidProjection (eye ≈ target, up parallel to the view
// direction), ErrShapeMismatch.
func LookAt(eye, target PointValue, up VectorValue, out *MutableMatrix) (*MutableMatrix, error) {
	if isNil(eye) || isNil(target) || isNil(up) {
		return nil, geomErrorf(opLookAt, ErrNilValue)
	}
	if err := checkProjectionOut(out); err != nil {
		return nil, geomErrorf(opLookAt, err)
	}
	if eye.Len() != 3 || target.Len() != 3 || up.Len() != 3 {
		return nil, geomErrorf(opLookAt, fmt.Errorf("want 3D eye, target and up: %w", ErrShapeMismatch))
	}
	e, t := eye.point().values(), target.point().values()

	var f, s, u [3]float32
	for i := range f {
		f[i] = t[i] - e[i]
	}
	if !normalize3(f[:]) {
		return nil, geomErrorf(opLookAt, fmt.Errorf("eye equals target: %w", ErrInvalidProjection))
	}
	cross(s[:], f[:], up.vector().values())
	if !normalize3(s[:]) {
		return nil, geomErrorf(opLookAt, fmt.Errorf("up parallel to view direction: %w", ErrInvalidProjection))
	}
	cross(u[:], s[:], f[:])

	next := [16]float32{
		s[0], s[1], s[2], -dot(s[:], e),
		u[0], u[1], u[2], -dot(u[:], e),
		-f[0], -f[1], -f[2], dot(f[:], e),
		0, 0, 0, 1,
	}
	if err := out.write(opLookAt, next[:]); err != nil {
		return nil, err
	}

	return out, nil
}

func checkProjectionOut(out *MutableMatrix) error {
	if out == nil {
		return ErrNilValue
	}
	if out.order != 4 {
		return fmt.Errorf("output is %dx%d, want 4x4: %w", out.order, out.order, ErrShapeMismatch)
	}

	return nil
}

// normalize3 scales v to unit length in place; false when |v| ≈ 0.
func normalize3(v []float32) bool {
	m := math32.Sqrt(dot(v, v))
	if tolerance.IsZero(m) {
		return false
	}
	for i := range v {
		v[i] /= m
	}

	return true
}
