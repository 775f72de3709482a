// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
// Every public operation returns one of these sentinels, wrapped once with the
// operation tag ("Op: geom: ..."). Tests and callers match them via errors.Is.
// Nothing in this package panics on user input; option constructors panic on
// nonsensical arguments (programmer error), as documented on each WithX.

package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a component, row or column index outside the shape.
	ErrOutOfRange = errors.New("geom: index out of range")

	// ErrBadLength indicates a component list whose length does not fit the shape
	// (or a requested dimension/order the shape does not support).
	ErrBadLength = errors.New("geom: component count does not match shape")

	// ErrShapeMismatch indicates operands of incompatible kind or dimension.
	ErrShapeMismatch = errors.New("geom: incompatible operand shapes")

	// ErrSingular is returned when a determinant is zero within tolerance.
	ErrSingular = errors.New("geom: singular matrix")

	// ErrZeroMagnitude is returned when normalizing or inverting a zero-length value.
	ErrZeroMagnitude = errors.New("geom: zero magnitude")

	// ErrZeroDivisor is returned when a homogeneous transform yields w == 0.
	ErrZeroDivisor = errors.New("geom: homogeneous coordinate is zero")

	// ErrInvalidProjection is returned for degenerate projection/view parameters.
	ErrInvalidProjection = errors.New("geom: invalid projection parameters")

	// ErrReadOnly is returned when writing into a derived-attribute cell handed
	// out by a mutable owner. Those cells are owned by the cache.
	ErrReadOnly = errors.New("geom: derived value is read-only")

	// ErrNilValue indicates a nil operand or output.
	ErrNilValue = errors.New("geom: nil value")
)

// Operation tags for uniform error wrapping.
const (
	opNew          = "New"
	opFrom         = "From"
	opAt           = "At"
	opSet          = "Set"
	opSetFrom      = "SetFrom"
	opSetAt        = "SetAt"
	opAdd          = "Add"
	opSub          = "Sub"
	opScale        = "Scale"
	opNegate       = "Negate"
	opCross        = "Cross"
	opLerp         = "Lerp"
	opNormalize    = "Normalize"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opInverse      = "Inverse"
	opConjugate    = "Conjugate"
	opTransform    = "Transform"
	opTranslate    = "Translate"
	opRotate       = "Rotate"
	opToMatrix     = "ToMatrix"
	opPerspective  = "Perspective"
	opOrthographic = "Orthographic"
	opLookAt       = "LookAt"
	opAxisAngle    = "AxisAngle"
	opInterop      = "Interop"
)

// geomErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func geomErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
