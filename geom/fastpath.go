// SPDX-License-Identifier: MIT

// Package geom - identity fast path for binary operators.
//
// Purpose:
//   - Classify an operand as identity, zero or general with tolerance equality.
//   - Let matrix×matrix, matrix×vector/point and quaternion×quaternion skip the
//     general kernel when an operand is the identity.
//
// Behavior highlights:
//   - The class is a derived attribute of each operand (cached, invalidated on
//     mutation), so repeated products with the same operand classify once.
//   - Only the identity shortcut is taken. A "zero within tolerance" operand
//     can still produce a large product against large entries, so the general
//     kernel stays authoritative there.
//   - The general kernel, when run, yields a tolerance-equal result; tests
//     compare both paths with the shortcut switched off.

package geom

import "github.com/katalvlaran/lvgeom/tolerance"

type operandClass uint8

const (
	classGeneral operandClass = iota
	classIdentity
	classZero
)

type shortcut uint8

const (
	noShortcut shortcut = iota
	takeLeft            // output = left operand
	takeRight           // output = right operand
)

// General kernel names reported to kernelHook.
const (
	kernelMulSquare     = "mulSquare"
	kernelMulVec        = "mulVec"
	kernelMulQuaternion = "mulQuaternion"
	kernelRotate        = "rotate"
)

var (
	// fastPathEnabled gates every shortcut. Only tests switch it off.
	fastPathEnabled = true

	// kernelHook, when non-nil, is called on entry of every general kernel.
	// Only tests set it.
	kernelHook func(kernel string)
)

func enterKernel(name string) {
	if kernelHook != nil {
		kernelHook(name)
	}
}

// classifySquare classifies an n×n row-major matrix.
// Complexity: O(n²), early exit once both identity and zero are ruled out.
func classifySquare(c []float32, n int) operandClass {
	identity, zero := true, true
	for i, v := range c {
		if identity {
			if i%(n+1) == 0 {
				identity = tolerance.IsOne(v)
			} else {
				identity = tolerance.IsZero(v)
			}
		}
		if zero {
			zero = tolerance.IsZero(v)
		}
		if !identity && !zero {
			return classGeneral
		}
	}
	if identity {
		return classIdentity
	}

	return classZero
}

// classifyQuaternion classifies (x, y, z, w); identity is (0, 0, 0, 1).
func classifyQuaternion(c []float32) operandClass {
	vectorZero := tolerance.IsZero(c[0]) && tolerance.IsZero(c[1]) && tolerance.IsZero(c[2])
	switch {
	case vectorZero && tolerance.IsOne(c[3]):
		return classIdentity
	case vectorZero && tolerance.IsZero(c[3]):
		return classZero
	default:
		return classGeneral
	}
}

// productShortcut picks the shortcut for left×right.
func productShortcut(left, right operandClass) shortcut {
	if !fastPathEnabled {
		return noShortcut
	}
	switch {
	case left == classIdentity:
		return takeRight
	case right == classIdentity:
		return takeLeft
	default:
		return noShortcut
	}
}

// transformShortcut reports whether a transform by an operator of the given
// class may return its operand unchanged.
func transformShortcut(operator operandClass) bool {
	return fastPathEnabled && operator == classIdentity
}
