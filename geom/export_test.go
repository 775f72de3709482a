// SPDX-License-Identifier: MIT

package geom

// White-box bridge for geom_test: fast-path switch, kernel counters and
// cache recompute counters. Compiled only with the tests.
//
// The switches are package state; tests using them must not run in parallel.

// SetFastPathEnabled switches every identity shortcut on or off and returns
// a func restoring the previous setting.
func SetFastPathEnabled(on bool) (restore func()) {
	prev := fastPathEnabled
	fastPathEnabled = on

	return func() { fastPathEnabled = prev }
}

// CountKernels counts general-kernel invocations by kernel name until restore
// is called.
func CountKernels() (counts map[string]int, restore func()) {
	counts = make(map[string]int)
	prev := kernelHook
	kernelHook = func(name string) { counts[name]++ }

	return counts, func() { kernelHook = prev }
}

// Kernel names as reported by CountKernels.
const (
	KernelMulSquare     = kernelMulSquare
	KernelMulVec        = kernelMulVec
	KernelMulQuaternion = kernelMulQuaternion
	KernelRotate        = kernelRotate
)

func MagnitudeRecomputes(v VectorValue) int { return v.vector().magnitude.recomputes }
func DeterminantRecomputes(m SquareMatrix) int { return m.matrix().det.recomputes }
func ClassRecomputes(m SquareMatrix) int { return m.matrix().class.recomputes }
func TransposeRecomputes(m *MutableMatrix) int { return m.transpose.recomputes }
func InverseRecomputes(m *MutableMatrix) int { return m.inverse.recomputes }
func FrozenInverseRecomputes(m *Matrix) int { return m.inverse.recomputes }
func ConjugateRecomputes(q *MutableQuaternion) int { return q.conjugate.recomputes }
func QuatInverseRecomputes(q *MutableQuaternion) int { return q.inverse.recomputes }

// IsSealed reports whether a mutable value is a read-only derived cell.
func IsSealed(v any) bool {
	switch t := v.(type) {
	case *MutableMatrix:
		return t.mut.sealed
	case *MutableQuaternion:
		return t.mut.sealed
	default:
		return false
	}
}
