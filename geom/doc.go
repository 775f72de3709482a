// SPDX-License-Identifier: MIT

// Package geom provides vectors, points, square matrices and quaternions for
// real-time graphics, each as an immutable and a mutable type.
//
// Value model:
//
//   - Immutable types (Vector, Point, Matrix, Quaternion) never change; their
//     derived values (magnitude, transpose, inverse, determinant, conjugate)
//     are computed on first access and cached forever.
//   - Mutable types (MutableVector, ...) change only through their setters.
//     Every setter compares the requested state with the current one using
//     package tolerance; an equal state is a no-op. Otherwise the setter
//     writes, marks every derived cache Dirty and calls the observer given at
//     construction, exactly once.
//   - Derived getters on mutable types recompute only when Dirty and always
//     hand out the same cell instance. Those cells are read-only.
//   - Operations never change their receiver: they write into an explicit
//     output (which may be the receiver) and return it, so
//     m.Mul(o, m) is an in-place multiply. Compound XxxAssign methods are
//     exactly that.
//
// Fast path:
//
//   - Matrix×matrix, matrix×vector/point, quaternion×quaternion and
//     quaternion rotation skip the general kernel when an operand is the
//     identity within tolerance. The result equals what the kernel would give.
//
// Errors:
//
//   - Sentinels in errors.go, wrapped as "Op: geom: ...". Match with errors.Is.
//
// Concurrency:
//
//   - No locking anywhere. A mutable value must be used by one goroutine at a
//     time. Immutable values are safe to share once their derived values were
//     first computed; the first access writes the cache, so racing first
//     accesses must be serialized by the caller.
//   - Observers run synchronously on the mutating goroutine. An observer that
//     mutates its own subject again recurses; avoiding that is up to the caller.
//
// Example:
//
//	var changes int
//	v := geom.NewMutableVec2(1, 0, geom.ObserverFunc[*geom.MutableVector](func(*geom.MutableVector) {
//		changes++
//	}))
//	_ = v.Set(1, 0) // no-op, changes == 0
//	_ = v.Set(0, 1) // changes == 1
package geom
