// Package lvgeom is a small linear-algebra runtime for real-time graphics:
// vectors, points, square matrices, quaternions and projection builders, each
// in an immutable and a mutable variant.
//
// What you get:
//
//	• Tolerant float equality – one hybrid absolute/ULP/relative comparator
//	  used by every equality, identity check and no-op test
//	• Mutable values with observers – setters skip no-op writes, invalidate
//	  cached derived values and notify an optional observer exactly once
//	• Cached derived values – transpose, inverse, determinant, conjugate and
//	  magnitude are computed lazily and never returned stale
//	• Identity fast path – products with an identity operand skip the kernel
//	• Projections – perspective, orthographic and look-at builders
//
// Under the hood, everything is organized under two subpackages:
//
//	tolerance/ — the float comparator and its YAML-loadable Policy
//	geom/      — shapes, caches, observers, fast path, projections, f32 interop
//
// Quick example:
//
//	m, _ := geom.NewMutableIdentity(2, nil)
//	_ = m.ScaleAssign(2)
//	inv, _ := m.Inverse() // [[0.5, 0], [0, 0.5]], cached until m changes
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
