// SPDX-License-Identifier: MIT

// Package geom - general kernels over flat row-major buffers.
//
// Purpose:
//   - One implementation per algorithm for every supported order (2, 3, 4).
//   - Pure functions: read src slices, write dst, no shared scratch state.
//
// Notes:
//   - dst must not alias a source; callers compute into a stack array and
//     then commit it through the setter pipeline.
//   - Determinant and inverse accumulate in float64 and round once.
//   - Fixed loop orders (i→j→k) keep results deterministic.

package geom

import (
	"math"

	"github.com/katalvlaran/lvgeom/tolerance"
)

// mulSquare computes dst = a × b for n×n row-major operands.
// Complexity: O(n³).
func mulSquare(dst, a, b []float32, n int) {
	enterKernel(kernelMulSquare)
	var i, j, k int
	var sum float32
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			dst[i*n+j] = sum
		}
	}
}

// mulVec computes dst = m × v for an n×n matrix and an n-vector.
// Complexity: O(n²).
func mulVec(dst, m, v []float32, n int) {
	enterKernel(kernelMulVec)
	var i, k int
	var sum float32
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < n; k++ {
			sum += m[i*n+k] * v[k]
		}
		dst[i] = sum
	}
}

// transposeSquare writes srcᵀ into dst.
func transposeSquare(dst, src []float32, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[j*n+i] = src[i*n+j]
		}
	}
}

// determinant returns det(src) for an n×n row-major matrix.
// Implementation:
//   - n == 2: closed form.
//   - otherwise: Gaussian elimination with partial pivoting in float64;
//     each row swap flips the sign.
//
// Complexity: O(n³).
func determinant(src []float32, n int) float32 {
	if n == 2 {
		return float32(float64(src[0])*float64(src[3]) - float64(src[1])*float64(src[2]))
	}

	var a [maxComponents]float64
	for i, v := range src {
		a[i] = float64(v)
	}

	det := 1.0
	var col, r, c, pivot int
	var f float64
	for col = 0; col < n; col++ {
		pivot = col
		for r = col + 1; r < n; r++ {
			if math.Abs(a[r*n+col]) > math.Abs(a[pivot*n+col]) {
				pivot = r
			}
		}
		if a[pivot*n+col] == 0 {
			return 0
		}
		if pivot != col {
			swapRows(a[:n*n], n, pivot, col)
			det = -det
		}
		det *= a[col*n+col]
		for r = col + 1; r < n; r++ {
			f = a[r*n+col] / a[col*n+col]
			for c = col; c < n; c++ {
				a[r*n+c] -= f * a[col*n+c]
			}
		}
	}

	return float32(det)
}

// invertSquare writes src⁻¹ into dst.
// Implementation:
//   - Stage 1: reject det ≈ 0 (tolerance.IsZero) with ErrSingular.
//   - Stage 2: Gauss–Jordan on [A | I] with partial pivoting in float64.
//
// Errors:
//   - ErrSingular. dst is left untouched on error.
//
// Complexity: O(n³).
func invertSquare(dst, src []float32, n int, det float32) error {
	if tolerance.IsZero(det) {
		return ErrSingular
	}

	var a, inv [maxComponents]float64
	for i, v := range src {
		a[i] = float64(v)
	}
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}

	var col, r, c, pivot int
	var p, f float64
	for col = 0; col < n; col++ {
		pivot = col
		for r = col + 1; r < n; r++ {
			if math.Abs(a[r*n+col]) > math.Abs(a[pivot*n+col]) {
				pivot = r
			}
		}
		if a[pivot*n+col] == 0 {
			return ErrSingular
		}
		if pivot != col {
			swapRows(a[:n*n], n, pivot, col)
			swapRows(inv[:n*n], n, pivot, col)
		}
		p = a[col*n+col]
		for c = 0; c < n; c++ {
			a[col*n+c] /= p
			inv[col*n+c] /= p
		}
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			f = a[r*n+col]
			if f == 0 {
				continue
			}
			for c = 0; c < n; c++ {
				a[r*n+c] -= f * a[col*n+c]
				inv[r*n+c] -= f * inv[col*n+c]
			}
		}
	}

	for i := 0; i < n*n; i++ {
		dst[i] = float32(inv[i])
	}

	return nil
}

func swapRows(a []float64, n, r1, r2 int) {
	for c := 0; c < n; c++ {
		a[r1*n+c], a[r2*n+c] = a[r2*n+c], a[r1*n+c]
	}
}

// mulQuaternion computes the Hamilton product dst = a ⊗ b on (x, y, z, w).
func mulQuaternion(dst, a, b []float32) {
	enterKernel(kernelMulQuaternion)
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	dst[0] = aw*bx + ax*bw + ay*bz - az*by
	dst[1] = aw*by - ax*bz + ay*bw + az*bx
	dst[2] = aw*bz + ax*by - ay*bx + az*bw
	dst[3] = aw*bw - ax*bx - ay*by - az*bz
}

// rotateByUnit rotates v (3 components) by the unit quaternion q:
// v' = v + 2w(u×v) + 2u×(u×v), u = (x, y, z).
func rotateByUnit(dst, q, v []float32) {
	enterKernel(kernelRotate)
	ux, uy, uz, w := q[0], q[1], q[2], q[3]
	// t = 2(u×v)
	tx := 2 * (uy*v[2] - uz*v[1])
	ty := 2 * (uz*v[0] - ux*v[2])
	tz := 2 * (ux*v[1] - uy*v[0])
	dst[0] = v[0] + w*tx + (uy*tz - uz*ty)
	dst[1] = v[1] + w*ty + (uz*tx - ux*tz)
	dst[2] = v[2] + w*tz + (ux*ty - uy*tx)
}

// dot returns Σ a[i]·b[i].
func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}
