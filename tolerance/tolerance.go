// SPDX-License-Identifier: MIT

package tolerance

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Default comparison bands (single source of truth).
const (
	// DefaultMaxAbsoluteDiff is the absolute band and the relative factor.
	DefaultMaxAbsoluteDiff = 1e-5

	// DefaultMaxUlps is the largest accepted sign-magnitude ULP distance.
	DefaultMaxUlps = 5
)

const (
	signMask32 = uint32(1) << 31
	signMask64 = uint64(1) << 63
)

// Equal reports whether a and b are equal under the default bands.
// Complexity: O(1).
func Equal[F constraints.Float](a, b F) bool {
	return EqualWithin(a, b, F(DefaultMaxAbsoluteDiff), DefaultMaxUlps)
}

// EqualWithin reports whether a and b are equal under the given bands.
// Implementation:
//   - Stage 1: absolute tier |a-b| <= maxAbsoluteDiff.
//   - Stage 2: ULP tier (skipped for non-finite input or a sign mismatch).
//   - Stage 3: relative tier |a-b| <= max(|a|,|b|)*maxAbsoluteDiff.
//
// Behavior highlights:
//   - Symmetric in a and b.
//   - NaN is never equal to anything, itself included.
//   - ±Inf is not equal to anything, itself included: the difference is NaN or Inf,
//     the ULP tier skips non-finite input and the relative tier refuses an infinite scale.
//     This departs from the plain three-tier formula, under which
//     |Inf-1| <= Inf*maxAbsoluteDiff would make +Inf equal to every finite value.
//
// Complexity:
//   - Time O(1), Space O(1).
func EqualWithin[F constraints.Float](a, b F, maxAbsoluteDiff F, maxUlps int64) bool {
	diff := abs(a - b)
	if diff <= maxAbsoluteDiff {
		return true
	}

	if d, ok := UlpDistance(a, b); ok && d <= maxUlps {
		return true
	}

	largest := max(abs(a), abs(b))
	if math.IsInf(float64(largest), 1) {
		return false // Inf*band would accept any finite partner
	}

	return diff <= largest*maxAbsoluteDiff
}

// IsZero reports whether x equals 0 under the default bands.
func IsZero[F constraints.Float](x F) bool { return Equal(x, 0) }

// IsOne reports whether x equals 1 under the default bands.
func IsOne[F constraints.Float](x F) bool { return Equal(x, 1) }

// UlpDistance returns the sign-magnitude ULP distance between a and b.
// ok is false when either input is NaN/±Inf or when the sign bits differ;
// the distance is then unbounded and callers must not treat it as a match.
//
// Notes:
//   - -0 and +0 differ in sign, so UlpDistance(-0, +0) is (0, false).
//     Equality of signed zeros is settled by the absolute tier instead.
func UlpDistance[F constraints.Float](a, b F) (int64, bool) {
	if unsafe.Sizeof(a) == 4 {
		return ulpDistance32(float32(a), float32(b))
	}

	return ulpDistance64(float64(a), float64(b))
}

func ulpDistance32(a, b float32) (int64, bool) {
	if math32.IsNaN(a) || math32.IsNaN(b) || math32.IsInf(a, 0) || math32.IsInf(b, 0) {
		return 0, false
	}
	ba, bb := math.Float32bits(a), math.Float32bits(b)
	if ba&signMask32 != bb&signMask32 {
		return 0, false
	}
	d := int64(ba&^signMask32) - int64(bb&^signMask32)
	if d < 0 {
		d = -d
	}

	return d, true
}

func ulpDistance64(a, b float64) (int64, bool) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, false
	}
	ba, bb := math.Float64bits(a), math.Float64bits(b)
	if ba&signMask64 != bb&signMask64 {
		return 0, false
	}
	// magnitudes are < 2^63, so both conversions and the difference fit in int64
	d := int64(ba&^signMask64) - int64(bb&^signMask64)
	if d < 0 {
		d = -d
	}

	return d, true
}

// EqualSlices reports whether a and b have the same length and are
// element-wise Equal. Complexity: O(n).
func EqualSlices(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func abs[F constraints.Float](x F) F {
	if x < 0 {
		return -x
	}

	return x
}
