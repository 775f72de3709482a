// SPDX-License-Identifier: MIT

// Package tolerance decides whether two floating-point numbers are "the same".
//
// Every equality decision in lvgeom funnels through this package: value
// equality, identity/zero detection, the no-op check of mutable setters and
// the fast-path gating of binary operators. Using one comparator everywhere
// keeps those decisions consistent with each other.
//
// The comparator is a three-tier hybrid, evaluated in order and stopping at
// the first tier that accepts:
//
//  1. Absolute: |a-b| <= maxAbsoluteDiff. Handles values near zero.
//  2. ULP: both inputs are reinterpreted as sign-magnitude integers and their
//     distance is compared with maxUlps. Skipped when an input is NaN/±Inf or
//     when the signs differ (so -tiny and +tiny never match through this tier).
//  3. Relative: |a-b| <= max(|a|,|b|) * maxAbsoluteDiff.
//
// Defaults are DefaultMaxAbsoluteDiff = 1e-5 and DefaultMaxUlps = 5.
// A Policy carries non-default bands and can be parsed from YAML.
//
// All functions are pure and safe for concurrent use.
package tolerance
