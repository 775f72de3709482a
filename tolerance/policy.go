// SPDX-License-Identifier: MIT

// Package tolerance: comparison policy, functional options and YAML loading.
//
// Purpose:
//   - Carry non-default comparison bands as a value (Policy).
//   - Build a Policy with strongly validated functional options.
//   - Let applications keep per-profile bands in configuration files.

package tolerance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPolicy is returned when a parsed or hand-built policy carries a
// negative, NaN or infinite band.
var ErrInvalidPolicy = errors.New("tolerance: invalid policy")

const (
	panicAbsoluteDiffInvalid = "tolerance: WithMaxAbsoluteDiff: band must lie in [0, MaxFloat32]"
	panicUlpsInvalid         = "tolerance: WithMaxUlps: ulps must be non-negative"
)

// Policy holds the bands used by EqualWithin.
// The zero Policy is legal but strict: only bit-identical values (and ±0) compare equal.
type Policy struct {
	MaxAbsoluteDiff float64 `yaml:"max_absolute_diff"`
	MaxUlps         int64   `yaml:"max_ulps"`
}

// Option mutates a Policy under construction.
type Option func(*Policy)

// DefaultPolicy returns the documented defaults.
func DefaultPolicy() Policy {
	return Policy{MaxAbsoluteDiff: DefaultMaxAbsoluteDiff, MaxUlps: DefaultMaxUlps}
}

// NewPolicy applies opts on top of DefaultPolicy (last writer wins).
// Complexity: O(len(opts)).
func NewPolicy(opts ...Option) Policy {
	p := DefaultPolicy()
	for _, set := range opts {
		set(&p)
	}

	return p
}

// WithMaxAbsoluteDiff sets the absolute band (also the relative factor).
// Panics when d is NaN, negative or beyond math.MaxFloat32: that is a
// programmer error.
func WithMaxAbsoluteDiff(d float64) Option {
	if !validBand(d) {
		panic(panicAbsoluteDiffInvalid)
	}

	return func(p *Policy) { p.MaxAbsoluteDiff = d }
}

// WithMaxUlps sets the ULP band. Panics when n is negative.
func WithMaxUlps(n int64) Option {
	if n < 0 {
		panic(panicUlpsInvalid)
	}

	return func(p *Policy) { p.MaxUlps = n }
}

// Validate reports ErrInvalidPolicy for bands no option constructor would accept.
func (p Policy) Validate() error {
	if !validBand(p.MaxAbsoluteDiff) {
		return fmt.Errorf("%w: max_absolute_diff=%v", ErrInvalidPolicy, p.MaxAbsoluteDiff)
	}
	if p.MaxUlps < 0 {
		return fmt.Errorf("%w: max_ulps=%d", ErrInvalidPolicy, p.MaxUlps)
	}

	return nil
}

// validBand reports whether d is usable by both Equal32 and Equal64. Bands
// above math.MaxFloat32 would narrow to +Inf and accept every finite pair.
func validBand(d float64) bool { return d >= 0 && d <= math.MaxFloat32 }

// Equal32 compares two float32 values under p.
func (p Policy) Equal32(a, b float32) bool {
	return EqualWithin(a, b, float32(p.MaxAbsoluteDiff), p.MaxUlps)
}

// Equal64 compares two float64 values under p.
func (p Policy) Equal64(a, b float64) bool {
	return EqualWithin(a, b, p.MaxAbsoluteDiff, p.MaxUlps)
}

// EqualSlices is the Policy counterpart of the package-level EqualSlices.
func (p Policy) EqualSlices(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !p.Equal32(a[i], b[i]) {
			return false
		}
	}

	return true
}

// ParsePolicy decodes a YAML document into a Policy.
// Implementation:
//   - Stage 1: start from DefaultPolicy so absent keys keep their defaults.
//   - Stage 2: decode with unknown keys rejected.
//   - Stage 3: Validate.
//
// An empty document yields DefaultPolicy.
//
// Example document:
//
//	max_absolute_diff: 1e-4
//	max_ulps: 8
//
// Errors:
//   - ErrInvalidPolicy (wrapping the YAML error or the offending band).
func ParsePolicy(data []byte) (Policy, error) {
	p := DefaultPolicy()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}
