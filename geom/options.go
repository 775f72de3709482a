// SPDX-License-Identifier: MIT

// Package geom: functional options for builders that call external
// collaborators (projection and axis-angle builders).
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - Safe by construction: WithX panics only on nonsensical values.

package geom

const panicTrigNil = "geom: WithTrig: trig must be non-nil"

// Option configures a builder call.
type Option func(*Options)

// Options is the resolved builder configuration.
type Options struct {
	trig Trig
}

// WithTrig replaces the trigonometric evaluator (default MathTrig).
// Panics on nil.
func WithTrig(t Trig) Option {
	if t == nil {
		panic(panicTrigNil)
	}

	return func(o *Options) { o.trig = t }
}

// gatherOptions applies opts over the defaults (last writer wins).
func gatherOptions(opts ...Option) Options {
	o := Options{trig: MathTrig{}}
	for _, set := range opts {
		set(&o)
	}

	return o
}
