// SPDX-License-Identifier: MIT

package geom

import "github.com/chewxy/math32"

// Trig evaluates the trigonometric functions used by projection and
// axis-angle builders. A table-driven implementation can be plugged in
// with WithTrig; the default is MathTrig. Angles are in radians.
type Trig interface {
	Sin(rad float32) float32
	Cos(rad float32) float32
	Tan(rad float32) float32
}

// MathTrig evaluates Trig with github.com/chewxy/math32.
type MathTrig struct{}

var _ Trig = MathTrig{}

// Sin returns sin(rad).
func (MathTrig) Sin(rad float32) float32 { return math32.Sin(rad) }

// Cos returns cos(rad).
func (MathTrig) Cos(rad float32) float32 { return math32.Cos(rad) }

// Tan returns tan(rad).
func (MathTrig) Tan(rad float32) float32 { return math32.Tan(rad) }
