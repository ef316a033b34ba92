// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"math"
	"testing"

	"cogentcore.org/spintri/math32"
	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	for _, n := range []int{1, 10, 100, 628, 629, 1000, 3000} {
		an := Animation{Animating: true}
		for range n {
			an.Advance()
		}
		want := math.Mod(0.01*float64(n), 2*math.Pi)
		assert.InDelta(t, want, float64(an.Angle), 1e-3, "frames: %d", n)
		assert.GreaterOrEqual(t, an.Angle, float32(0))
		assert.Less(t, an.Angle, float32(math32.TwoPi))
	}
}

func TestAdvanceWraps(t *testing.T) {
	an := Animation{Animating: true}
	for range 629 {
		an.Advance()
	}
	assert.InDelta(t, 0, float64(an.Angle), 0.01)
}

func TestAdvanceIdle(t *testing.T) {
	an := Animation{Angle: 1.5}
	assert.False(t, an.Advance())
	assert.Equal(t, float32(1.5), an.Angle)
}

func TestToggle(t *testing.T) {
	for _, start := range []bool{true, false} {
		an := Animation{Animating: start}
		for k := 1; k <= 5; k++ {
			an.Toggle()
			an.Toggle()
			assert.Equal(t, start, an.Animating, "after %d toggles", 2*k)
		}
		an.Toggle()
		assert.Equal(t, !start, an.Animating)
	}
}

func TestTransform(t *testing.T) {
	an := Animation{}
	assert.Equal(t, math32.Identity4(), an.Transform())

	an.Angle = 0.5
	m := an.Transform()
	assert.InDelta(t, 1, float64(m.Determinant()), 1e-5)
	assert.InDelta(t, math.Cos(0.5), float64(m.At(0, 0)), 1e-6)
	assert.InDelta(t, -math.Sin(0.5), float64(m.At(0, 1)), 1e-6)
	assert.InDelta(t, math.Sin(0.5), float64(m.At(1, 0)), 1e-6)
	assert.Equal(t, float32(1), m.At(2, 2))
	assert.Equal(t, float32(1), m.At(3, 3))
}
