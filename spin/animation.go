// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import "cogentcore.org/spintri/math32"

// Step is the angle in radians the triangle rotates per frame.
const Step float32 = 0.01

// Animation is the rotation state of the triangle.
type Animation struct {
	// Angle is the current rotation in radians, in [0, 2π).
	Angle float32

	// Animating is whether the angle advances each frame.
	Animating bool
}

// Toggle starts or stops the rotation.
func (an *Animation) Toggle() {
	an.Animating = !an.Animating
}

// Advance moves the angle one [Step] forward if animating,
// and reports whether it did.
func (an *Animation) Advance() bool {
	if !an.Animating {
		return false
	}
	an.Angle = math32.WrapAngle(an.Angle + Step)
	return true
}

// Transform returns the rotation about the z axis for the current angle.
func (an *Animation) Transform() math32.Matrix4 {
	return math32.RotationZ(an.Angle)
}
