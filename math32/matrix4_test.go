// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-5

func TestIdentity4(t *testing.T) {
	m := Identity4()
	for r := range 4 {
		for c := range 4 {
			want := float32(0)
			if r == c {
				want = 1
			}
			assert.Equal(t, want, m.At(r, c))
		}
	}
	assert.Equal(t, float32(1), m.Determinant())
	assert.Equal(t, Identity4(), RotationZ(0))
}

func TestRotationZ(t *testing.T) {
	m := RotationZ(Pi / 2)
	assert.InDelta(t, 0, m.At(0, 0), standardTol)
	assert.InDelta(t, -1, m.At(0, 1), standardTol)
	assert.InDelta(t, 1, m.At(1, 0), standardTol)
	assert.InDelta(t, 0, m.At(1, 1), standardTol)
	// only the upper 2x2 block differs from identity
	id := Identity4()
	for i := 2; i < 16; i++ {
		if i == 4 || i == 5 {
			continue
		}
		assert.Equal(t, id[i], m[i], "index %d", i)
	}
}

func TestRotationZDeterminant(t *testing.T) {
	for i := range 1000 {
		theta := float32(i) * 0.0137
		m := RotationZ(theta)
		assert.InDelta(t, 1, m.Determinant(), standardTol, "theta %g", theta)
	}
}

func TestDeterminant(t *testing.T) {
	m := Matrix4{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		1, 2, 3, 1,
	}
	assert.InDelta(t, 24, m.Determinant(), standardTol)
	m[0], m[1] = m[1], m[0]
	m[4], m[5] = m[5], m[4]
	assert.InDelta(t, -24, m.Determinant(), standardTol)
}

func TestBytes(t *testing.T) {
	m := RotationZ(0.5)
	b := m.Bytes()
	assert.Len(t, b, 64)
	assert.Equal(t, 64, Matrix4Size)
	for i := range 16 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		assert.Equal(t, m[i], v)
	}
}

func TestWrapAngle(t *testing.T) {
	assert.Equal(t, float32(0), WrapAngle(0))
	assert.InDelta(t, 1, WrapAngle(1), standardTol)
	assert.InDelta(t, 0.5, WrapAngle(TwoPi+0.5), standardTol)
	assert.InDelta(t, TwoPi-0.5, WrapAngle(-0.5), standardTol)
	for i := range 100 {
		a := WrapAngle(float32(i) * 0.77)
		assert.GreaterOrEqual(t, a, float32(0))
		assert.Less(t, a, float32(TwoPi))
	}
}
