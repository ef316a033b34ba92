// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"unsafe"
)

// Matrix4 is a 4x4 matrix of float32 values, stored in row-major
// order: element (row r, column c) is at index r*4+c.
// The 64 bytes of a Matrix4 are uploaded to the GPU as is.
type Matrix4 [16]float32

// Matrix4Size is the size of a [Matrix4] in bytes.
const Matrix4Size = int(unsafe.Sizeof(Matrix4{}))

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation matrix about the Z axis
// by the given angle in radians.
func RotationZ(theta float32) Matrix4 {
	s, c := Sincos(theta)
	return Matrix4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m *Matrix4) At(row, col int) float32 {
	return m[row*4+col]
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	n11, n12, n13, n14 := m[0], m[1], m[2], m[3]
	n21, n22, n23, n24 := m[4], m[5], m[6], m[7]
	n31, n32, n33, n34 := m[8], m[9], m[10], m[11]
	n41, n42, n43, n44 := m[12], m[13], m[14], m[15]

	// 2x2 minors of the bottom two rows
	s0 := n31*n42 - n32*n41
	s1 := n31*n43 - n33*n41
	s2 := n31*n44 - n34*n41
	s3 := n32*n43 - n33*n42
	s4 := n32*n44 - n34*n42
	s5 := n33*n44 - n34*n43

	return n11*(n22*s5-n23*s4+n24*s3) -
		n12*(n21*s5-n23*s2+n24*s1) +
		n13*(n21*s4-n22*s2+n24*s0) -
		n14*(n21*s3-n22*s1+n23*s0)
}

// Bytes returns the matrix memory as a byte slice, in the
// native (little-endian on all GPU platforms) byte order.
// The slice aliases the matrix.
func (m *Matrix4) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&m[0])), Matrix4Size)
}
