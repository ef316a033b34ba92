// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spin renders a single colored triangle that rotates
// about its center, and stops or restarts rotating when the
// left mouse button is pressed.
package spin

import (
	_ "embed"

	"cogentcore.org/spintri/gpu"
)

// TriangleShader is the WGSL code for drawing the triangle:
// the vertex stage applies the transform in group 0, binding 0.
//
//go:embed triangle.wgsl
var TriangleShader string

// Shader entry points in [TriangleShader].
const (
	VertexEntry   = "vertexMain"
	FragmentEntry = "fragmentMain"
)

// Vertex is one corner of the triangle, as laid out in the vertex buffer.
type Vertex struct {
	Pos   [2]float32
	Color [3]float32
}

// VertexFields are the shader attributes of a [Vertex],
// at @location 0 and 1.
var VertexFields = []gpu.VarField{
	{Name: "Pos", Type: gpu.Float32Vector2},
	{Name: "Color", Type: gpu.Float32Vector3},
}

// Triangle has the vertices of the triangle: red at the top,
// green at the bottom left and blue at the bottom right,
// centered on the origin.
var Triangle = [3]Vertex{
	{Pos: [2]float32{0, 0.6667}, Color: [3]float32{1, 0, 0}},
	{Pos: [2]float32{-0.5, -0.3333}, Color: [3]float32{0, 1, 0}},
	{Pos: [2]float32{0.5, -0.3333}, Color: [3]float32{0, 0, 1}},
}
