// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"fmt"

	"cogentcore.org/spintri/base/errors"
	"cogentcore.org/spintri/gpu"
	"cogentcore.org/spintri/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// Names of the variables and the pipeline.
const (
	VertexVar    = "Vertex"
	TransformVar = "Transform"
	PipelineName = "triangle"
)

// ClearColor is the background color of every frame.
var ClearColor = wgpu.Color{R: 0, G: 0.2, B: 0.4, A: 1}

// TransformWriter writes the transform used by the vertex shader.
type TransformWriter interface {
	WriteTransform(m math32.Matrix4) error
}

// FrameDrawer makes frames and draws the pipeline on them.
// It is implemented by [gpu.GraphicsSystem].
type FrameDrawer interface {
	NewFrame() (gpu.Frame, error)
	DrawFrame(fr gpu.Frame, pl *gpu.GraphicsPipeline) error
}

// Scene has everything needed to render the triangle:
// the animation state and the GPU objects made once by [NewScene].
type Scene struct {
	// Animation is the rotation of the triangle.
	Animation Animation

	// System has the vars, values and pipeline.
	System *gpu.GraphicsSystem

	// Pipeline draws the triangle.
	Pipeline *gpu.GraphicsPipeline

	transform TransformWriter
	drawer    FrameDrawer
}

// uniformTransform writes the transform to the uniform buffer,
// overwriting all 64 bytes.
type uniformTransform struct {
	value *gpu.Value
}

func (ut uniformTransform) WriteTransform(m math32.Matrix4) error {
	return ut.value.SetFromBytes(m.Bytes())
}

// NewScene builds the pipeline for the triangle on the given system,
// whose renderer must be configured: the render pipeline for the shader,
// the vertex buffer with the [Triangle], and the uniform transform
// buffer starting as the identity with its bind group.
// Every error is reported to the device and returned: there is
// nothing to draw without the pipeline.
func NewScene(sy *gpu.GraphicsSystem, animating bool) (*Scene, error) {
	sy.ClearColor = ClearColor
	vs := sy.Vars()
	vg := vs.AddVertexGroup()
	vtx := vg.AddInterleaved(VertexVar, VertexFields, gpu.VertexShader)
	ug := vs.AddGroup(gpu.Uniform, TransformVar)
	tr := ug.Add(TransformVar, gpu.Float32Matrix4, gpu.VertexShader)

	pl := sy.AddGraphicsPipeline(PipelineName)
	sh := pl.AddShader(PipelineName)
	sh.OpenCode(TriangleShader)
	pl.AddEntry(sh, gpu.VertexShader, VertexEntry)
	pl.AddEntry(sh, gpu.FragmentShader, FragmentEntry)

	if err := sy.Config(); err != nil {
		return nil, fmt.Errorf("spin: pipeline: %w", err)
	}
	if err := gpu.SetValueFrom(vtx.Value, Triangle[:]); err != nil {
		return nil, fmt.Errorf("spin: vertex buffer: %w", err)
	}
	sc := &Scene{
		Animation: Animation{Animating: animating},
		System:    sy,
		Pipeline:  pl,
		transform: uniformTransform{value: tr.Value},
		drawer:    sy,
	}
	if err := sc.transform.WriteTransform(math32.Identity4()); err != nil {
		return nil, fmt.Errorf("spin: transform buffer: %w", err)
	}
	if _, err := ug.BindGroup(); err != nil {
		return nil, fmt.Errorf("spin: bind group: %w", err)
	}
	return sc, nil
}

// RenderFrame renders one frame: if animating, the angle advances and
// the new rotation is written to the transform buffer, and then the
// triangle is drawn in a single render pass on a target cleared to
// [ClearColor], submitted as one command buffer. The transform is
// written before the frame is encoded, so the frame uses it.
// Errors are returned for logging: a failed frame does not stop the loop.
func (sc *Scene) RenderFrame() error {
	var werr error
	if sc.Animation.Advance() {
		werr = sc.transform.WriteTransform(sc.Animation.Transform())
	}
	fr, err := sc.drawer.NewFrame()
	if err != nil {
		return errors.Join(werr, err)
	}
	return errors.Join(werr, sc.drawer.DrawFrame(fr, sc.Pipeline))
}

// Release releases the GPU objects of the scene.
func (sc *Scene) Release() {
	if sc.System != nil {
		sc.System.Release()
	}
}
