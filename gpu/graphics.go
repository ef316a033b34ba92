// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsPipeline is a Pipeline specifically for the Graphics stack.
// There must be a vertex and a fragment shader entry.
type GraphicsPipeline struct {
	Pipeline

	// Primitive has various settings for graphics primitives,
	// e.g., TriangleList
	Primitive wgpu.PrimitiveState

	Multisample wgpu.MultisampleState

	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline.
func NewGraphicsPipeline(name string, sy System) *GraphicsPipeline {
	pl := &GraphicsPipeline{}
	pl.Name = name
	pl.System = sy
	pl.SetGraphicsDefaults()
	return pl
}

// BindPipeline binds this pipeline as the one to use for next commands in
// the given render pass.
// This also calls BindAllGroups, to bind the Value for all variables,
// excluding Vertex level variables: use BindVertex for that.
func (pl *GraphicsPipeline) BindPipeline(rp RenderPass) error {
	if pl.renderPipeline == nil {
		return fmt.Errorf("gpu.GraphicsPipeline %s: not configured", pl.Name)
	}
	rp.SetPipeline(pl.renderPipeline)
	return pl.BindAllGroups(rp)
}

// BindAllGroups binds the Value for all variables across all
// variable groups, as the Value to use by shader.
// Automatically called in BindPipeline at start of render for pipeline.
func (pl *GraphicsPipeline) BindAllGroups(rp RenderPass) error {
	vs := pl.Vars()
	ngp := vs.NGroups()
	for gi := 0; gi < ngp; gi++ {
		vg := vs.Groups[gi]
		bg, err := vg.BindGroup()
		if err != nil {
			return err
		}
		rp.SetBindGroup(uint32(vg.Group), bg, nil) // note: nil is dynamic offsets
	}
	return nil
}

// BindVertex binds the Value for all VertexGroup variables,
// as the vertex data to use for next Draw call, and
// returns the number of vertices that can be drawn.
func (pl *GraphicsPipeline) BindVertex(rp RenderPass) int {
	vs := pl.Vars()
	vg := vs.Groups[VertexGroup]
	if vg == nil {
		return 0
	}
	n := 0
	for i, vr := range vg.Vars {
		vl := vr.Value
		rp.SetVertexBuffer(uint32(vr.Binding), vl.buffer, 0, wgpu.WholeSize)
		if i == 0 {
			n = vl.N
		} else {
			n = min(n, vl.N)
		}
	}
	return n
}

// VertexEntry returns the [ShaderEntry] for [VertexShader].
// Can be nil if no vertex shader defined.
func (pl *GraphicsPipeline) VertexEntry() *ShaderEntry {
	return pl.EntryByType(VertexShader)
}

// FragmentEntry returns the [ShaderEntry] for [FragmentShader].
// Can be nil if no fragment shader defined.
func (pl *GraphicsPipeline) FragmentEntry() *ShaderEntry {
	return pl.EntryByType(FragmentShader)
}

// Config compiles the shaders, makes the pipeline layout from
// the Vars, and creates the render pipeline drawing into
// targets of the given format. Vars must have been configured.
func (pl *GraphicsPipeline) Config(format wgpu.TextureFormat) error {
	pl.ReleasePipeline()
	if err := pl.compileShaders(); err != nil {
		return err
	}
	if err := pl.bindLayout(); err != nil {
		return err
	}
	pd, err := pl.descriptor(pl.layout, format)
	if err != nil {
		return pl.System.Device().ReportError(err)
	}
	rp, err := pl.System.Device().Device.CreateRenderPipeline(pd)
	if err != nil {
		return pl.System.Device().ReportError(fmt.Errorf("gpu.GraphicsPipeline %s: %w", pl.Name, err))
	}
	pl.renderPipeline = rp
	return nil
}

// descriptor returns the render pipeline descriptor for the
// current settings, shaders and vertex layout.
func (pl *GraphicsPipeline) descriptor(layout *wgpu.PipelineLayout, format wgpu.TextureFormat) (*wgpu.RenderPipelineDescriptor, error) {
	if err := pl.checkEntries(); err != nil {
		return nil, err
	}
	ve := pl.VertexEntry()
	fe := pl.FragmentEntry()
	return &wgpu.RenderPipelineDescriptor{
		Label:  pl.Name,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     ve.Shader.mustModule(),
			EntryPoint: ve.Entry,
			Buffers:    pl.Vars().VertexLayout(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     fe.Shader.mustModule(),
			EntryPoint: fe.Entry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
	}, nil
}

// checkEntries returns an error if the vertex or fragment entry is missing.
func (pl *GraphicsPipeline) checkEntries() error {
	if pl.VertexEntry() == nil {
		return fmt.Errorf("gpu.GraphicsPipeline %s: no vertex shader entry", pl.Name)
	}
	if pl.FragmentEntry() == nil {
		return fmt.Errorf("gpu.GraphicsPipeline %s: no fragment shader entry", pl.Name)
	}
	return nil
}

func (pl *GraphicsPipeline) Release() {
	pl.releaseShaders()
	pl.ReleasePipeline()
}

func (pl *GraphicsPipeline) ReleasePipeline() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
}

//////////////////////////////////////////////////////////////
// Set graphics options

// SetGraphicsDefaults configures all the default settings for a
// graphics rendering pipeline: triangle lists, counter-clockwise
// front faces, no culling and no multisampling.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.SetTopology(TriangleList)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetMultisample(1)
	return pl
}

// SetTopology sets the topology of vertex position data.
// TriangleList is the default.
func (pl *GraphicsPipeline) SetTopology(topo Topologies) *GraphicsPipeline {
	pl.Primitive.Topology = topo.Primitive()
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(max(1, ms))
	pl.Multisample.Mask = 0xFFFFFFFF
	pl.Multisample.AlphaToCoverageEnabled = false
	return pl
}

// Topologies are the different vertex topology
type Topologies int32

const (
	PointList Topologies = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

func (tp Topologies) Primitive() wgpu.PrimitiveTopology {
	return WebGPUTopologies[tp]
}

var WebGPUTopologies = map[Topologies]wgpu.PrimitiveTopology{
	PointList:     wgpu.PrimitiveTopologyPointList,
	LineList:      wgpu.PrimitiveTopologyLineList,
	LineStrip:     wgpu.PrimitiveTopologyLineStrip,
	TriangleList:  wgpu.PrimitiveTopologyTriangleList,
	TriangleStrip: wgpu.PrimitiveTopologyTriangleStrip,
}
