// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/spintri/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsSystem manages a system of Pipelines that all share
// a common collection of Vars and Values.
// The System provides a simple top-level API for the whole
// render process.
type GraphicsSystem struct {
	// optional name of this GraphicsSystem
	Name string

	// vars represents all the data variables used by the system,
	// with one Var for each resource that is made visible to the shader,
	// indexed by Group (@group) and Binding (@binding).
	// Access through the System.Vars() method.
	vars Vars

	// GraphicsPipelines by name
	GraphicsPipelines map[string]*GraphicsPipeline

	// Renderer is the rendering target for this system.
	Renderer Renderer

	// ClearColor is the color the target is cleared to
	// at the start of each frame.
	ClearColor wgpu.Color

	// logical device for this GraphicsSystem, from the Renderer.
	device *Device

	// gpu is our GPU device.
	gpu *GPU
}

// NewGraphicsSystem returns a new GraphicsSystem, using
// the given Renderer as the render target.
func NewGraphicsSystem(gp *GPU, name string, rd Renderer) *GraphicsSystem {
	sy := &GraphicsSystem{}
	sy.init(gp, name, rd)
	return sy
}

// System interface:

func (sy *GraphicsSystem) Vars() *Vars     { return &sy.vars }
func (sy *GraphicsSystem) Device() *Device { return sy.device }
func (sy *GraphicsSystem) GPU() *GPU       { return sy.gpu }

// init initializes the GraphicsSystem
func (sy *GraphicsSystem) init(gp *GPU, name string, rd Renderer) {
	sy.gpu = gp
	sy.Name = name
	sy.Renderer = rd
	sy.device = rd.Device()
	sy.vars.device = sy.device
	sy.ClearColor = wgpu.Color{A: 1}
	sy.GraphicsPipelines = make(map[string]*GraphicsPipeline)
}

// WaitDone waits until device is done with current processing steps
func (sy *GraphicsSystem) WaitDone() {
	sy.device.WaitDone()
}

func (sy *GraphicsSystem) Release() {
	sy.WaitDone()
	for _, pl := range sy.GraphicsPipelines {
		pl.Release()
	}
	sy.GraphicsPipelines = nil
	sy.vars.Release()
	sy.gpu = nil
}

// AddGraphicsPipeline adds a new GraphicsPipeline to the system
func (sy *GraphicsSystem) AddGraphicsPipeline(name string) *GraphicsPipeline {
	pl := NewGraphicsPipeline(name, sy)
	sy.GraphicsPipelines[pl.Name] = pl
	return pl
}

// Config configures the entire system, after Pipelines and Vars
// have been initialized. After this point, just need to set
// values for the vars, and then render frames. This should
// not need to be called more than once.
func (sy *GraphicsSystem) Config() error {
	for _, pl := range sy.GraphicsPipelines {
		if err := pl.checkEntries(); err != nil {
			return err
		}
	}
	if err := sy.vars.Config(); err != nil {
		return err
	}
	format := sy.Renderer.Format()
	for _, pl := range sy.GraphicsPipelines {
		if err := pl.Config(format); err != nil {
			return err
		}
	}
	return nil
}

//////////////////////////////////////////////////////////////////////////
// Rendering

// NewFrame returns a new [Frame] rendering to the current
// texture of the Renderer, with its own command encoder.
func (sy *GraphicsSystem) NewFrame() (Frame, error) {
	view, err := sy.Renderer.GetCurrentTexture()
	if err != nil {
		return nil, sy.device.ReportError(err)
	}
	return newCommandFrame(sy.device, view)
}

// DrawFrame encodes one render pass on the frame: it clears the target
// to the ClearColor, binds the pipeline with all of its groups and the
// vertex buffers, draws all of the vertices as one instance, and then
// submits the frame. The frame is submitted even if binding or
// ending the pass fails, so that the target is still cleared.
func (sy *GraphicsSystem) DrawFrame(fr Frame, pl *GraphicsPipeline) error {
	rp := fr.BeginRenderPass(sy.ClearColor)
	err := pl.BindPipeline(rp)
	if err == nil {
		n := pl.BindVertex(rp)
		rp.Draw(uint32(n), 1, 0, 0)
	}
	return errors.Join(err, rp.End(), fr.Submit())
}
