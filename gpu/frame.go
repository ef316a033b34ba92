// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// RenderPass records drawing commands into one render pass.
// It is implemented by the WebGPU render pass encoder of a [Frame].
type RenderPass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetBindGroup(group uint32, bg *wgpu.BindGroup, dynamicOffsets []uint32)
	SetVertexBuffer(slot uint32, buf *wgpu.Buffer, offset, size uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)

	// End ends the pass: no more commands can be added.
	// It returns any validation error of the pass.
	End() error
}

// Frame records the commands for one frame into a single
// command encoder, and submits them as a single command buffer.
type Frame interface {
	// BeginRenderPass starts a render pass on the frame target,
	// clearing it to the given color.
	BeginRenderPass(clear wgpu.Color) RenderPass

	// Submit finishes the encoder and submits the command buffer
	// to the queue. The frame cannot be used after this.
	Submit() error
}

// commandFrame is the [Frame] encoding into a WebGPU command encoder,
// rendering to a texture view.
type commandFrame struct {
	device  *Device
	encoder *wgpu.CommandEncoder
	view    *wgpu.TextureView
	passes  []*wgpu.RenderPassEncoder
}

func newCommandFrame(dev *Device, view *wgpu.TextureView) (*commandFrame, error) {
	enc, err := dev.Device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, dev.ReportError(fmt.Errorf("gpu.Frame: command encoder: %w", err))
	}
	return &commandFrame{device: dev, encoder: enc, view: view}, nil
}

func (fr *commandFrame) BeginRenderPass(clear wgpu.Color) RenderPass {
	rp := fr.encoder.BeginRenderPass(ClearRenderPass(fr.view, clear))
	fr.passes = append(fr.passes, rp)
	return &renderPass{enc: rp, device: fr.device}
}

func (fr *commandFrame) Submit() error {
	for _, rp := range fr.passes {
		rp.Release() // must happen before Finish
	}
	fr.passes = nil
	cmdBuffer, err := fr.encoder.Finish(nil)
	fr.encoder.Release()
	if err != nil {
		return fr.device.ReportError(fmt.Errorf("gpu.Frame: finish: %w", err))
	}
	fr.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	return nil
}

// renderPass is the [RenderPass] of a WebGPU render pass encoder.
type renderPass struct {
	enc    *wgpu.RenderPassEncoder
	device *Device
}

func (rp *renderPass) SetPipeline(pipeline *wgpu.RenderPipeline) {
	rp.enc.SetPipeline(pipeline)
}

func (rp *renderPass) SetBindGroup(group uint32, bg *wgpu.BindGroup, dynamicOffsets []uint32) {
	rp.enc.SetBindGroup(group, bg, dynamicOffsets)
}

func (rp *renderPass) SetVertexBuffer(slot uint32, buf *wgpu.Buffer, offset, size uint64) {
	rp.enc.SetVertexBuffer(slot, buf, offset, size)
}

func (rp *renderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	rp.enc.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (rp *renderPass) End() error {
	if err := rp.enc.End(); err != nil {
		return rp.device.ReportError(fmt.Errorf("gpu.RenderPass: end: %w", err))
	}
	return nil
}
