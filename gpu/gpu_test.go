// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShader = `
@group(0) @binding(0)
var<uniform> transform: mat4x4<f32>;

struct VertexOutput {
	@builtin(position) position: vec4<f32>,
	@location(0) color: vec3<f32>,
}

@vertex
fn vertexMain(@location(0) pos: vec2<f32>, @location(1) color: vec3<f32>) -> VertexOutput {
	var out: VertexOutput;
	out.position = transform * vec4<f32>(pos, 0.0, 1.0);
	out.color = color;
	return out;
}

@fragment
fn fragmentMain(input: VertexOutput) -> @location(0) vec4<f32> {
	return vec4<f32>(input.color, 1.0);
}
`

func TestGPUTriangle(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp := NewGPU()
	gp.ForceFallbackAdapter = true
	w, err := GLFWCreateWindow(gp, image.Point{256, 256}, "test")
	require.NoError(t, err)
	defer w.Destroy()

	adapter, dev, err := NewAcquisition(gp, "test", w.Surface).Acquire(context.Background())
	require.NoError(t, err)
	gp.SetAdapter(adapter)
	device := NewDevice(dev)
	sf := NewSurface(gp, w.Surface, w.Size)
	require.NoError(t, sf.Config(device))

	sy := NewGraphicsSystem(gp, "test", sf)
	vg := sy.Vars().AddVertexGroup()
	vg.AddInterleaved("Vertex", []VarField{{"Pos", Float32Vector2}, {"Color", Float32Vector3}}, VertexShader)
	ug := sy.Vars().AddGroup(Uniform, "Transform")
	tr := ug.Add("Transform", Float32Matrix4, VertexShader)

	pl := sy.AddGraphicsPipeline("test")
	sh := pl.AddShader("test")
	sh.OpenCode(testShader)
	pl.AddEntry(sh, VertexShader, "vertexMain")
	pl.AddEntry(sh, FragmentShader, "fragmentMain")

	require.NoError(t, sy.Config())
	require.NoError(t, SetValueFrom(vg.Vars[0].Value, []float32{0, 1, 1, 0, 0, -1, -1, 0, 1, 0, 1, -1, 0, 0, 1}))
	require.NoError(t, SetValueFrom(tr.Value, []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}))

	fr, err := sy.NewFrame()
	require.NoError(t, err)
	assert.NoError(t, sy.DrawFrame(fr, pl))
	sf.Present()
	sy.Release()
	sf.Release()
	device.Release()
	gp.Release()
}

func TestSetLogLevelUnknown(t *testing.T) {
	assert.Error(t, SetLogLevel("loud"))
}

func TestLogLevel(t *testing.T) {
	for name, want := range map[string]wgpu.LogLevel{
		"off":     wgpu.LogLevelOff,
		"error":   wgpu.LogLevelError,
		"WARN":    wgpu.LogLevelWarn,
		"warning": wgpu.LogLevelWarn,
		"info":    wgpu.LogLevelInfo,
		"debug":   wgpu.LogLevelDebug,
		"Trace":   wgpu.LogLevelTrace,
	} {
		lvl, err := LogLevel(name)
		if assert.NoError(t, err, name) {
			assert.Equal(t, want, lvl, name)
		}
	}
	_, err := LogLevel("loud")
	assert.ErrorContains(t, err, "loud")
}

func TestTypes(t *testing.T) {
	assert.Equal(t, 8, Float32Vector2.Bytes())
	assert.Equal(t, 12, Float32Vector3.Bytes())
	assert.Equal(t, 64, Float32Matrix4.Bytes())
	assert.Equal(t, wgpu.VertexFormatFloat32x2, Float32Vector2.VertexFormat())
	assert.Equal(t, wgpu.VertexFormatFloat32x3, Float32Vector3.VertexFormat())
	assert.Equal(t, "mat4x4<f32>", Float32Matrix4.String())

	assert.Equal(t, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst, Uniform.BufferUsages())
	assert.Equal(t, wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst, Vertex.BufferUsages())
	assert.Equal(t, wgpu.BufferBindingTypeUniform, Uniform.BindingType())

	assert.Equal(t, wgpu.ShaderStageVertex, ShaderStages(VertexShader))
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, ShaderStages(VertexShader, FragmentShader))
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, TriangleList.Primitive())
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "BGRA8UnormSrgb", FormatName(wgpu.TextureFormatBGRA8UnormSrgb))
	assert.Contains(t, FormatName(wgpu.TextureFormat(0xFFFF)), "TextureFormat(")
}

func TestClearRenderPass(t *testing.T) {
	clear := wgpu.Color{R: 0, G: 0.2, B: 0.4, A: 1}
	rpd := ClearRenderPass(nil, clear)
	require.Len(t, rpd.ColorAttachments, 1)
	ca := rpd.ColorAttachments[0]
	assert.Equal(t, wgpu.LoadOpClear, ca.LoadOp)
	assert.Equal(t, wgpu.StoreOpStore, ca.StoreOp)
	assert.Equal(t, clear, ca.ClearValue)
}
