// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Types is a list of supported GPU data types, which can be stored
// properly aligned in device memory, and used by the shader code.
// Float32Vector3 is only used for vertex data: it is not properly
// aligned for uniforms.
type Types int32

const (
	UndefinedType Types = iota

	Uint32
	Float32
	Float32Vector2
	Float32Vector3 // note: only use for vertex data -- not properly aligned for uniforms
	Float32Vector4

	Float32Matrix4 // std transform matrix: math32.Matrix4 works directly
)

// VertexFormat returns the WebGPU VertexFormat for given type.
func (tp Types) VertexFormat() wgpu.VertexFormat {
	return TypeToVertexFormat[tp]
}

// Bytes returns number of bytes for this type
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

// String returns the WGSL name of the type.
func (tp Types) String() string {
	return TypeNames[tp]
}

// TypeSizes gives our data type sizes in bytes
var TypeSizes = map[Types]int{
	Uint32:         4,
	Float32:        4,
	Float32Vector2: 8,
	Float32Vector3: 12,
	Float32Vector4: 16,
	Float32Matrix4: 64,
}

// TypeNames gives the WGSL spelling of our data types.
var TypeNames = map[Types]string{
	UndefinedType:  "undefined",
	Uint32:         "u32",
	Float32:        "f32",
	Float32Vector2: "vec2<f32>",
	Float32Vector3: "vec3<f32>",
	Float32Vector4: "vec4<f32>",
	Float32Matrix4: "mat4x4<f32>",
}

// TypeToVertexFormat maps gpu.Types to WebGPU VertexFormat
var TypeToVertexFormat = map[Types]wgpu.VertexFormat{
	UndefinedType:  wgpu.VertexFormatUndefined,
	Uint32:         wgpu.VertexFormatUint32,
	Float32:        wgpu.VertexFormatFloat32,
	Float32Vector2: wgpu.VertexFormatFloat32x2,
	Float32Vector3: wgpu.VertexFormatFloat32x3,
	Float32Vector4: wgpu.VertexFormatFloat32x4,
}

// VarRoles are the functional roles of variables.
type VarRoles int32

const (
	UndefinedRole VarRoles = iota

	// Vertex is vertex shader input data: mesh geometry points, colors.
	// Vertex vars live in the special VertexGroup and are bound
	// as vertex buffers, not through a bind group.
	Vertex

	// Uniform is a read-only general purpose data, with a more limited
	// capacity. Typically used for transform matrices.
	Uniform
)

// BufferUsages returns the WebGPU buffer usages for the role.
// All buffers can be written from the CPU side.
func (vr VarRoles) BufferUsages() wgpu.BufferUsage {
	switch vr {
	case Vertex:
		return wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst
	case Uniform:
		return wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst
	}
	return wgpu.BufferUsageCopyDst
}

// BindingType returns the WebGPU buffer binding type for the role,
// for roles bound through a bind group.
func (vr VarRoles) BindingType() wgpu.BufferBindingType {
	if vr == Uniform {
		return wgpu.BufferBindingTypeUniform
	}
	return 0
}

func (vr VarRoles) String() string {
	switch vr {
	case Vertex:
		return "Vertex"
	case Uniform:
		return "Uniform"
	}
	return "Undefined"
}

// ShaderTypes is a list of shader types
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota
	VertexShader
	FragmentShader
)

// ShaderStage returns the WebGPU shader stage bit for the shader type.
func (st ShaderTypes) ShaderStage() wgpu.ShaderStage {
	switch st {
	case VertexShader:
		return wgpu.ShaderStageVertex
	case FragmentShader:
		return wgpu.ShaderStageFragment
	}
	return 0
}

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "VertexShader"
	case FragmentShader:
		return "FragmentShader"
	}
	return "UnknownShader"
}

// ShaderStages returns the combined stage bits for the given shader types.
func ShaderStages(sts ...ShaderTypes) wgpu.ShaderStage {
	var sf wgpu.ShaderStage
	for _, st := range sts {
		sf |= st.ShaderStage()
	}
	return sf
}
