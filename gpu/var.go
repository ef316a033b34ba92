// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// VarField is one attribute of an interleaved Vertex variable:
// a named field of the per-vertex struct.
type VarField struct {
	// Name of the field, for documentation.
	Name string

	// Type of the field.
	Type Types
}

// Var specifies a variable used in a pipeline, accessed in shader programs
// at a specific @group (from VarGroup owner) and @binding location.
// For Vertex vars the binding is the vertex buffer slot, and the
// fields take consecutive @location numbers starting at Location.
type Var struct {
	// variable name
	Name string

	// Type of data in variable, for single-field variables.
	Type Types

	// Fields are the attributes of an interleaved Vertex variable,
	// in memory order. If empty, the variable is the single Type.
	Fields []VarField

	// Role of variable: Vertex or Uniform.
	Role VarRoles

	// Group binding for this variable, indicated by @group in WGSL shader.
	// The VertexGroup is -2; uniform groups start at 0.
	Group int

	// binding number for this variable, indicated by @binding in WGSL shader.
	// These are automatically assigned sequentially within Group.
	Binding int

	// Location is the first @location of the fields of a Vertex variable.
	Location int

	// Shaders are the shader stages where this variable is used.
	Shaders wgpu.ShaderStage

	// Value is the single value of this variable,
	// holding its GPU buffer.
	Value *Value
}

// fields returns the fields of the variable, with the single Type
// as a one-field list.
func (vr *Var) fields() []VarField {
	if len(vr.Fields) > 0 {
		return vr.Fields
	}
	return []VarField{{Name: vr.Name, Type: vr.Type}}
}

// MemSize returns the memory size of one element of the
// variable in bytes: the vertex stride for Vertex vars.
func (vr *Var) MemSize() int {
	sz := 0
	for _, f := range vr.fields() {
		sz += f.Type.Bytes()
	}
	return sz
}

// NLocations returns the number of @location slots used by a Vertex var.
func (vr *Var) NLocations() int {
	return len(vr.fields())
}

func (vr *Var) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:\t%s\t%s", vr.Binding, vr.Name, vr.Role)
	for _, f := range vr.fields() {
		fmt.Fprintf(&b, "\t%s:%v", f.Name, f.Type)
	}
	fmt.Fprintf(&b, "\t(size: %d)", vr.MemSize())
	return b.String()
}

// vertexLayout returns the vertex buffer layout for a Vertex var:
// one buffer stream with the fields interleaved per vertex.
func (vr *Var) vertexLayout() wgpu.VertexBufferLayout {
	flds := vr.fields()
	attrs := make([]wgpu.VertexAttribute, len(flds))
	off := 0
	for i, f := range flds {
		attrs[i] = wgpu.VertexAttribute{
			Format:         f.Type.VertexFormat(),
			Offset:         uint64(off),
			ShaderLocation: uint32(vr.Location + i),
		}
		off += f.Type.Bytes()
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(off),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// bindLayoutEntry returns the bind group layout entry for
// a non-Vertex var.
func (vr *Var) bindLayoutEntry() wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    uint32(vr.Binding),
		Visibility: vr.Shaders,
		Buffer: wgpu.BufferBindingLayout{
			Type:             vr.Role.BindingType(),
			HasDynamicOffset: false,
			MinBindingSize:   uint64(vr.MemSize()),
		},
	}
}
