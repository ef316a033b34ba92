// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVars() (*Vars, *Var, *Var) {
	vs := NewVars(&Device{})
	vg := vs.AddVertexGroup()
	vtx := vg.AddInterleaved("Vertex", []VarField{
		{Name: "Pos", Type: Float32Vector2},
		{Name: "Color", Type: Float32Vector3},
	}, VertexShader)
	ug := vs.AddGroup(Uniform, "Transform")
	tr := ug.Add("Transform", Float32Matrix4, VertexShader)
	vs.config()
	return vs, vtx, tr
}

func TestVertexLayout(t *testing.T) {
	vs, vtx, _ := testVars()
	assert.Equal(t, 20, vtx.MemSize())
	assert.Equal(t, 2, vtx.NLocations())

	vbl := vs.VertexLayout()
	require.Len(t, vbl, 1)
	lay := vbl[0]
	assert.Equal(t, uint64(20), lay.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, lay.StepMode)
	require.Len(t, lay.Attributes, 2)
	assert.Equal(t, wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, lay.Attributes[0])
	assert.Equal(t, wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x3, Offset: 8, ShaderLocation: 1}, lay.Attributes[1])
}

func TestUniformLayout(t *testing.T) {
	vs, _, tr := testVars()
	assert.Equal(t, 1, vs.NGroups())
	assert.Equal(t, VertexGroup, vs.StartGroup())
	assert.Equal(t, 0, tr.Group)
	assert.Equal(t, 0, tr.Binding)

	entries := vs.Groups[0].layoutEntries()
	require.Len(t, entries, 1)
	ent := entries[0]
	assert.Equal(t, uint32(0), ent.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex, ent.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, ent.Buffer.Type)
	assert.Equal(t, uint64(64), ent.Buffer.MinBindingSize)

	assert.Equal(t, []*Var{tr}, vs.RoleMap[Uniform])
}

func TestVarByName(t *testing.T) {
	vs, vtx, tr := testVars()
	vr, err := vs.VarByNameTry(VertexGroup, "Vertex")
	assert.NoError(t, err)
	assert.Equal(t, vtx, vr)
	assert.Equal(t, tr, vs.VarByName(0, "Transform"))

	_, err = vs.VarByNameTry(0, "Missing")
	assert.Error(t, err)
	_, err = vs.VarByNameTry(3, "Transform")
	assert.Error(t, err)
}

func TestAddGroupLimit(t *testing.T) {
	vs := NewVars(&Device{})
	for range 4 {
		vs.AddGroup(Uniform)
	}
	assert.Panics(t, func() { vs.AddGroup(Uniform) })
}

func TestStringDoc(t *testing.T) {
	vs, _, _ := testVars()
	doc := vs.StringDoc()
	assert.Contains(t, doc, "Group: -2 Vertex")
	assert.Contains(t, doc, "Group: 0 Transform")
	assert.Contains(t, doc, "Color:vec3<f32>")
	assert.Contains(t, doc, "(size: 64)")
}

func TestValueSize(t *testing.T) {
	_, vtx, tr := testVars()
	vv := vtx.Value
	assert.NoError(t, vv.checkSize(60))
	assert.Equal(t, 3, vv.N)
	assert.Equal(t, 60, vv.MemSize())
	assert.Error(t, vv.checkSize(50))
	assert.Error(t, vv.checkSize(0))

	tv := tr.Value
	assert.NoError(t, tv.checkSize(64))
	assert.Error(t, tv.checkSize(48))
	assert.Error(t, tv.NilBufferCheck())
}

func TestBindGroupNeedsLayout(t *testing.T) {
	vs, _, _ := testVars()
	_, err := vs.Groups[0].BindGroup()
	assert.Error(t, err)
}

func TestGroupTryDebug(t *testing.T) {
	prev := Debug
	defer func() { Debug = prev }()
	Debug = true
	vs, _, _ := testVars()
	_, err := vs.GroupTry(3)
	assert.Error(t, err)
	vg, err := vs.GroupTry(0)
	require.NoError(t, err)
	assert.Equal(t, "Transform", vg.Name)
}
