// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// VarGroup contains a group of Var variables, accessed via @group number
// in shader code, with @binding allocated sequentially within group
// (or @location in the case of VertexGroup).
type VarGroup struct {
	// optional name of group, for documentation
	Name string

	// Group index is assigned sequentially, with special VertexGroup
	// having a negative index, so it is not part of a bind group.
	Group int

	// Role is the default role of vars added to this group.
	Role VarRoles

	// variables in order
	Vars []*Var

	// map of vars by name; names must be unique
	VarMap map[string]*Var

	// map of vars by different roles, within this group.
	// Updated in Config(), after all vars added
	RoleMap map[VarRoles][]*Var

	layout    *wgpu.BindGroupLayout
	bindGroup *wgpu.BindGroup
	device    *Device
}

// Add adds a new variable of given type, role, and shaders where used
func (vg *VarGroup) Add(name string, typ Types, shaders ...ShaderTypes) *Var {
	vr := &Var{Name: name, Type: typ, Role: vg.Role, Group: vg.Group, Shaders: ShaderStages(shaders...)}
	vg.addVar(vr)
	return vr
}

// AddInterleaved adds a new variable whose elements are structs with
// the given fields, packed one after another in a single buffer.
// Each field is a separate @location in the shader.
func (vg *VarGroup) AddInterleaved(name string, fields []VarField, shaders ...ShaderTypes) *Var {
	vr := &Var{Name: name, Fields: fields, Role: vg.Role, Group: vg.Group, Shaders: ShaderStages(shaders...)}
	vg.addVar(vr)
	return vr
}

func (vg *VarGroup) addVar(vr *Var) {
	if vg.VarMap == nil {
		vg.VarMap = map[string]*Var{}
	}
	vg.Vars = append(vg.Vars, vr)
	vg.VarMap[vr.Name] = vr
}

// VarByNameTry returns Var by name, returning error if not found
func (vg *VarGroup) VarByNameTry(name string) (*Var, error) {
	vr, ok := vg.VarMap[name]
	if !ok {
		return nil, fmt.Errorf("gpu.VarGroup %d: variable named: %s not found", vg.Group, name)
	}
	return vr, nil
}

// config assigns bindings and locations in order, makes the
// values, and builds the RoleMap.
func (vg *VarGroup) config() {
	vg.RoleMap = make(map[VarRoles][]*Var)
	loc := 0
	for i, vr := range vg.Vars {
		vr.Group = vg.Group
		vr.Binding = i
		if vr.Role == Vertex {
			vr.Location = loc
			loc += vr.NLocations()
		}
		if vr.Value == nil {
			vr.Value = NewValue(vr, vg.device)
		}
		vg.RoleMap[vr.Role] = append(vg.RoleMap[vr.Role], vr)
	}
}

// vertexLayout returns one buffer layout per Vertex var,
// in binding (slot) order.
func (vg *VarGroup) vertexLayout() []wgpu.VertexBufferLayout {
	var vbl []wgpu.VertexBufferLayout
	for _, vr := range vg.Vars {
		if vr.Role != Vertex {
			continue
		}
		vbl = append(vbl, vr.vertexLayout())
	}
	return vbl
}

// layoutEntries returns the bind group layout entries for the group.
func (vg *VarGroup) layoutEntries() []wgpu.BindGroupLayoutEntry {
	entries := make([]wgpu.BindGroupLayoutEntry, 0, len(vg.Vars))
	for _, vr := range vg.Vars {
		entries = append(entries, vr.bindLayoutEntry())
	}
	return entries
}

// bindLayout makes the explicit BindGroupLayout for the group.
func (vg *VarGroup) bindLayout() (*wgpu.BindGroupLayout, error) {
	if vg.layout != nil {
		vg.layout.Release()
		vg.layout = nil
	}
	bgl, err := vg.device.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   vg.Name,
		Entries: vg.layoutEntries(),
	})
	if err != nil {
		return nil, vg.device.ReportError(fmt.Errorf("gpu.VarGroup %d layout: %w", vg.Group, err))
	}
	vg.layout = bgl
	return bgl, nil
}

// BindGroup returns the BindGroup over the current values of the group,
// making it if needed. All values must have their buffers, so set the
// data of every var first.
func (vg *VarGroup) BindGroup() (*wgpu.BindGroup, error) {
	if vg.bindGroup != nil {
		return vg.bindGroup, nil
	}
	if vg.layout == nil {
		return nil, fmt.Errorf("gpu.VarGroup %d: no layout, Vars.Config not called", vg.Group)
	}
	entries := make([]wgpu.BindGroupEntry, 0, len(vg.Vars))
	for _, vr := range vg.Vars {
		be, err := vr.Value.bindGroupEntry(vr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, be)
	}
	bg, err := vg.device.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   vg.Name,
		Layout:  vg.layout,
		Entries: entries,
	})
	if err != nil {
		return nil, vg.device.ReportError(fmt.Errorf("gpu.VarGroup %d bind group: %w", vg.Group, err))
	}
	vg.bindGroup = bg
	return bg, nil
}

// Release releases the values, bind group and layout.
func (vg *VarGroup) Release() {
	if vg.bindGroup != nil {
		vg.bindGroup.Release()
		vg.bindGroup = nil
	}
	for _, vr := range vg.Vars {
		if vr.Value != nil {
			vr.Value.Release()
		}
	}
	if vg.layout != nil {
		vg.layout.Release()
		vg.layout = nil
	}
}
