// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/spintri/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexGroup is the group number of the special group
// holding Vertex vars, which are not part of any bind group.
const VertexGroup = -2

// Vars are all the variables that are used by a pipeline,
// organized into Groups (optionally including the special VertexGroup).
// Vars are allocated to bindings sequentially in the order added.
type Vars struct {
	// map of Groups, by group number: VertexGroup is -2,
	// rest are added incrementally.
	Groups map[int]*VarGroup

	// map of vars by different roles across all Groups, updated in Config(),
	// after all vars added.
	RoleMap map[VarRoles][]*Var

	// true if a VertexGroup has been added
	hasVertex bool

	device *Device
}

// NewVars returns a new empty set of Vars on the given device.
func NewVars(dev *Device) *Vars {
	return &Vars{device: dev}
}

func (vs *Vars) Release() {
	for _, vg := range vs.Groups {
		vg.Release()
	}
}

// AddVertexGroup adds a new Vertex Group.
// This is a special Group holding Vertex vars.
func (vs *Vars) AddVertexGroup() *VarGroup {
	if vs.Groups == nil {
		vs.Groups = make(map[int]*VarGroup)
	}
	vg := &VarGroup{Name: "Vertex", Group: VertexGroup, Role: Vertex, device: vs.device}
	vs.Groups[VertexGroup] = vg
	vs.hasVertex = true
	return vg
}

// VertexGroup returns the Vertex Group: a special Group holding Vertex vars
func (vs *Vars) VertexGroup() *VarGroup {
	return vs.Groups[VertexGroup]
}

// AddGroup adds a new non-Vertex Group for holding data for given Role.
// Groups are automatically numbered sequentially in order added.
// Name is optional and just provides documentation.
// Important limit: there can only be a maximum of 4 Groups!
func (vs *Vars) AddGroup(role VarRoles, name ...string) *VarGroup {
	if vs.Groups == nil {
		vs.Groups = make(map[int]*VarGroup)
	}
	idx := vs.NGroups()
	if idx >= 4 {
		panic("gpu.AddGroup: there is a hard limit of 4 on the number of VarGroups imposed by the WebGPU system, on Web platforms!")
	}
	vg := &VarGroup{Group: idx, Role: role, device: vs.device}
	if len(name) == 1 {
		vg.Name = name[0]
	}
	vs.Groups[idx] = vg
	return vg
}

// VarByName returns Var by name in given group number
func (vs *Vars) VarByName(group int, name string) *Var {
	return errors.Log1(vs.VarByNameTry(group, name))
}

// VarByNameTry returns Var by name in given group number,
// returning error if not found
func (vs *Vars) VarByNameTry(group int, name string) (*Var, error) {
	vg, err := vs.GroupTry(group)
	if err != nil {
		return nil, err
	}
	return vg.VarByNameTry(name)
}

// Config must be called after all variables have been added.
// It assigns bindings, makes a Value for each Var, and
// creates the bind group layouts, so all is ready for Pipeline config.
func (vs *Vars) Config() error {
	vs.config()
	var cerr error
	for gi := 0; gi < vs.NGroups(); gi++ {
		vg := vs.Groups[gi]
		if vg == nil {
			continue
		}
		if _, err := vg.bindLayout(); err != nil {
			cerr = err
		}
	}
	if Debug {
		slog.Debug("gpu.Vars: configured", "vars", vs.StringDoc())
	}
	return cerr
}

// config does the device independent part of Config.
func (vs *Vars) config() {
	vs.RoleMap = make(map[VarRoles][]*Var)
	ns := vs.NGroups()
	for gi := vs.StartGroup(); gi < ns; gi++ {
		vg := vs.Groups[gi]
		if vg == nil {
			continue
		}
		vg.config()
		for ri, rl := range vg.RoleMap {
			vs.RoleMap[ri] = append(vs.RoleMap[ri], rl...)
		}
	}
}

// StringDoc returns info on variables
func (vs *Vars) StringDoc() string {
	var sb strings.Builder
	ns := vs.NGroups()
	for gi := vs.StartGroup(); gi < ns; gi++ {
		vg := vs.Groups[gi]
		if vg == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("Group: %d %s\n", vg.Group, vg.Name))
		for _, vr := range vg.Vars {
			sb.WriteString(fmt.Sprintf("    Var: %s\n", vr.String()))
		}
	}
	return sb.String()
}

// NGroups returns the number of regular non-VertexGroup groups
func (vs *Vars) NGroups() int {
	if vs.hasVertex {
		return len(vs.Groups) - 1
	}
	return len(vs.Groups)
}

// StartGroup returns the starting group to use for iterating groups
func (vs *Vars) StartGroup() int {
	if vs.hasVertex {
		return VertexGroup
	}
	return 0
}

// GroupTry returns group by index, returning nil and error if not found
func (vs *Vars) GroupTry(group int) (*VarGroup, error) {
	vg, has := vs.Groups[group]
	if !has {
		err := fmt.Errorf("gpu.Vars:GroupTry gp number %d not found", group)
		if Debug {
			slog.Debug(err.Error())
		}
		return nil, err
	}
	return vg, nil
}

// VertexLayout returns WebGPU vertex layout, for VertexGroup only!
func (vs *Vars) VertexLayout() []wgpu.VertexBufferLayout {
	if vs.hasVertex {
		return vs.Groups[VertexGroup].vertexLayout()
	}
	return nil
}

// bindLayouts returns the BindGroupLayouts for all of the
// non-Vertex groups, in group order, as made by Config.
func (vs *Vars) bindLayouts() []*wgpu.BindGroupLayout {
	var lays []*wgpu.BindGroupLayout
	for gi := 0; gi < vs.NGroups(); gi++ { // auto-skips vertex
		vg := vs.Groups[gi]
		if vg == nil || vg.layout == nil {
			continue
		}
		lays = append(lays, vg.layout)
	}
	return lays
}
