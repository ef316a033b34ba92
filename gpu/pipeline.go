// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline is the shared Base for Graphics Pipelines.
// It manages Shader program(s) that accomplish a specific
// type of rendering, using Vars / Values
// defined by the overall GraphicsSystem.
type Pipeline struct {
	// unique name of this pipeline
	Name string

	// System that we belong to and manages shared resources:
	// Vars, Values, etc
	System System

	// Shaders contains actual shader code loaded for this pipeline.
	// A single shader can have multiple entry points: see Entries.
	Shaders map[string]*Shader

	// Entries contains the entry points into shader code,
	// which are what is actually called.
	Entries map[string]*ShaderEntry

	layout *wgpu.PipelineLayout
}

// Vars returns a pointer to the vars for this pipeline,
// which has Values within it.
func (pl *Pipeline) Vars() *Vars {
	return pl.System.Vars()
}

// AddShader adds Shader with given name to the pipeline
func (pl *Pipeline) AddShader(name string) *Shader {
	if pl.Shaders == nil {
		pl.Shaders = make(map[string]*Shader)
	}
	if sh, has := pl.Shaders[name]; has {
		slog.Error("gpu.Pipeline AddShader: Shader already exists", "Shader", name, "pipeline", pl.Name)
		return sh
	}
	sh := NewShader(name, pl.System.Device())
	pl.Shaders[name] = sh
	return sh
}

// EntryByType returns ShaderEntry by ShaderType.
// Returns nil if not found.
func (pl *Pipeline) EntryByType(typ ShaderTypes) *ShaderEntry {
	for _, sh := range pl.Entries {
		if sh.Type == typ {
			return sh
		}
	}
	return nil
}

// AddEntry adds ShaderEntry for given shader, [ShaderTypes], and entry function name.
func (pl *Pipeline) AddEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	if pl.Entries == nil {
		pl.Entries = make(map[string]*ShaderEntry)
	}
	name := sh.Name + ":" + entry
	if se, has := pl.Entries[name]; has {
		slog.Error("gpu.Pipeline AddEntry: ShaderEntry already exists", "ShaderEntry", name, "pipeline", pl.Name)
		return se
	}
	se := NewShaderEntry(sh, typ, entry)
	pl.Entries[name] = se
	return se
}

// compileShaders compiles all the shaders, and if they were checked
// on the CPU, verifies the entry points against what was found.
func (pl *Pipeline) compileShaders() error {
	for _, sh := range pl.Shaders {
		info, err := sh.Compile()
		if err != nil {
			return err
		}
		if info == nil {
			continue
		}
		for _, se := range pl.Entries {
			if se.Shader != sh {
				continue
			}
			if err := se.Verify(info); err != nil {
				slog.Warn("gpu.Pipeline: entry point", "pipeline", pl.Name, "err", err)
			}
		}
	}
	return nil
}

// releaseShaders releases the shaders
func (pl *Pipeline) releaseShaders() {
	for _, sh := range pl.Shaders {
		sh.Release()
	}
	pl.Shaders = nil
	pl.Entries = nil
}

// bindLayout makes the PipelineLayout from the bind group layouts of the Vars.
func (pl *Pipeline) bindLayout() error {
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	dev := pl.System.Device()
	rpl, err := dev.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pl.Name,
		BindGroupLayouts: pl.Vars().bindLayouts(),
	})
	if err != nil {
		return dev.ReportError(fmt.Errorf("gpu.Pipeline %s layout: %w", pl.Name, err))
	}
	pl.layout = rpl
	return nil
}
