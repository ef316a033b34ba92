// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/spintri/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// CheckShaders is whether WGSL code is parsed and validated on the CPU
// before it is handed to the device in [Shader.Compile], so that
// problems are reported with line information.
var CheckShaders = true

// Shader manages a single WGSL shader program, which can have
// multiple entry points. See [ShaderEntry] for entry points
// into Shaders.
type Shader struct {
	// Name is the name of the shader, used as the module label.
	Name string

	// Code is the WGSL source code.
	Code string

	module *wgpu.ShaderModule
	device *Device
}

// NewShader returns a new Shader with given name and device.
func NewShader(name string, dev *Device) *Shader {
	return &Shader{Name: name, device: dev}
}

// OpenCode sets the WGSL source code for the shader.
func (sh *Shader) OpenCode(code string) {
	sh.Code = code
}

// ShaderInfo is what a CPU-side check found in WGSL code.
type ShaderInfo struct {
	// Entries maps entry point function names to their stage.
	Entries map[string]ShaderTypes

	// Problems are the validation errors found in the code,
	// which does parse.
	Problems []error
}

// Check parses the shader code and validates the resulting module,
// without using the GPU. It returns an error only if the code
// does not parse; validation problems are listed in the info.
func (sh *Shader) Check() (*ShaderInfo, error) {
	ast, err := naga.Parse(sh.Code)
	if err != nil {
		return nil, fmt.Errorf("gpu.Shader %s: %w", sh.Name, err)
	}
	module, err := naga.LowerWithSource(ast, sh.Code)
	if err != nil {
		return nil, fmt.Errorf("gpu.Shader %s: %w", sh.Name, err)
	}
	info := &ShaderInfo{Entries: make(map[string]ShaderTypes)}
	for _, ep := range module.EntryPoints {
		switch ep.Stage {
		case ir.StageVertex:
			info.Entries[ep.Name] = VertexShader
		case ir.StageFragment:
			info.Entries[ep.Name] = FragmentShader
		}
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		info.Problems = append(info.Problems, err)
	}
	for i := range verrs {
		info.Problems = append(info.Problems, &verrs[i])
	}
	return info, nil
}

// Compile compiles the code into a shader module on the device.
// If [CheckShaders] is on, the code is checked first, any problems
// are logged, and the info is returned: the device has the final word.
func (sh *Shader) Compile() (*ShaderInfo, error) {
	var info *ShaderInfo
	if CheckShaders {
		var err error
		info, err = sh.Check()
		if err != nil {
			slog.Warn("gpu.Shader: check failed", "shader", sh.Name, "err", err)
		} else {
			for _, p := range info.Problems {
				slog.Warn("gpu.Shader: validation", "shader", sh.Name, "problem", p)
			}
		}
	}
	sh.Release()
	module, err := sh.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: sh.Code,
		},
	})
	if err != nil {
		return info, sh.device.ReportError(fmt.Errorf("gpu.Shader %s: %w", sh.Name, err))
	}
	sh.module = module
	return info, nil
}

// Release releases the shader module, if any.
func (sh *Shader) Release() {
	if sh.module != nil {
		sh.module.Release()
		sh.module = nil
	}
}

// ShaderEntry is an entry point into a [Shader]. There can be multiple
// entry points per shader.
type ShaderEntry struct {
	// Shader has the code
	Shader *Shader

	// Type of shader entry point.
	Type ShaderTypes

	// Entry is the name of the function to call for this Entry.
	Entry string
}

// NewShaderEntry returns a new ShaderEntry with given settings.
func NewShaderEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	return &ShaderEntry{Shader: sh, Type: typ, Entry: entry}
}

// Verify checks, if the shader code was checked on the CPU,
// that the entry function exists with the right stage.
func (se *ShaderEntry) Verify(info *ShaderInfo) error {
	typ, ok := info.Entries[se.Entry]
	if !ok {
		return fmt.Errorf("gpu.ShaderEntry: %s has no entry point %q", se.Shader.Name, se.Entry)
	}
	if typ != se.Type {
		return fmt.Errorf("gpu.ShaderEntry: %s:%s is a %v, not a %v", se.Shader.Name, se.Entry, typ, se.Type)
	}
	return nil
}

// mustModule returns the shader module, logging an error
// if the shader has not been compiled.
func (sh *Shader) mustModule() *wgpu.ShaderModule {
	if sh.module == nil {
		errors.Log(fmt.Errorf("gpu.Shader %s: not compiled", sh.Name))
	}
	return sh.module
}
