// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu wraps WebGPU for drawing with a single graphics
// pipeline into a window surface: device acquisition, shaders,
// variables and their buffers, pipelines and per-frame command
// encoding.
package gpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/spintri/logx"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug is whether to print debugging information about the
// configured variables and pipelines.
var Debug = false

// GPU represents the GPU hardware: the WebGPU instance
// and the adapter selected for rendering.
type GPU struct {
	// Instance is the WebGPU instance, the entry point to the API.
	Instance *wgpu.Instance

	// Adapter is the physical GPU selected by [Acquisition.Acquire].
	Adapter *wgpu.Adapter

	// ForceFallbackAdapter requests the software fallback adapter
	// instead of a hardware one.
	ForceFallbackAdapter bool
}

// NewGPU returns a new GPU with a fresh WebGPU instance.
// The adapter is set later, after a surface exists that it
// must be compatible with.
func NewGPU() *GPU {
	return &GPU{Instance: wgpu.CreateInstance(nil)}
}

// SetAdapter records the adapter selected for this GPU,
// and logs what it is at debug level.
func (gp *GPU) SetAdapter(adapter *wgpu.Adapter) {
	gp.Adapter = adapter
	if adapter == nil {
		return
	}
	lim := adapter.GetLimits()
	slog.Debug("gpu: adapter selected", "maxTextureDimension2D", lim.Limits.MaxTextureDimension2D, "maxBindGroups", lim.Limits.MaxBindGroups)
}

// Release releases the adapter and the instance.
func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}

// SetLogLevel sets the log level of the native WebGPU library
// from its name, as parsed by [LogLevel].
func SetLogLevel(name string) error {
	lvl, err := LogLevel(name)
	if err != nil {
		return err
	}
	wgpu.SetLogLevel(lvl)
	return nil
}

// LogLevel returns the native WebGPU log level for the given name:
// off, trace, or any level name understood by [logx.ParseLevel].
func LogLevel(name string) (wgpu.LogLevel, error) {
	switch strings.ToLower(name) {
	case "off":
		return wgpu.LogLevelOff, nil
	case "trace":
		return wgpu.LogLevelTrace, nil
	}
	lvl, err := logx.ParseLevel(name)
	if err != nil {
		return wgpu.LogLevelOff, fmt.Errorf("gpu.SetLogLevel: %w", err)
	}
	switch {
	case lvl >= slog.LevelError:
		return wgpu.LogLevelError, nil
	case lvl >= slog.LevelWarn:
		return wgpu.LogLevelWarn, nil
	case lvl >= slog.LevelInfo:
		return wgpu.LogLevelInfo, nil
	}
	return wgpu.LogLevelDebug, nil
}
