// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"github.com/spf13/pflag"
)

// Window title and size, which are fixed.
const (
	Title  = "WebGPU window"
	Width  = 512
	Height = 512
)

// Config has the command line options, which only
// tune diagnostics and the starting state.
type Config struct {
	// Verbose turns on debug logging.
	Verbose bool `toml:"verbose" default:"false"`

	// GPULog is the log level of the native WebGPU library:
	// off, error, warn, info, debug or trace.
	GPULog string `toml:"gpu-log" default:"warn"`

	// FallbackAdapter requests the software fallback adapter.
	FallbackAdapter bool `toml:"fallback-adapter" default:"false"`

	// Paused starts with the triangle not rotating.
	Paused bool `toml:"paused" default:"false"`

	// NoShaderCheck skips parsing and validating the shader on the CPU.
	NoShaderCheck bool `toml:"no-shader-check" default:"false"`

	// PrintConfig prints the config as TOML and exits.
	PrintConfig bool `toml:"-" default:"false"`
}

// Flags binds the config fields to command line flags,
// using the current values as defaults.
func (c *Config) Flags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "debug logging")
	fs.StringVar(&c.GPULog, "gpu-log", c.GPULog, "WebGPU log level: off, error, warn, info, debug, trace")
	fs.BoolVar(&c.FallbackAdapter, "fallback-adapter", c.FallbackAdapter, "request the software fallback adapter")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the rotation stopped")
	fs.BoolVar(&c.NoShaderCheck, "no-shader-check", c.NoShaderCheck, "skip CPU-side shader validation")
	fs.BoolVar(&c.PrintConfig, "print-config", c.PrintConfig, "print the config as TOML and exit")
}
