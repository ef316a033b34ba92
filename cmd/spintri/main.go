// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spintri shows a colored triangle rotating in a window.
// Pressing the left mouse button stops or restarts the rotation.
package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/spintri/base/errors"
	"cogentcore.org/spintri/cli"
	"cogentcore.org/spintri/gpu"
	"cogentcore.org/spintri/logx"
	"cogentcore.org/spintri/spin"
	"github.com/spf13/pflag"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	err := run(os.Args[1:])
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		slog.Error("spintri", "err", err)
	}
	os.Exit(exitCode(err))
}

// exitCode returns the exit code for the result of run. Failing to get
// an adapter exits with 0, as there is simply nothing to show on this
// machine, and so does asking for help. Anything else that prevents
// drawing exits with 1.
func exitCode(err error) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) || errors.Is(err, gpu.ErrNoAdapter) {
		return 0
	}
	return 1
}

// parseConfig returns the config set from the command line arguments.
func parseConfig(args []string) (*spin.Config, error) {
	cfg := &spin.Config{}
	if err := cli.Parse(cfg, "spintri", args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configure sets up logging, native WebGPU logging and the
// shader checks from the config.
func configure(cfg *spin.Config) error {
	if cfg.Verbose {
		logx.UserLevel = slog.LevelDebug
	}
	logx.SetDefaultLogger()
	gpu.Debug = cfg.Verbose
	gpu.CheckShaders = !cfg.NoShaderCheck
	return gpu.SetLogLevel(cfg.GPULog)
}

// run runs the program until the window is closed.
func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	if cfg.PrintConfig {
		return cli.WriteTOML(os.Stdout, cfg)
	}
	if err := configure(cfg); err != nil {
		return err
	}

	gp := gpu.NewGPU()
	gp.ForceFallbackAdapter = cfg.FallbackAdapter
	defer gp.Release()

	w, err := gpu.GLFWCreateWindow(gp, image.Point{spin.Width, spin.Height}, spin.Title)
	if err != nil {
		return err
	}
	defer w.Destroy()

	adapter, dev, err := gpu.NewAcquisition(gp, "spintri", w.Surface).Acquire(context.Background())
	gp.SetAdapter(adapter)
	if err != nil {
		return err
	}
	device := gpu.NewDevice(dev)
	defer device.Release()

	sf := gpu.NewSurface(gp, w.Surface, w.Size)
	defer sf.Release()
	if err := sf.Config(device); err != nil {
		return err
	}

	sy := gpu.NewGraphicsSystem(gp, "spintri", sf)
	sc, err := spin.NewScene(sy, !cfg.Paused)
	if err != nil {
		return fmt.Errorf("cannot build the pipeline: %w", err)
	}
	defer sc.Release()
	w.OnMouseButton = sc.MouseButton

	lp := spin.NewLoop(w, sc, sf, device)
	lp.Run()
	slog.Debug("spintri: window closed", "frames", lp.Frames)
	return nil
}
