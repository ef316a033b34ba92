// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"

	"cogentcore.org/spintri/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a window with a WebGPU surface, which
// cannot be created on this platform.
type Window struct {
	Surface       *wgpu.Surface
	Size          image.Point
	OnMouseButton func(button MouseButton, action MouseAction)
}

// GLFWCreateWindow returns an error: glfw windows are only
// available on desktop platforms.
func GLFWCreateWindow(gp *GPU, size image.Point, title string) (*Window, error) {
	return nil, errors.New("gpu.GLFWCreateWindow: no glfw on this platform")
}

func (w *Window) PollEvents() bool { return false }

func (w *Window) Destroy() {}
