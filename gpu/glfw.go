// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"fmt"
	"image"

	"cogentcore.org/spintri/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// other platforms get a Window that cannot be created.

// Init initializes glfw for Display-enabled use.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw: call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Window is a fixed size glfw window with a WebGPU surface.
type Window struct {
	// Surface is the WebGPU surface of the window.
	Surface *wgpu.Surface

	// Size of the window, which cannot be resized.
	Size image.Point

	// OnMouseButton is called with every mouse button event.
	OnMouseButton func(button MouseButton, action MouseAction)

	window *glfw.Window
}

// GLFWCreateWindow initializes glfw and makes a new window of the given
// size and title, without any client API, that cannot be resized.
// The surface is created from the instance of the given GPU.
func GLFWCreateWindow(gp *GPU, size image.Point, title string) (*Window, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		Terminate()
		return nil, fmt.Errorf("gpu.GLFWCreateWindow: %w", err)
	}
	w := &Window{Size: size, window: window}
	w.Surface = gp.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if w.OnMouseButton != nil {
			w.OnMouseButton(glfwMouseButton(button), glfwMouseAction(action))
		}
	})
	return w, nil
}

// PollEvents processes pending window events, calling the callbacks,
// and returns false once the window has been asked to close.
func (w *Window) PollEvents() bool {
	if w.window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// Destroy destroys the window and terminates glfw.
func (w *Window) Destroy() {
	w.window.Destroy()
	Terminate()
}

func glfwMouseButton(button glfw.MouseButton) MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return Left
	case glfw.MouseButtonMiddle:
		return Middle
	case glfw.MouseButtonRight:
		return Right
	}
	return NoButton
}

func glfwMouseAction(action glfw.Action) MouseAction {
	switch action {
	case glfw.Press:
		return Press
	case glfw.Release:
		return Release
	}
	return Repeat
}
