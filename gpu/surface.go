// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Renderer is the target of a [GraphicsSystem]: something
// that provides a texture to render each frame into.
type Renderer interface {
	// Device returns the device for rendering.
	Device() *Device

	// Format returns the texture format of the target.
	Format() wgpu.TextureFormat

	// GetCurrentTexture returns a view of the texture to render
	// the next frame into.
	GetCurrentTexture() (*wgpu.TextureView, error)

	// Present shows the most recently rendered frame.
	Present()
}

// Surface manages the physical device for the visible image
// of a window surface, and the texture that is rendered into
// each frame.
type Surface struct {
	// TextureFormat is the format of the surface textures,
	// the first one reported by the surface.
	TextureFormat wgpu.TextureFormat

	// Size of the surface, which is fixed.
	Size image.Point

	// PresentMode is how frames are shown: Fifo waits for
	// the vertical blank.
	PresentMode wgpu.PresentMode

	// underlying WebGPU surface
	surface *wgpu.Surface

	gpu    *GPU
	device *Device

	// current texture and its view, until presented
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

// NewSurface returns a new surface for the given window surface.
// It must be configured with a device before rendering.
func NewSurface(gp *GPU, ws *wgpu.Surface, size image.Point) *Surface {
	return &Surface{gpu: gp, surface: ws, Size: size, PresentMode: wgpu.PresentModeFifo}
}

func (sf *Surface) Device() *Device            { return sf.device }
func (sf *Surface) Format() wgpu.TextureFormat { return sf.TextureFormat }

// Config configures the surface for the given device, using the first
// format and alpha mode that the surface supports with the adapter.
func (sf *Surface) Config(dev *Device) error {
	sf.device = dev
	caps := sf.surface.GetCapabilities(sf.gpu.Adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return fmt.Errorf("gpu.Surface: surface is not supported by the adapter")
	}
	sf.TextureFormat = caps.Formats[0]
	sf.surface.Configure(sf.gpu.Adapter, dev.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.TextureFormat,
		Width:       uint32(sf.Size.X),
		Height:      uint32(sf.Size.Y),
		PresentMode: sf.PresentMode,
		AlphaMode:   caps.AlphaModes[0],
	})
	slog.Debug("gpu.Surface: configured", "format", FormatName(sf.TextureFormat), "size", sf.Size)
	return nil
}

// GetCurrentTexture returns a view of the next surface texture,
// which is held until [Surface.Present].
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	sf.releaseTexture()
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("gpu.Surface: current texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("gpu.Surface: texture view: %w", err)
	}
	sf.texture = tex
	sf.view = view
	return view, nil
}

// Present presents the current texture, if there is one, and releases it.
func (sf *Surface) Present() {
	if sf.texture == nil {
		return
	}
	sf.surface.Present()
	sf.releaseTexture()
}

func (sf *Surface) releaseTexture() {
	if sf.view != nil {
		sf.view.Release()
		sf.view = nil
	}
	if sf.texture != nil {
		sf.texture.Release()
		sf.texture = nil
	}
}

// Release releases the current texture and the surface.
func (sf *Surface) Release() {
	sf.releaseTexture()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}
