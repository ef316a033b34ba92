// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/spintri/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrNoAdapter is returned when no adapter could be acquired.
	ErrNoAdapter = errors.New("gpu: adapter request failed")

	// ErrNoDevice is returned when the adapter could not provide a device.
	ErrNoDevice = errors.New("gpu: device request failed")
)

// AdapterRequester requests an adapter matching the given options.
type AdapterRequester func(opts *wgpu.RequestAdapterOptions) (*wgpu.Adapter, error)

// DeviceRequester requests a logical device from the given adapter.
type DeviceRequester func(adapter *wgpu.Adapter, desc *wgpu.DeviceDescriptor) (*wgpu.Device, error)

// Acquisition is the two step handshake that produces a device:
// first an adapter is requested from the instance, then a device
// from that adapter. Nothing else on the GPU can be created before
// it completes.
type Acquisition struct {
	// Options for the adapter request.
	Options wgpu.RequestAdapterOptions

	// Descriptor for the device request.
	Descriptor wgpu.DeviceDescriptor

	// RequestAdapter performs the adapter request.
	RequestAdapter AdapterRequester

	// RequestDevice performs the device request.
	RequestDevice DeviceRequester
}

// NewAcquisition returns an Acquisition for the given GPU, requesting
// an adapter that can present to the given surface.
func NewAcquisition(gp *GPU, name string, compatible *wgpu.Surface) *Acquisition {
	return &Acquisition{
		Options: wgpu.RequestAdapterOptions{
			CompatibleSurface:    compatible,
			ForceFallbackAdapter: gp.ForceFallbackAdapter,
		},
		Descriptor: wgpu.DeviceDescriptor{
			Label:              name,
			DeviceLostCallback: DeviceLost,
		},
		RequestAdapter: gp.Instance.RequestAdapter,
		RequestDevice: func(adapter *wgpu.Adapter, desc *wgpu.DeviceDescriptor) (*wgpu.Device, error) {
			return adapter.RequestDevice(desc)
		},
	}
}

// Acquire requests the adapter and then the device, waiting for each
// request to complete before starting the next one.
// The context is checked before each request, but a request that has
// started cannot be cancelled. Errors wrap [ErrNoAdapter] or
// [ErrNoDevice]. If the device request fails or the context is done
// after the adapter was acquired, the adapter is still returned so that
// the caller can release it.
func (aq *Acquisition) Acquire(ctx context.Context) (*wgpu.Adapter, *wgpu.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	adapter, err := aq.RequestAdapter(&aq.Options)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	if adapter == nil {
		return nil, nil, ErrNoAdapter
	}
	slog.Info("gpu: adapter acquired")
	if err := ctx.Err(); err != nil {
		return adapter, nil, err
	}
	device, err := aq.RequestDevice(adapter, &aq.Descriptor)
	if err != nil {
		return adapter, nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	if device == nil {
		return adapter, nil, ErrNoDevice
	}
	slog.Info("gpu: device acquired", "label", aq.Descriptor.Label)
	return adapter, device, nil
}
