// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds the logical device and its queue.
type Device struct {
	// logical device
	Device *wgpu.Device

	// queue for device
	Queue *wgpu.Queue

	// OnError is called with every error reported by the device
	// after it was acquired. It defaults to logging the error:
	// no recovery or shutdown is attempted.
	OnError func(err error)
}

// NewDevice returns a new Device for the given logical device.
func NewDevice(dev *wgpu.Device) *Device {
	return &Device{Device: dev, Queue: dev.GetQueue()}
}

// ReportError passes the given error to [Device.OnError],
// if it is non-nil, and returns it.
// The intended usage is:
//
//	return dev.ReportError(err)
func (dv *Device) ReportError(err error) error {
	if err == nil {
		return nil
	}
	if dv.OnError != nil {
		dv.OnError(err)
	} else {
		logError(err)
	}
	return err
}

func logError(err error) {
	slog.Error("gpu: device error", "err", err)
}

// DeviceLost is the [wgpu.DeviceLostCallback] of acquired devices.
// A device destroyed by its release is logged at debug level,
// any other loss is logged as a device error.
func DeviceLost(reason wgpu.DeviceLostReason, message string) {
	if reason == wgpu.DeviceLostReasonDestroyed {
		slog.Debug("gpu: device destroyed", "message", message)
		return
	}
	logError(fmt.Errorf("gpu: device lost (%s): %s", reason, message))
}

// ProcessEvents lets the device run any callbacks for completed
// work, without waiting for the queue to drain.
func (dv *Device) ProcessEvents() {
	dv.Device.Poll(false, nil)
}

// WaitDone waits until the device is done with all submitted work.
func (dv *Device) WaitDone() {
	dv.Device.Poll(true, nil)
}

// Release releases the queue and the device.
func (dv *Device) Release() {
	if dv.Queue != nil {
		dv.Queue.Release()
		dv.Queue = nil
	}
	if dv.Device != nil {
		dv.Device.Release()
		dv.Device = nil
	}
}
