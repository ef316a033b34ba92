// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/spintri/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Value represents the GPU buffer holding the data of a [Var].
type Value struct {
	// name of this value, used as the buffer label
	Name string

	// VarSize is the size of one element of the variable, in bytes.
	VarSize int

	// N is the number of elements held, which is more than one
	// only for Vertex vars.
	N int

	// AllocSize is the size of the allocated buffer, in bytes.
	AllocSize int

	role   VarRoles
	buffer *wgpu.Buffer
	device *Device
}

// NewValue returns a new Value for given variable, on the given device.
func NewValue(vr *Var, dev *Device) *Value {
	vl := &Value{}
	vl.init(vr, dev)
	return vl
}

func (vl *Value) init(vr *Var, dev *Device) {
	vl.Name = vr.Name
	vl.VarSize = vr.MemSize()
	vl.role = vr.Role
	vl.device = dev
	vl.N = 1
}

// MemSize returns the memory size of the data held by this value, in bytes.
func (vl *Value) MemSize() int {
	return vl.VarSize * vl.N
}

// Release releases the buffer for this value
func (vl *Value) Release() {
	if vl.buffer != nil {
		vl.buffer.Release()
		vl.buffer = nil
	}
	vl.AllocSize = 0
}

// NilBufferCheck checks if buffer is nil, returning error if so
func (vl *Value) NilBufferCheck() error {
	if vl.buffer == nil {
		return fmt.Errorf("gpu.Value NilBufferCheck: buffer is nil for value: %s", vl.Name)
	}
	return nil
}

// SetValueFrom copies given values into value buffer memory,
// making the buffer if it has not yet been constructed.
func SetValueFrom[E any](vl *Value, from []E) error {
	return vl.SetFromBytes(wgpu.ToBytes(from))
}

// checkSize updates N for Vertex values from the number of bytes
// passed, and returns an error if it does not fit the variable.
func (vl *Value) checkSize(nb int) error {
	if vl.VarSize == 0 {
		return fmt.Errorf("gpu.Value SetFromBytes %s: variable has zero size", vl.Name)
	}
	if vl.role == Vertex {
		if nb == 0 || nb%vl.VarSize != 0 {
			return fmt.Errorf("gpu.Value SetFromBytes %s, Size passed: %d is not a multiple of vertex size %d", vl.Name, nb, vl.VarSize)
		}
		vl.N = nb / vl.VarSize
		return nil
	}
	if tb := vl.MemSize(); nb != tb {
		return fmt.Errorf("gpu.Value SetFromBytes %s, Size passed: %d != Size expected %d", vl.Name, nb, tb)
	}
	return nil
}

// SetFromBytes copies given bytes into value buffer memory,
// making the buffer if it has not yet been constructed.
// Once made, the buffer is overwritten through the queue, so the
// write is ordered before any work submitted afterwards.
func (vl *Value) SetFromBytes(from []byte) error {
	if err := vl.checkSize(len(from)); err != nil {
		return vl.device.ReportError(err)
	}
	nb := len(from)
	if vl.buffer == nil || vl.AllocSize != nb {
		vl.Release()
		buf, err := vl.device.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    vl.Name,
			Contents: from,
			Usage:    vl.role.BufferUsages(),
		})
		if err != nil {
			return vl.device.ReportError(fmt.Errorf("gpu.Value %s: %w", vl.Name, err))
		}
		vl.buffer = buf
		vl.AllocSize = nb
		return nil
	}
	err := vl.device.Queue.WriteBuffer(vl.buffer, 0, from)
	if err != nil {
		return vl.device.ReportError(fmt.Errorf("gpu.Value %s: %w", vl.Name, err))
	}
	return nil
}

// bindGroupEntry returns the entry binding the whole buffer
// at the binding of the given var.
func (vl *Value) bindGroupEntry(vr *Var) (wgpu.BindGroupEntry, error) {
	if err := vl.NilBufferCheck(); err != nil {
		return wgpu.BindGroupEntry{}, errors.Log(err)
	}
	return wgpu.BindGroupEntry{
		Binding: uint32(vr.Binding),
		Buffer:  vl.buffer,
		Offset:  0,
		Size:    wgpu.WholeSize,
	}, nil
}
