// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// System provides the general interface for a [GraphicsSystem],
// as seen by the pipelines it owns.
type System interface {
	// Vars represents all the data variables used by the system,
	// with one Var for each resource that is made visible to the shader,
	// indexed by Group (@group) and Binding (@binding).
	// Each Var has a Value holding its GPU buffer.
	Vars() *Vars

	// Device is the logical device for this system,
	// from the Renderer (Surface).
	Device() *Device

	// GPU is our GPU device, which holds the instance and adapter.
	GPU() *GPU
}
