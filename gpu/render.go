// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ClearRenderPass returns a render pass descriptor with one color
// attachment on the given view, that clears it to the given color
// and stores the result.
func ClearRenderPass(view *wgpu.TextureView, clear wgpu.Color) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: clear,
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
}

