// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormatNames has the names of the texture formats that
// window surfaces commonly report.
var TextureFormatNames = map[wgpu.TextureFormat]string{
	wgpu.TextureFormatRGBA8Unorm:     "RGBA8Unorm",
	wgpu.TextureFormatRGBA8UnormSrgb: "RGBA8UnormSrgb",
	wgpu.TextureFormatBGRA8Unorm:     "BGRA8Unorm",
	wgpu.TextureFormatBGRA8UnormSrgb: "BGRA8UnormSrgb",
	wgpu.TextureFormatRGBA16Float:    "RGBA16Float",
	wgpu.TextureFormatRGB10A2Unorm:   "RGB10A2Unorm",
}

// FormatName returns a readable name for the given texture format.
func FormatName(tf wgpu.TextureFormat) string {
	if nm, ok := TextureFormatNames[tf]; ok {
		return nm
	}
	return fmt.Sprintf("TextureFormat(%d)", uint32(tf))
}
