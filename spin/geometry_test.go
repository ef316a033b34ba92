// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"testing"
	"unsafe"

	"cogentcore.org/spintri/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uintptr(20), unsafe.Sizeof(Vertex{}))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(Vertex{}.Color))
	size := 0
	for _, f := range VertexFields {
		size += f.Type.Bytes()
	}
	assert.Equal(t, int(unsafe.Sizeof(Vertex{})), size)
}

func TestTriangle(t *testing.T) {
	assert.Equal(t, [3]float32{1, 0, 0}, Triangle[0].Color)
	assert.Equal(t, [3]float32{0, 1, 0}, Triangle[1].Color)
	assert.Equal(t, [3]float32{0, 0, 1}, Triangle[2].Color)
	var cy float32
	for _, v := range Triangle {
		cy += v.Pos[1]
	}
	assert.InDelta(t, 0, float64(cy), 1e-3, "centered on the origin")
}

func TestTriangleShader(t *testing.T) {
	sh := gpu.NewShader(PipelineName, nil)
	sh.OpenCode(TriangleShader)
	info, err := sh.Check()
	require.NoError(t, err)
	assert.Equal(t, gpu.VertexShader, info.Entries[VertexEntry])
	assert.Equal(t, gpu.FragmentShader, info.Entries[FragmentEntry])
	assert.NoError(t, gpu.NewShaderEntry(sh, gpu.VertexShader, VertexEntry).Verify(info))
	assert.NoError(t, gpu.NewShaderEntry(sh, gpu.FragmentShader, FragmentEntry).Verify(info))
}
