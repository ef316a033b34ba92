// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Rate float32 `default:"0.01"`
}

type settings struct {
	Name    string `default:"spin"`
	On      bool   `default:"true"`
	Count   int    `default:"3"`
	Mask    uint32 `default:"0xff"`
	Inner   inner
	NoTag   string
	private int
}

func TestSetFromDefaultTags(t *testing.T) {
	s := &settings{NoTag: "keep"}
	require.NoError(t, SetFromDefaultTags(s))
	assert.Equal(t, "spin", s.Name)
	assert.True(t, s.On)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, uint32(255), s.Mask)
	assert.InDelta(t, 0.01, s.Inner.Rate, 1e-7)
	assert.Equal(t, "keep", s.NoTag)
	assert.Equal(t, 0, s.private)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(settings{}))
	assert.Error(t, SetFromDefaultTags((*settings)(nil)))
	v := 3
	assert.Error(t, SetFromDefaultTags(&v))

	type bad struct {
		N int `default:"three"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
}
