// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerLevel(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	var b bytes.Buffer
	lg := slog.New(NewHandler(&b))

	UserLevel = slog.LevelInfo
	lg.Debug("hidden")
	lg.Info("shown", "frames", 3)
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "shown")
	assert.Contains(t, b.String(), "frames=3")

	b.Reset()
	UserLevel = slog.LevelDebug
	lg.Debug("now shown")
	assert.Contains(t, b.String(), "now shown")
}

func TestLevelStringPlain(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "ERROR", LevelString(out, slog.LevelError))
	assert.Equal(t, "DEBUG", LevelString(out, slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	lvl, err = ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
