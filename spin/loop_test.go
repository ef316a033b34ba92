// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testDriver is a window that closes after a number of polls,
// and records each step of the loop.
type testDriver struct {
	open     int
	events   []string
	frameErr error
}

func (td *testDriver) PollEvents() bool {
	td.events = append(td.events, "poll")
	if td.open == 0 {
		return false
	}
	td.open--
	return true
}

func (td *testDriver) RenderFrame() error {
	td.events = append(td.events, "render")
	return td.frameErr
}

func (td *testDriver) Present()       { td.events = append(td.events, "present") }
func (td *testDriver) ProcessEvents() { td.events = append(td.events, "process") }

func newTestLoop(frames int) (*Loop, *testDriver) {
	td := &testDriver{open: frames}
	return NewLoop(td, td, td, td), td
}

func TestRun(t *testing.T) {
	lp, td := newTestLoop(2)
	lp.Run()
	assert.Equal(t, 2, lp.Frames)
	assert.Equal(t, []string{
		"poll", "render", "present", "process",
		"poll", "render", "present", "process",
		"poll",
	}, td.events)
}

func TestRunFrameErrors(t *testing.T) {
	lp, td := newTestLoop(3)
	td.frameErr = errors.New("lost")
	lp.Run()
	assert.Equal(t, 3, lp.Frames, "failed frames do not stop the loop")
}

func TestRunScheduled(t *testing.T) {
	lp, _ := newTestLoop(5)
	ticks := make(chan time.Time, 3)
	for range 3 {
		ticks <- time.Now()
	}
	close(ticks)
	lp.RunScheduled(context.Background(), ticks)
	assert.Equal(t, 3, lp.Frames, "one frame per tick")

	lp, _ = newTestLoop(1)
	ticks = make(chan time.Time, 3)
	for range 3 {
		ticks <- time.Now()
	}
	lp.RunScheduled(context.Background(), ticks)
	assert.Equal(t, 1, lp.Frames, "stops when the window closes")
}

func TestRunScheduledCanceled(t *testing.T) {
	lp, td := newTestLoop(5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lp.RunScheduled(ctx, make(chan time.Time))
	assert.Zero(t, lp.Frames)
	assert.Empty(t, td.events)
}

func TestCountFPS(t *testing.T) {
	lp, _ := newTestLoop(0)
	now := time.Unix(0, 0)
	lp.now = func() time.Time { return now }
	lp.countFPS()
	for range 499 {
		now = now.Add(FPSInterval / 500)
		lp.countFPS()
	}
	assert.Equal(t, 499, lp.fpsFrames)
	now = now.Add(FPSInterval / 500)
	lp.countFPS()
	assert.Zero(t, lp.fpsFrames, "reset after each interval")
	assert.Equal(t, now, lp.fpsStart)
}
