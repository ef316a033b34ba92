// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"context"
	"log/slog"
	"time"
)

// FPSInterval is how often the loop logs the frame rate, at debug level.
const FPSInterval = 10 * time.Second

// EventPoller processes window events, returning false
// once the window should close. It is implemented by [gpu.Window].
type EventPoller interface {
	PollEvents() bool
}

// Presenter shows the last rendered frame. It is implemented by [gpu.Surface].
type Presenter interface {
	Present()
}

// EventProcessor lets the GPU run callbacks for completed work.
// It is implemented by [gpu.Device].
type EventProcessor interface {
	ProcessEvents()
}

// FrameRenderer renders one frame. It is implemented by [Scene].
type FrameRenderer interface {
	RenderFrame() error
}

// Loop drives the scene: each iteration polls the window events,
// renders a frame, presents it and lets the device process
// completed work, until the window is closed.
type Loop struct {
	Window   EventPoller
	Renderer FrameRenderer
	Surface  Presenter
	Device   EventProcessor

	// Frames is the number of frames rendered.
	Frames int

	// now returns the current time, for the frame rate.
	now       func() time.Time
	fpsStart  time.Time
	fpsFrames int
}

// NewLoop returns a new loop.
func NewLoop(w EventPoller, rd FrameRenderer, sf Presenter, dev EventProcessor) *Loop {
	return &Loop{Window: w, Renderer: rd, Surface: sf, Device: dev, now: time.Now}
}

// Tick runs one iteration of the loop, returning false without
// rendering if the window should close. A frame that fails is
// logged, and the loop goes on.
func (lp *Loop) Tick() bool {
	if !lp.Window.PollEvents() {
		return false
	}
	if err := lp.Renderer.RenderFrame(); err != nil {
		slog.Warn("spin: frame failed", "frame", lp.Frames, "err", err)
	}
	lp.Surface.Present()
	lp.Device.ProcessEvents()
	lp.Frames++
	lp.countFPS()
	return true
}

// Run runs the loop until the window is closed.
func (lp *Loop) Run() {
	for lp.Tick() {
	}
}

// RunScheduled runs one iteration of the loop for each tick received,
// for environments where an external scheduler paces the frames.
// It returns when the window is closed, the ticks end, or the
// context is done.
func (lp *Loop) RunScheduled(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok || !lp.Tick() {
				return
			}
		}
	}
}

func (lp *Loop) countFPS() {
	if lp.now == nil {
		lp.now = time.Now
	}
	now := lp.now()
	if lp.fpsStart.IsZero() {
		lp.fpsStart = now
		return
	}
	lp.fpsFrames++
	dur := now.Sub(lp.fpsStart)
	if dur < FPSInterval {
		return
	}
	fps := float64(lp.fpsFrames) / dur.Seconds()
	slog.Debug("spin: frame rate", "fps", int(fps+0.5))
	lp.fpsFrames = 0
	lp.fpsStart = now
}
