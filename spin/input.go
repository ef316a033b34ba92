// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"log/slog"

	"cogentcore.org/spintri/gpu"
)

// MouseButton handles a mouse button event: a press of the left
// button toggles the animation. Everything else is ignored.
func (sc *Scene) MouseButton(button gpu.MouseButton, action gpu.MouseAction) {
	if button != gpu.Left || action != gpu.Press {
		return
	}
	sc.Animation.Toggle()
	slog.Debug("spin: toggled", "animating", sc.Animation.Animating, "angle", sc.Animation.Angle)
}
