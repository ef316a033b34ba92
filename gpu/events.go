// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// MouseButton is a mouse button reported by a [Window].
type MouseButton int32

const (
	NoButton MouseButton = iota
	Left
	Middle
	Right
)

func (mb MouseButton) String() string {
	switch mb {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// MouseAction is what happened to a [MouseButton].
type MouseAction int32

const (
	Press MouseAction = iota
	Release
	Repeat
)

func (ma MouseAction) String() string {
	switch ma {
	case Press:
		return "Press"
	case Release:
		return "Release"
	}
	return "Repeat"
}
