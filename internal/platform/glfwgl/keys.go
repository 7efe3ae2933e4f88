/*
 * Copyright (C) 2023 by Jason Figge
 */

package glfwgl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"raycaster/internal/platform"
)

var keys = map[glfw.Key]platform.Key{
	glfw.KeyEscape: platform.KeyEscape,
	glfw.KeyQ:      platform.KeyQ,
	glfw.KeyF:      platform.KeyF,
	glfw.KeyW:      platform.KeyW,
	glfw.KeyA:      platform.KeyA,
	glfw.KeyS:      platform.KeyS,
	glfw.KeyD:      platform.KeyD,
	glfw.KeySpace:  platform.KeySpace,
	glfw.KeyUp:     platform.KeyUp,
	glfw.KeyDown:   platform.KeyDown,
	glfw.KeyLeft:   platform.KeyLeft,
	glfw.KeyRight:  platform.KeyRight,
}

func mapKey(k glfw.Key) platform.Key {
	return keys[k]
}

func mapAction(a glfw.Action) platform.Action {
	switch a {
	case glfw.Press:
		return platform.Press
	case glfw.Repeat:
		return platform.Repeat
	}
	return platform.Release
}

func mapMods(m glfw.ModifierKey) platform.Mod {
	var out platform.Mod
	if m&glfw.ModShift != 0 {
		out |= platform.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= platform.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= platform.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= platform.ModSuper
	}
	return out
}

func mapButton(b glfw.MouseButton) platform.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return platform.MouseLeft
	case glfw.MouseButtonRight:
		return platform.MouseRight
	case glfw.MouseButtonMiddle:
		return platform.MouseMiddle
	}
	return platform.MouseOther
}
