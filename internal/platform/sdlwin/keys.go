/*
 * Copyright (C) 2023 by Jason Figge
 */

package sdlwin

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"raycaster/internal/platform"
)

var scancodes = map[sdl.Scancode]platform.Key{
	sdl.SCANCODE_ESCAPE: platform.KeyEscape,
	sdl.SCANCODE_Q:      platform.KeyQ,
	sdl.SCANCODE_F:      platform.KeyF,
	sdl.SCANCODE_W:      platform.KeyW,
	sdl.SCANCODE_A:      platform.KeyA,
	sdl.SCANCODE_S:      platform.KeyS,
	sdl.SCANCODE_D:      platform.KeyD,
	sdl.SCANCODE_SPACE:  platform.KeySpace,
	sdl.SCANCODE_UP:     platform.KeyUp,
	sdl.SCANCODE_DOWN:   platform.KeyDown,
	sdl.SCANCODE_LEFT:   platform.KeyLeft,
	sdl.SCANCODE_RIGHT:  platform.KeyRight,
}

func keyEvent(e *sdl.KeyboardEvent) platform.KeyEvent {
	return platform.KeyEvent{
		Key:    scancodes[e.Keysym.Scancode],
		Action: mapState(e.State, e.Repeat),
		Mods:   mapMods(e.Keysym.Mod),
	}
}

func mapState(state, repeat uint8) platform.Action {
	if state != sdl.PRESSED {
		return platform.Release
	}
	if repeat != 0 {
		return platform.Repeat
	}
	return platform.Press
}

func mapMods(mod uint16) platform.Mod {
	var out platform.Mod
	if mod&uint16(sdl.KMOD_SHIFT) != 0 {
		out |= platform.ModShift
	}
	if mod&uint16(sdl.KMOD_CTRL) != 0 {
		out |= platform.ModControl
	}
	if mod&uint16(sdl.KMOD_ALT) != 0 {
		out |= platform.ModAlt
	}
	if mod&uint16(sdl.KMOD_GUI) != 0 {
		out |= platform.ModSuper
	}
	return out
}

func mapButton(button uint8) platform.MouseButton {
	switch button {
	case sdl.BUTTON_LEFT:
		return platform.MouseLeft
	case sdl.BUTTON_RIGHT:
		return platform.MouseRight
	case sdl.BUTTON_MIDDLE:
		return platform.MouseMiddle
	}
	return platform.MouseOther
}

func fmtVersion(v sdl.Version) string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
