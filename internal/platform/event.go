/*
 * Copyright (C) 2023 by Jason Figge
 */

package platform

import "fmt"

// Event is one of KeyEvent, MouseButtonEvent, CursorEvent, ResizeEvent or
// CloseEvent.
type Event interface {
	event()
}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeyF
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyQ:       "q",
	KeyF:       "f",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	KeySpace:   "space",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("key(%d)", int(k))
}

type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

type Mod int

const (
	ModShift Mod = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)

type KeyEvent struct {
	Key    Key
	Action Action
	Mods   Mod
}

type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   Mod
}

// CursorEvent is the cursor position in window coordinates.
type CursorEvent struct {
	X, Y float64
}

type ResizeEvent struct {
	Width, Height int
}

// CloseEvent is sent when the user asks the window to close.
type CloseEvent struct{}

func (KeyEvent) event()         {}
func (MouseButtonEvent) event() {}
func (CursorEvent) event()      {}
func (ResizeEvent) event()      {}
func (CloseEvent) event()       {}
