/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package platform is the boundary between the render loop and a native
// window system. Backends own the window, the graphics context and the
// event pump; the Loop owns everything else.
package platform

import (
	"github.com/pkg/errors"

	"raycaster/internal/render"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Raycaster"

	// MaxSize bounds the window width and height.
	MaxSize = render.MaxSize
)

var ErrInvalidConfig = errors.New("invalid window config")

// Config describes the window a backend opens.
type Config struct {
	Width     int
	Height    int
	Title     string
	VSync     bool
	Resizable bool
}

func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Title:     DefaultTitle,
		Resizable: true,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "size %dx%d", c.Width, c.Height)
	}
	if c.Width > MaxSize || c.Height > MaxSize {
		return errors.Wrapf(ErrInvalidConfig, "size %dx%d exceeds %d", c.Width, c.Height, MaxSize)
	}
	return nil
}

// Window is what a Loop may do to the window it runs in.
type Window interface {
	SetTitle(title string)
	Size() (width, height int)
	SetShouldClose(bool)
	ShouldClose() bool
}

// Loop is driven by a backend once per frame:
//
//	f := loop.BeginFrame()
//	// clear, upload f, draw the quad, swap
//	// poll events -> loop.HandleEvent
//	loop.EndFrame()
type Loop interface {
	Init(w Window) error
	HandleEvent(ev Event)
	BeginFrame() *render.Frame
	EndFrame()
}

// Backend opens a window and runs a Loop in it until the window closes.
// Run must be called from the main goroutine.
type Backend interface {
	Name() string
	Run(cfg Config, loop Loop) error
}
