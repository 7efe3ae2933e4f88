/*
 * Copyright (C) 2023 by Jason Figge
 */

package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"raycaster/internal/frametimer"
	"raycaster/internal/logging"
	"raycaster/internal/platform"
	"raycaster/internal/raycaster"
	"raycaster/internal/render"
)

const SampleInterval = time.Second

// Input is the last known mouse state.
type Input struct {
	CursorX, CursorY float64
	Buttons          map[platform.MouseButton]bool
}

// Controller glues a renderer and a frame timer to a window. It implements
// platform.Loop.
type Controller struct {
	renderer  *render.Renderer
	timer     *frametimer.Timer
	window    platform.Window
	titleBase string
	input     Input
	log       *slog.Logger
}

type Options struct {
	Title   string
	Width   int
	Height  int
	Overlay bool
	Logger  *slog.Logger
	// Clock is used by the frame timer; nil means time.Now.
	Clock func() time.Time
}

func NewController(caster raycaster.Raycaster, opts Options) (*Controller, error) {
	log := logging.OrNop(opts.Logger)
	title := opts.Title
	if title == "" {
		title = platform.DefaultTitle
	}

	timer, err := frametimer.New(SampleInterval, frametimer.WithClock(opts.Clock), frametimer.WithLogger(log))
	if err != nil {
		return nil, errors.Wrap(err, "frame timer")
	}

	overlay := render.NewOverlay()
	overlay.SetEnabled(opts.Overlay)

	c := &Controller{
		renderer:  render.New(caster, opts.Width, opts.Height, render.WithLogger(log), render.WithOverlay(overlay)),
		timer:     timer,
		titleBase: title + ": " + raycaster.Name(caster),
		input:     Input{Buttons: map[platform.MouseButton]bool{}},
		log:       log,
	}
	timer.OnFPS(c.onFPS)
	return c, nil
}

func (c *Controller) Init(w platform.Window) error {
	c.window = w
	w.SetTitle(c.titleBase)
	width, height := w.Size()
	c.renderer.SetViewportSize(width, height)
	c.log.Debug("Window ready", "width", width, "height", height, "title", c.titleBase)
	return nil
}

func (c *Controller) onFPS(fps int) {
	text := fmt.Sprintf("%d FPS", fps)
	c.renderer.Overlay().SetText(text)
	if c.window != nil {
		c.window.SetTitle(fmt.Sprintf("%s [%s]", c.titleBase, text))
	}
}

func (c *Controller) HandleEvent(ev platform.Event) {
	switch e := ev.(type) {
	case platform.KeyEvent:
		c.keyboardEvent(e)
	case platform.MouseButtonEvent:
		c.mouseButtonEvent(e)
	case platform.CursorEvent:
		c.input.CursorX, c.input.CursorY = e.X, e.Y
	case platform.ResizeEvent:
		c.log.Debug("Window resized", "width", e.Width, "height", e.Height)
		c.renderer.SetViewportSize(e.Width, e.Height)
	case platform.CloseEvent:
		c.log.Debug("Window close requested")
	}
}

func (c *Controller) keyboardEvent(e platform.KeyEvent) {
	switch {
	case e.Key == platform.KeyEscape && e.Action == platform.Release:
		c.quit()
	case e.Key == platform.KeyQ && e.Action == platform.Press:
		c.quit()
	case e.Key == platform.KeyF && e.Action == platform.Press:
		on := c.renderer.Overlay().Toggle()
		c.log.Debug("FPS overlay", "enabled", on)
	}
}

func (c *Controller) mouseButtonEvent(e platform.MouseButtonEvent) {
	switch e.Action {
	case platform.Press:
		c.input.Buttons[e.Button] = true
	case platform.Release:
		delete(c.input.Buttons, e.Button)
	}
	c.log.Debug("Mouse button", "button", e.Button, "action", e.Action,
		"x", c.input.CursorX, "y", c.input.CursorY)
}

func (c *Controller) quit() {
	if c.window != nil {
		c.window.SetShouldClose(true)
	}
}

// BeginFrame renders the next frame and returns it for the backend to draw.
func (c *Controller) BeginFrame() *render.Frame {
	c.timer.Start()
	c.renderer.StartFrame()
	c.renderer.RenderFrame()
	return c.renderer.Frame()
}

func (c *Controller) EndFrame() {
	c.timer.End()
}

// Input returns a copy of the current mouse state.
func (c *Controller) Input() Input {
	in := Input{CursorX: c.input.CursorX, CursorY: c.input.CursorY, Buttons: map[platform.MouseButton]bool{}}
	for b, down := range c.input.Buttons {
		in.Buttons[b] = down
	}
	return in
}

func (c *Controller) Timer() *frametimer.Timer { return c.timer }

func (c *Controller) Renderer() *render.Renderer { return c.renderer }
