/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package glfwgl runs the render loop in a GLFW window with an OpenGL 2.x
// compatibility context, drawing each frame as a textured quad.
package glfwgl

import (
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"raycaster/internal/logging"
	"raycaster/internal/platform"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

const Name = "gl"

type Backend struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Backend {
	return &Backend{log: logging.OrNop(log)}
}

func (b *Backend) Name() string { return Name }

func (b *Backend) Run(cfg platform.Config, loop platform.Loop) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "GLFW initialization failed")
	}
	defer glfw.Terminate()
	b.log.Info("GLFW initialised", "version", glfw.GetVersionString())

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)

	b.log.Debug("Creating window", "width", cfg.Width, "height", cfg.Height, "title", cfg.Title)
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "window creation failed")
	}
	defer win.Destroy()

	b.registerCallbacks(win, loop)

	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if mode := monitor.GetVideoMode(); mode != nil {
			win.SetPos((mode.Width-cfg.Width)/2, (mode.Height-cfg.Height)/2)
		}
	}

	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "OpenGL initialization failed")
	}
	b.log.Info("OpenGL context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	quad := newScreenQuad()
	defer quad.release()

	if err := loop.Init(&window{win: win}); err != nil {
		return errors.Wrap(err, "loop init failed")
	}

	win.Show()
	for !win.ShouldClose() {
		f := loop.BeginFrame()
		fbWidth, fbHeight := win.GetFramebufferSize()
		quad.draw(f, fbWidth, fbHeight)
		win.SwapBuffers()
		glfw.PollEvents()
		loop.EndFrame()
	}
	return nil
}

func (b *Backend) registerCallbacks(win *glfw.Window, loop platform.Loop) {
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		loop.HandleEvent(platform.KeyEvent{Key: mapKey(key), Action: mapAction(action), Mods: mapMods(mods)})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		loop.HandleEvent(platform.MouseButtonEvent{Button: mapButton(button), Action: mapAction(action), Mods: mapMods(mods)})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		loop.HandleEvent(platform.CursorEvent{X: x, Y: y})
	})
	win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		// Ignore other windows
		if w != win {
			return
		}
		loop.HandleEvent(platform.ResizeEvent{Width: width, Height: height})
	})
	win.SetCloseCallback(func(*glfw.Window) {
		loop.HandleEvent(platform.CloseEvent{})
	})
}

type window struct {
	win *glfw.Window
}

func (w *window) SetTitle(title string) { w.win.SetTitle(title) }
func (w *window) Size() (int, int)      { return w.win.GetSize() }
func (w *window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }
func (w *window) ShouldClose() bool     { return w.win.ShouldClose() }

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
