/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package sdlwin runs the render loop in an SDL2 window, streaming each
// frame through an SDL texture.
package sdlwin

import (
	"log/slog"
	"runtime"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"raycaster/internal/logging"
	"raycaster/internal/platform"
	"raycaster/internal/render"
)

func init() {
	runtime.LockOSThread()
}

const Name = "sdl"

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
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "SDL initialization failed")
	}
	defer sdl.Quit()
	v := sdl.Version{}
	sdl.GetVersion(&v)
	b.log.Info("SDL initialised", "version", fmtVersion(v))

	flags := uint32(sdl.WINDOW_HIDDEN)
	if cfg.Resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	b.log.Debug("Creating window", "width", cfg.Width, "height", cfg.Height, "title", cfg.Title)
	win, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		return errors.Wrap(err, "window creation failed")
	}
	defer win.Destroy()

	rflags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rflags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	renderer, err := sdl.CreateRenderer(win, -1, rflags)
	if err != nil {
		return errors.Wrap(err, "renderer creation failed")
	}
	defer renderer.Destroy()

	st := &streamer{renderer: renderer, log: b.log}
	defer st.release()

	w := &window{win: win}
	if err := loop.Init(w); err != nil {
		return errors.Wrap(err, "loop init failed")
	}

	win.Show()
	for !w.ShouldClose() {
		f := loop.BeginFrame()
		if err := st.present(f); err != nil {
			return err
		}
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			b.dispatch(event, w, loop)
		}
		loop.EndFrame()
	}
	return nil
}

func (b *Backend) dispatch(event sdl.Event, w *window, loop platform.Loop) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		w.SetShouldClose(true)
		loop.HandleEvent(platform.CloseEvent{})
	case *sdl.KeyboardEvent:
		loop.HandleEvent(keyEvent(e))
	case *sdl.MouseButtonEvent:
		loop.HandleEvent(platform.MouseButtonEvent{
			Button: mapButton(e.Button),
			Action: mapState(e.State, 0),
		})
	case *sdl.MouseMotionEvent:
		loop.HandleEvent(platform.CursorEvent{X: float64(e.X), Y: float64(e.Y)})
	case *sdl.WindowEvent:
		// Ignore other windows
		if e.WindowID != w.id() {
			return
		}
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			loop.HandleEvent(platform.ResizeEvent{Width: int(e.Data1), Height: int(e.Data2)})
		case sdl.WINDOWEVENT_CLOSE:
			w.SetShouldClose(true)
			loop.HandleEvent(platform.CloseEvent{})
		}
	}
}

type window struct {
	win         *sdl.Window
	shouldClose bool
}

func (w *window) SetTitle(title string) { w.win.SetTitle(title) }
func (w *window) SetShouldClose(v bool) { w.shouldClose = v }
func (w *window) ShouldClose() bool     { return w.shouldClose }

func (w *window) Size() (int, int) {
	width, height := w.win.GetSize()
	return int(width), int(height)
}

func (w *window) id() uint32 {
	id, err := w.win.GetID()
	if err != nil {
		return 0
	}
	return id
}

// streamer owns the streaming texture the frame is copied into.
type streamer struct {
	renderer  *sdl.Renderer
	texture   *sdl.Texture
	texWidth  int
	texHeight int
	log       *slog.Logger
}

func (s *streamer) release() {
	if s.texture != nil {
		s.errorTrap(s.texture.Destroy())
		s.texture = nil
	}
}

func (s *streamer) present(f *render.Frame) error {
	bg := render.ClearColor
	s.errorTrap(s.renderer.SetDrawColor(bg.Red(), bg.Green(), bg.Blue(), bg.Alpha()))
	s.errorTrap(s.renderer.Clear())
	if f != nil && f.Width > 0 && f.Height > 0 {
		if err := s.upload(f); err != nil {
			return err
		}
		src := &sdl.Rect{X: 0, Y: 0, W: int32(f.Width), H: int32(f.Height)}
		s.errorTrap(s.renderer.Copy(s.texture, src, nil))
	}
	s.renderer.Present()
	return nil
}

func (s *streamer) upload(f *render.Frame) error {
	if s.texture == nil || f.TexWidth != s.texWidth || f.TexHeight != s.texHeight {
		s.release()
		tex, err := s.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32), sdl.TEXTUREACCESS_STREAMING,
			int32(f.TexWidth), int32(f.TexHeight))
		if err != nil {
			return errors.Wrapf(err, "texture creation failed (%dx%d)", f.TexWidth, f.TexHeight)
		}
		s.texture, s.texWidth, s.texHeight = tex, f.TexWidth, f.TexHeight
	}

	pix, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return errors.Wrap(err, "texture lock failed")
	}
	defer s.texture.Unlock()
	stride := f.Stride()
	row := f.Width * 4
	for y := 0; y < f.Height; y++ {
		copy(pix[y*pitch:y*pitch+row], f.Pix[y*stride:y*stride+row])
	}
	return nil
}

// errorTrap logs failures of per-frame SDL calls that are not worth
// stopping the loop for.
func (s *streamer) errorTrap(err error) {
	if err != nil {
		s.log.Warn("SDL call failed", "err", err)
	}
}
