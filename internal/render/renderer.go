/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package render streams a raycaster's columns into a texture-sized pixel
// frame that the platform backends upload and draw as a screen quad.
package render

import (
	"log/slog"

	"raycaster/internal/colorutil"
	"raycaster/internal/logging"
	"raycaster/internal/raycaster"
)

// ClearColor is what the backends clear the window to before drawing the
// frame quad over it.
const ClearColor = colorutil.Color(0x808080FF)

type Option func(*Renderer)

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.log = logging.OrNop(l)
	}
}

// WithOverlay draws o on top of every rendered frame.
func WithOverlay(o *Overlay) Option {
	return func(r *Renderer) {
		r.overlay = o
	}
}

// Renderer pulls one strip per screen column from a raycaster every frame.
type Renderer struct {
	caster  raycaster.Raycaster
	frame   *Frame
	strip   []colorutil.Color
	overlay *Overlay
	log     *slog.Logger
}

func New(caster raycaster.Raycaster, width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		caster: caster,
		frame:  &Frame{},
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resize(width, height)
	return r
}

// SetViewportSize resizes the frame and tells the raycaster. Empty sizes,
// as reported for a minimised window, are ignored.
func (r *Renderer) SetViewportSize(width, height int) {
	if width <= 0 || height <= 0 {
		r.log.Debug("Ignoring empty viewport", "width", width, "height", height)
		return
	}
	width, height = clampSize(width), clampSize(height)
	if width == r.frame.Width && height == r.frame.Height {
		return
	}
	r.resize(width, height)
}

func (r *Renderer) resize(width, height int) {
	r.frame.Resize(width, height)
	if cap(r.strip) >= r.frame.Height {
		r.strip = r.strip[:r.frame.Height]
	} else {
		r.strip = make([]colorutil.Color, r.frame.Height)
	}
	r.log.Debug("Viewport resized",
		"width", r.frame.Width, "height", r.frame.Height,
		"texWidth", r.frame.TexWidth, "texHeight", r.frame.TexHeight)
	r.caster.SetViewportSize(r.frame.Width, r.frame.Height)
}

func (r *Renderer) StartFrame() {
	r.caster.StartFrame()
}

// RenderFrame fills every column of the frame from the raycaster, then
// draws the overlay.
func (r *Renderer) RenderFrame() {
	for x := 0; x < r.frame.Width; x++ {
		for i := range r.strip {
			r.strip[i] = colorutil.Black
		}
		r.caster.FillStrip(r.strip, x)
		r.frame.SetColumn(x, r.strip)
	}
	if r.overlay != nil {
		r.overlay.Draw(r.frame)
	}
}

func (r *Renderer) Frame() *Frame { return r.frame }

func (r *Renderer) Overlay() *Overlay { return r.overlay }

func (r *Renderer) Raycaster() raycaster.Raycaster { return r.caster }
