/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const overlayMargin = 4

// Overlay draws a single line of text, such as the frame rate, into the top
// left corner of a frame after the raycaster has filled it.
type Overlay struct {
	enabled bool
	text    string
	face    font.Face
	fg      image.Image
	bg      image.Image
}

func NewOverlay() *Overlay {
	return &Overlay{
		face: basicfont.Face7x13,
		fg:   image.NewUniform(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}),
		bg:   image.NewUniform(color.RGBA{A: 0x99}),
	}
}

func (o *Overlay) SetText(s string)   { o.text = s }
func (o *Overlay) Text() string       { return o.text }
func (o *Overlay) SetEnabled(on bool) { o.enabled = on }
func (o *Overlay) Enabled() bool      { return o.enabled }

// Toggle flips the overlay on or off and reports the new state.
func (o *Overlay) Toggle() bool {
	o.enabled = !o.enabled
	return o.enabled
}

// Bounds is the area Draw covers in f.
func (o *Overlay) Bounds(f *Frame) image.Rectangle {
	m := o.face.Metrics()
	w := font.MeasureString(o.face, o.text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	r := image.Rect(0, 0, w+2*overlayMargin, h+2*overlayMargin)
	return r.Intersect(image.Rect(0, 0, f.Width, f.Height))
}

func (o *Overlay) Draw(f *Frame) {
	if !o.enabled || o.text == "" || f.Width == 0 || f.Height == 0 {
		return
	}
	img := f.Image()
	draw.Draw(img, o.Bounds(f), o.bg, image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  o.fg,
		Face: o.face,
		Dot:  fixed.P(overlayMargin, overlayMargin+o.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(o.text)
}
