/*
 * Copyright (C) 2023 by Jason Figge
 */

package raycaster

import (
	"raycaster/internal/colorutil"
)

// Gradient exercises the renderer without casting any rays. The top half
// of the screen fades from black to white left to right, the bottom half
// moves through red, green and blue.
type Gradient struct {
	width  int
	height int
}

func (g *Gradient) SetViewportSize(width, height int) {
	g.width = width
	g.height = height
}

func (g *Gradient) StartFrame() {}

func (g *Gradient) FillStrip(strip []colorutil.Color, x int) {
	if g.width <= 0 {
		return
	}
	w := g.width
	mid := clampLen(g.height/2, strip)
	end := clampLen(g.height, strip)

	fill(strip[:mid], colorutil.Gray(x*255/w))

	third := w / 3
	sixth := w / 6
	red := 0xFF - abs((x-sixth)*255/w)
	green := 0xFF - abs((x-third-sixth)*255/w)
	blue := 0xFF - abs(x-third-third-sixth)*255/w
	fill(strip[mid:end], colorutil.RGB(red, green, blue))
}

func clampLen(n int, s []colorutil.Color) int {
	if n > len(s) {
		return len(s)
	}
	return n
}

func fill(s []colorutil.Color, c colorutil.Color) {
	for i := range s {
		s[i] = c
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
