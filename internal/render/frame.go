/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import (
	"image"
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"

	"raycaster/internal/colorutil"
)

const bytesPerPixel = 4

// MaxSize is the largest width or height a frame holds. Larger sizes are
// clamped; 16384 is the common GL texture size limit.
const MaxSize = 16384

const maxPowerOfTwo = 1 << (bits.UintSize - 2)

// Vertex is one corner of the screen quad, in pixels with the origin at the
// top left, and its texture coordinate.
type Vertex struct {
	Pos mgl32.Vec2
	UV  mgl32.Vec2
}

// Frame is the pixel buffer streamed to the screen texture. The texture is
// sized to the next power of two in each direction; only the top-left
// Width x Height region is visible.
type Frame struct {
	Width     int
	Height    int
	TexWidth  int
	TexHeight int

	// Pix holds TexWidth*TexHeight pixels as R, G, B, A bytes, row-major,
	// row 0 at the top of the screen.
	Pix []byte
}

func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// NextPowerOfTwo returns the smallest power of two >= n, and 1 for n <= 1.
// Values past the largest power of two an int holds saturate to it.
func NextPowerOfTwo(n int) int {
	if n >= maxPowerOfTwo {
		return maxPowerOfTwo
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Resize changes the visible size, clamped to [0, MaxSize]. The pixel
// buffer is reallocated only when the texture size changes.
func (f *Frame) Resize(width, height int) {
	width, height = clampSize(width), clampSize(height)
	f.Width = width
	f.Height = height
	tw, th := NextPowerOfTwo(width), NextPowerOfTwo(height)
	if tw == f.TexWidth && th == f.TexHeight && f.Pix != nil {
		return
	}
	f.TexWidth = tw
	f.TexHeight = th
	f.Pix = make([]byte, tw*th*bytesPerPixel)
}

func clampSize(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}

func (f *Frame) Stride() int { return f.TexWidth * bytesPerPixel }

// SetColumn copies strip into column x, top to bottom.
func (f *Frame) SetColumn(x int, strip []colorutil.Color) {
	if x < 0 || x >= f.Width {
		return
	}
	n := len(strip)
	if n > f.Height {
		n = f.Height
	}
	stride := f.Stride()
	off := x * bytesPerPixel
	for y := 0; y < n; y++ {
		c := strip[y]
		p := f.Pix[off : off+bytesPerPixel : off+bytesPerPixel]
		p[0] = c.Red()
		p[1] = c.Green()
		p[2] = c.Blue()
		p[3] = c.Alpha()
		off += stride
	}
}

// At returns the packed color at (x, y) of the visible region.
func (f *Frame) At(x, y int) colorutil.Color {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	i := y*f.Stride() + x*bytesPerPixel
	p := f.Pix[i : i+bytesPerPixel]
	return colorutil.RGBA(int(p[0]), int(p[1]), int(p[2]), int(p[3]))
}

// Clear fills the visible region with c.
func (f *Frame) Clear(c colorutil.Color) {
	r, g, b, a := c.Red(), c.Green(), c.Blue(), c.Alpha()
	stride := f.Stride()
	for y := 0; y < f.Height; y++ {
		row := f.Pix[y*stride : y*stride+f.Width*bytesPerPixel]
		for i := 0; i < len(row); i += bytesPerPixel {
			row[i] = r
			row[i+1] = g
			row[i+2] = b
			row[i+3] = a
		}
	}
}

// UV returns the texture coordinates of the bottom-right visible pixel
// corner, which clip the quad to the visible region.
func (f *Frame) UV() mgl32.Vec2 {
	return mgl32.Vec2{
		float32(f.Width) / float32(f.TexWidth),
		float32(f.Height) / float32(f.TexHeight),
	}
}

// Quad returns the screen quad, clockwise from the top left.
func (f *Frame) Quad() [4]Vertex {
	w, h := float32(f.Width), float32(f.Height)
	uv := f.UV()
	return [4]Vertex{
		{Pos: mgl32.Vec2{0, 0}, UV: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec2{w, 0}, UV: mgl32.Vec2{uv.X(), 0}},
		{Pos: mgl32.Vec2{w, h}, UV: uv},
		{Pos: mgl32.Vec2{0, h}, UV: mgl32.Vec2{0, uv.Y()}},
	}
}

// Projection maps the quad's pixel space to clip space with y pointing down.
func (f *Frame) Projection() mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(f.Width), float32(f.Height), 0)
}

// Image exposes the visible region as an image sharing Pix.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Stride(),
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
