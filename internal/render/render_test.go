/*
 * Copyright (C) 2023 by Jason Figge
 */

package render_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"raycaster/internal/colorutil"
	"raycaster/internal/raycaster"
	"raycaster/internal/render"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {600, 1024}, {800, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, tt := range tests {
		if got := render.NextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNextPowerOfTwo_Saturates(t *testing.T) {
	largest := 1 << (bits.UintSize - 2)
	for _, n := range []int{largest, largest + 1, math.MaxInt} {
		if got := render.NextPowerOfTwo(n); got != largest {
			t.Errorf("NextPowerOfTwo(%d): got %d, want %d", n, got, largest)
		}
	}
}

func TestFrame_ClampsToMaxSize(t *testing.T) {
	f := render.NewFrame(render.MaxSize+1, 1)
	if f.Width != render.MaxSize || f.TexWidth != render.MaxSize || f.Height != 1 {
		t.Fatalf("got %dx%d texture %dx%d", f.Width, f.Height, f.TexWidth, f.TexHeight)
	}
	if len(f.Pix) != render.MaxSize*4 {
		t.Errorf("Pix: got %d bytes", len(f.Pix))
	}

	r := render.New(raycaster.Nop{}, 4, 4)
	r.SetViewportSize(math.MaxInt, 2)
	if got := r.Frame(); got.Width != render.MaxSize || got.Height != 2 {
		t.Errorf("renderer frame: got %dx%d", got.Width, got.Height)
	}
}

func TestFrame_SizingAndUV(t *testing.T) {
	f := render.NewFrame(800, 600)
	if f.TexWidth != 1024 || f.TexHeight != 1024 {
		t.Fatalf("texture: got %dx%d", f.TexWidth, f.TexHeight)
	}
	if len(f.Pix) != 1024*1024*4 {
		t.Fatalf("Pix: got %d bytes", len(f.Pix))
	}
	uv := f.UV()
	if !uv.ApproxEqual(mgl32.Vec2{800.0 / 1024, 600.0 / 1024}) {
		t.Errorf("UV: got %v", uv)
	}

	q := f.Quad()
	if q[2].Pos != (mgl32.Vec2{800, 600}) || q[2].UV != uv {
		t.Errorf("bottom-right corner: got %+v", q[2])
	}
	if q[0].UV != (mgl32.Vec2{0, 0}) || q[1].UV.Y() != 0 || q[3].UV.X() != 0 {
		t.Errorf("quad UVs: got %+v", q)
	}
}

func TestFrame_ResizeKeepsBufferWithinTexture(t *testing.T) {
	f := render.NewFrame(800, 600)
	pix := f.Pix
	f.Resize(700, 520)
	if &f.Pix[0] != &pix[0] {
		t.Error("buffer reallocated although the texture size did not change")
	}
	f.Resize(1100, 520)
	if f.TexWidth != 2048 || len(f.Pix) != 2048*1024*4 {
		t.Errorf("grow: got %dx%d, %d bytes", f.TexWidth, f.TexHeight, len(f.Pix))
	}
}

func TestFrame_Projection(t *testing.T) {
	f := render.NewFrame(800, 600)
	p := f.Projection()
	topLeft := p.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	bottomRight := p.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
	if !(mgl32.Vec2{topLeft.X(), topLeft.Y()}).ApproxEqual(mgl32.Vec2{-1, 1}) {
		t.Errorf("top-left maps to %v", topLeft)
	}
	if !(mgl32.Vec2{bottomRight.X(), bottomRight.Y()}).ApproxEqual(mgl32.Vec2{1, -1}) {
		t.Errorf("bottom-right maps to %v", bottomRight)
	}
}

func TestFrame_SetColumn(t *testing.T) {
	f := render.NewFrame(3, 2)
	f.SetColumn(1, []colorutil.Color{0x11223344, 0x55667788, 0x99AABBCC})
	if got := f.At(1, 0); got != 0x11223344 {
		t.Errorf("(1,0): got %#08x", uint32(got))
	}
	if got := f.At(1, 1); got != 0x55667788 {
		t.Errorf("(1,1): got %#08x", uint32(got))
	}
	stride := f.Stride()
	if f.Pix[stride+4] != 0x55 || f.Pix[stride+7] != 0x88 {
		t.Errorf("byte order: got % x", f.Pix[stride+4:stride+8])
	}
	if f.At(0, 0) != 0 || f.At(2, 1) != 0 {
		t.Error("neighbouring columns were touched")
	}

	f.SetColumn(-1, []colorutil.Color{colorutil.White})
	f.SetColumn(3, []colorutil.Color{colorutil.White})
	for i, b := range f.Pix {
		if i%stride >= 4 && i%stride < 8 {
			continue
		}
		if b != 0 {
			t.Fatalf("out of range column wrote byte %d", i)
		}
	}
}

func TestFrame_ClearAndImage(t *testing.T) {
	f := render.NewFrame(5, 3)
	f.Clear(colorutil.RGB(1, 2, 3))
	img := f.Image()
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 3 {
		t.Fatalf("image bounds: %v", img.Bounds())
	}
	c := img.RGBAAt(4, 2)
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 0xFF {
		t.Errorf("RGBAAt(4,2): got %v", c)
	}
	// Texture padding beyond the visible region stays untouched.
	if f.Pix[5*4] != 0 {
		t.Error("Clear wrote past the visible width")
	}
}

type recorder struct {
	sizes   [][2]int
	starts  int
	columns []int
}

func (r *recorder) SetViewportSize(w, h int) { r.sizes = append(r.sizes, [2]int{w, h}) }
func (r *recorder) StartFrame()              { r.starts++ }
func (r *recorder) FillStrip(strip []colorutil.Color, x int) {
	r.columns = append(r.columns, x)
	for i, c := range strip {
		if c != colorutil.Black {
			panic("strip not reset to black")
		}
		strip[i] = colorutil.RGB(x, i, 0)
	}
}

func TestRenderer_StreamsColumns(t *testing.T) {
	rec := &recorder{}
	r := render.New(rec, 4, 3)
	if len(rec.sizes) != 1 || rec.sizes[0] != [2]int{4, 3} {
		t.Fatalf("initial viewport: got %v", rec.sizes)
	}

	r.StartFrame()
	r.RenderFrame()
	if rec.starts != 1 {
		t.Errorf("StartFrame calls: %d", rec.starts)
	}
	if len(rec.columns) != 4 || rec.columns[0] != 0 || rec.columns[3] != 3 {
		t.Errorf("columns: got %v", rec.columns)
	}
	if got := r.Frame().At(3, 2); got != colorutil.RGB(3, 2, 0) {
		t.Errorf("(3,2): got %#08x", uint32(got))
	}

	// A second frame starts from black strips again.
	r.RenderFrame()
}

func TestRenderer_Resize(t *testing.T) {
	rec := &recorder{}
	r := render.New(rec, 4, 3)

	r.SetViewportSize(0, 3)
	r.SetViewportSize(4, 3)
	if len(rec.sizes) != 1 {
		t.Fatalf("empty or unchanged sizes should be ignored: %v", rec.sizes)
	}

	r.SetViewportSize(6, 5)
	if len(rec.sizes) != 2 || rec.sizes[1] != [2]int{6, 5} {
		t.Fatalf("resize not forwarded: %v", rec.sizes)
	}
	rec.columns = nil
	r.RenderFrame()
	if len(rec.columns) != 6 {
		t.Errorf("columns after resize: %d", len(rec.columns))
	}
	if got := r.Frame().At(5, 4); got != colorutil.RGB(5, 4, 0) {
		t.Errorf("(5,4): got %#08x", uint32(got))
	}
}

func TestRenderer_NopIsBlack(t *testing.T) {
	r := render.New(raycaster.Nop{}, 2, 2)
	r.StartFrame()
	r.RenderFrame()
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := r.Frame().At(x, y); got != colorutil.Black {
				t.Errorf("(%d,%d): got %#08x", x, y, uint32(got))
			}
		}
	}
}

func TestOverlay(t *testing.T) {
	o := render.NewOverlay()
	r := render.New(raycaster.Nop{}, 120, 40, render.WithOverlay(o))
	o.SetText("60 FPS")

	r.RenderFrame()
	if r.Frame().At(2, 2) != colorutil.Black {
		t.Error("disabled overlay drew")
	}

	if !o.Toggle() || !o.Enabled() {
		t.Fatal("Toggle should enable")
	}
	r.RenderFrame()

	b := o.Bounds(r.Frame())
	if b.Empty() || b.Max.X > 120 || b.Max.Y > 40 {
		t.Fatalf("bounds: %v", b)
	}
	lit := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r.Frame().At(x, y).Red() > 0x80 {
				lit = true
			}
		}
	}
	if !lit {
		t.Error("no text pixels drawn")
	}
	if got := r.Frame().At(119, 39); got != colorutil.Black {
		t.Errorf("overlay spilled to (119,39): %#08x", uint32(got))
	}
}
