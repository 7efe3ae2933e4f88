/*
 * Copyright (C) 2023 by Jason Figge
 */

package glfwgl

import (
	"github.com/go-gl/gl/v2.1/gl"

	"raycaster/internal/render"
)

// screenQuad owns the streaming texture and draws it over the whole
// viewport with fixed-function GL.
type screenQuad struct {
	texture   uint32
	texWidth  int
	texHeight int
}

func newScreenQuad() *screenQuad {
	q := &screenQuad{}
	gl.Enable(gl.TEXTURE_2D)
	gl.Disable(gl.DEPTH_TEST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.GenTextures(1, &q.texture)
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return q
}

func (q *screenQuad) release() {
	gl.DeleteTextures(1, &q.texture)
}

// upload copies the frame into the texture, reallocating the texture
// storage when the frame's power-of-two size changed.
func (q *screenQuad) upload(f *render.Frame) {
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	if f.TexWidth != q.texWidth || f.TexHeight != q.texHeight {
		q.texWidth, q.texHeight = f.TexWidth, f.TexHeight
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
			int32(q.texWidth), int32(q.texHeight),
			0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
	if len(f.Pix) > 0 {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
			int32(f.TexWidth), int32(f.TexHeight),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(f.Pix))
	}
}

func (q *screenQuad) draw(f *render.Frame, fbWidth, fbHeight int) {
	bg := render.ClearColor
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.ClearColor(float32(bg.Red())/0xFF, float32(bg.Green())/0xFF, float32(bg.Blue())/0xFF, float32(bg.Alpha())/0xFF)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if f == nil || f.Width == 0 || f.Height == 0 {
		return
	}

	q.upload(f)

	proj := f.Projection()
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Color4f(1, 1, 1, 1)
	gl.Begin(gl.QUADS)
	for _, v := range f.Quad() {
		gl.TexCoord2f(v.UV.X(), v.UV.Y())
		gl.Vertex2f(v.Pos.X(), v.Pos.Y())
	}
	gl.End()
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
