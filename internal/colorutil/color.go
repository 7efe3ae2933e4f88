/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package colorutil packs and unpacks 32-bit RGBA colors laid out as
// 0xRRGGBBAA.
package colorutil

const (
	RedOffset   = 24
	GreenOffset = 16
	BlueOffset  = 8
	AlphaOffset = 0

	ByteMask  = 0xFF
	RedMask   = Color(ByteMask << RedOffset)
	GreenMask = Color(ByteMask << GreenOffset)
	BlueMask  = Color(ByteMask << BlueOffset)
	AlphaMask = Color(ByteMask << AlphaOffset)
)

const (
	Black = Color(0x000000FF)
	White = Color(0xFFFFFFFF)
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

func RGB(red, green, blue int) Color {
	return RGBA(red, green, blue, ByteMask)
}

func RGBA(red, green, blue, alpha int) Color {
	return Color(ByteMask&red)<<RedOffset |
		Color(ByteMask&green)<<GreenOffset |
		Color(ByteMask&blue)<<BlueOffset |
		Color(ByteMask&alpha)<<AlphaOffset
}

func Gray(brightness int) Color {
	return GrayA(brightness, ByteMask)
}

func GrayA(brightness, alpha int) Color {
	return RGBA(brightness, brightness, brightness, alpha)
}

func (c Color) Red() uint8   { return uint8((c & RedMask) >> RedOffset) }
func (c Color) Green() uint8 { return uint8((c & GreenMask) >> GreenOffset) }
func (c Color) Blue() uint8  { return uint8((c & BlueMask) >> BlueOffset) }
func (c Color) Alpha() uint8 { return uint8((c & AlphaMask) >> AlphaOffset) }

func (c Color) WithRed(red int) Color {
	return c&^RedMask | Color(ByteMask&red)<<RedOffset
}

func (c Color) WithGreen(green int) Color {
	return c&^GreenMask | Color(ByteMask&green)<<GreenOffset
}

func (c Color) WithBlue(blue int) Color {
	return c&^BlueMask | Color(ByteMask&blue)<<BlueOffset
}

func (c Color) WithAlpha(alpha int) Color {
	return c&^AlphaMask | Color(ByteMask&alpha)<<AlphaOffset
}

// RGBA implements image/color.Color. The packed channels are taken as
// straight alpha and premultiplied on the way out.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.Alpha())
	a |= a << 8
	r = uint32(c.Red())
	r |= r << 8
	r = r * a / 0xFFFF
	g = uint32(c.Green())
	g |= g << 8
	g = g * a / 0xFFFF
	b = uint32(c.Blue())
	b |= b << 8
	b = b * a / 0xFFFF
	return
}
