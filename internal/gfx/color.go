// Package gfx implements the codec's color model: Color, PixelFormat and
// Palette, shared by the canvas, tgx and gm1 packages.
package gfx

// Color is four independent 8-bit channels. It implements image/color.Color
// so a decoded Image can be handed to the stdlib image package directly.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	// Color is not premultiplied; image/color.Color requires alpha-premultiplied values.
	r = r * a / 0xffff
	g = g * a / 0xffff
	b = b * a / 0xffff
	return r, g, b, a
}

// Equal reports whether two colors have identical channel values.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}

// Inverted complements the RGB channels and preserves alpha.
func (c Color) Inverted() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// WithAlpha returns a copy of c with the alpha channel overridden.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Transparent is fully-transparent black.
var Transparent = Color{}

// Opaque returns a fully-opaque color with the given RGB channels.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}
