package coingl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// ColorF builds a Color from float channels in [0,1]. Out-of-range values clamp.
func ColorF(r, g, b, a float32) Color {
	return Color{
		R: channel8(r),
		G: channel8(g),
		B: channel8(b),
		A: channel8(a),
	}
}

func channel8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

// Scale multiplies the RGB channels by s in [0,1], leaving alpha untouched.
func (c Color) Scale(s float32) Color {
	s = Clamp01(s)
	t := uint32(s * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// Modulate multiplies two colors componentwise, GL-texture style.
func Modulate(a, b Color) Color {
	mul := func(x, y uint8) uint8 {
		return uint8((uint32(x) * uint32(y)) / 255)
	}
	return Color{
		R: mul(a.R, b.R),
		G: mul(a.G, b.G),
		B: mul(a.B, b.B),
		A: mul(a.A, b.A),
	}
}

// Over composites src over dst using the src alpha (non-premultiplied).
func Over(src, dst Color) Color {
	a := uint32(src.A)
	ia := 255 - a
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*ia) / 255)
	}
	return Color{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: dst.A,
	}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }
