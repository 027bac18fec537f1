package coingl

// RGBATarget renders into a caller-owned RGBA8888 byte buffer, 4 bytes per
// pixel, row-major with an explicit stride. It implements Target.
type RGBATarget struct {
	Buf    []byte
	Stride int
	W, H   int
}

func (t *RGBATarget) Size() (int, int) { return t.W, t.H }

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return
	}
	t.Buf[off+0] = c.R
	t.Buf[off+1] = c.G
	t.Buf[off+2] = c.B
	t.Buf[off+3] = 0xFF
}

func (t *RGBATarget) BlendPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return
	}
	dst := Color{R: t.Buf[off+0], G: t.Buf[off+1], B: t.Buf[off+2], A: 0xFF}
	out := Over(c, dst)
	t.Buf[off+0] = out.R
	t.Buf[off+1] = out.G
	t.Buf[off+2] = out.B
	t.Buf[off+3] = 0xFF
}

func (t *RGBATarget) Clear(c Color) {
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*4
			if off+3 >= len(t.Buf) {
				return
			}
			t.Buf[off+0] = c.R
			t.Buf[off+1] = c.G
			t.Buf[off+2] = c.B
			t.Buf[off+3] = 0xFF
		}
	}
}

// Pixel returns the color at (x, y), or zero Color out of bounds. Test helper
// and HUD readback.
func (t *RGBATarget) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return Color{}
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Buf) {
		return Color{}
	}
	return Color{R: t.Buf[off+0], G: t.Buf[off+1], B: t.Buf[off+2], A: t.Buf[off+3]}
}
