package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"coinview/coingl"
	"coinview/hal"
)

// hudWriter draws status text straight into the framebuffer after the 3D
// pass, through the tinyfont Displayer adapter.
type hudWriter struct {
	d    fbDisplayer
	font tinyfont.Fonter
}

func (hw *hudWriter) init(fb hal.Framebuffer) {
	hw.d = fbDisplayer{fb: fb}
	hw.font = &proggy.TinySZ8pt7b
}

func (hw *hudWriter) line(x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(&hw.d, hw.font, int16(x), int16(y), s, c)
}

func (a *App) drawHUD() {
	face := "front"
	if a.coin.Flipped {
		face = "back"
	}
	state := "face: " + face
	if a.coin.Flipping() {
		state += "  flipping"
	}
	if a.mode != coingl.RenderTextured {
		state += "  [" + modeName(a.mode) + "]"
	}

	a.hud.line(6, 14, state, color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF})
	a.hud.line(6, 28, "drag rotate   right-click/f flip   w mode   q/ESC quit",
		color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF})
}

// fbDisplayer adapts the RGBA framebuffer to the drivers.Displayer interface
// tinyfont renders against.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	buf := d.fb.Buffer()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off+0] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *fbDisplayer) Display() error { return nil }

func (d *fbDisplayer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
