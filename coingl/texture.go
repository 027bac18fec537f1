package coingl

import (
	"image"
	"image/draw"
)

// Texture is a CPU-resident RGBA image sampled bilinearly by the rasterizer.
type Texture struct {
	W, H int
	Pix  []byte // RGBA, 4 bytes per pixel, stride W*4
}

// NewTexture converts any image into a Texture.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Texture{W: b.Dx(), H: b.Dy(), Pix: rgba.Pix}
}

// Sample returns the bilinearly filtered texel at (u, v), with both
// coordinates in [0,1] and (0,0) at the top-left. Coordinates clamp to the
// edge, matching linear filtering without wrap.
func (t *Texture) Sample(u, v float32) Color {
	if t == nil || t.W <= 0 || t.H <= 0 {
		return RGB(0xFF, 0xFF, 0xFF)
	}

	fx := u*float32(t.W) - 0.5
	fy := v*float32(t.H) - 0.5
	x0 := int(floorF(fx))
	y0 := int(floorF(fy))
	ax := fx - float32(x0)
	ay := fy - float32(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	lerp := func(a, b uint8, t float32) float32 {
		return float32(a) + (float32(b)-float32(a))*t
	}
	mix := func(p00, p10, p01, p11 uint8) uint8 {
		top := lerp(p00, p10, ax)
		bot := lerp(p01, p11, ax)
		v := top + (bot-top)*ay
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}
	return Color{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
		A: mix(c00.A, c10.A, c01.A, c11.A),
	}
}

func (t *Texture) texel(x, y int) Color {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= t.W {
		x = t.W - 1
	}
	if y >= t.H {
		y = t.H - 1
	}
	off := (y*t.W + x) * 4
	return Color{R: t.Pix[off], G: t.Pix[off+1], B: t.Pix[off+2], A: t.Pix[off+3]}
}

func floorF(v float32) float32 {
	i := float32(int(v))
	if v < 0 && v != i {
		i--
	}
	return i
}
