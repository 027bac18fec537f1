package coingl

import (
	"image"
	"testing"
)

func solidTexture(w, h int, c Color) *Texture {
	t := &Texture{W: w, H: h, Pix: make([]byte, w*h*4)}
	for i := 0; i < w*h; i++ {
		t.Pix[i*4+0] = c.R
		t.Pix[i*4+1] = c.G
		t.Pix[i*4+2] = c.B
		t.Pix[i*4+3] = c.A
	}
	return t
}

func TestNewTextureFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Pix[0] = 0xAA
	tex := NewTexture(img)
	if tex.W != 4 || tex.H != 2 {
		t.Fatalf("NewTexture size = %dx%d, want 4x2", tex.W, tex.H)
	}
	if tex.Pix[0] != 0xAA {
		t.Fatalf("Pix[0] = %d, want 0xAA", tex.Pix[0])
	}
}

func TestSampleTexelCenters(t *testing.T) {
	// 2x1: red then green. Texel centers must sample exactly.
	tex := &Texture{W: 2, H: 1, Pix: []byte{
		0xFF, 0, 0, 0xFF,
		0, 0xFF, 0, 0xFF,
	}}
	left := tex.Sample(0.25, 0.5)
	if left.R != 0xFF || left.G != 0 {
		t.Fatalf("Sample(0.25) = %v, want pure red", left)
	}
	right := tex.Sample(0.75, 0.5)
	if right.G != 0xFF || right.R != 0 {
		t.Fatalf("Sample(0.75) = %v, want pure green", right)
	}
}

func TestSampleBilinearMidpoint(t *testing.T) {
	tex := &Texture{W: 2, H: 1, Pix: []byte{
		0, 0, 0, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF,
	}}
	mid := tex.Sample(0.5, 0.5)
	if mid.R < 120 || mid.R > 135 {
		t.Fatalf("Sample(0.5).R = %d, want ~128 (bilinear blend)", mid.R)
	}
}

func TestSampleClampsToEdge(t *testing.T) {
	tex := solidTexture(2, 2, RGB(7, 8, 9))
	for _, uv := range [][2]float32{{-1, 0.5}, {2, 0.5}, {0.5, -1}, {0.5, 2}} {
		got := tex.Sample(uv[0], uv[1])
		if got.R != 7 || got.G != 8 || got.B != 9 {
			t.Fatalf("Sample(%v) = %v, want clamped solid color", uv, got)
		}
	}
}

func TestSampleNilTexture(t *testing.T) {
	var tex *Texture
	got := tex.Sample(0.5, 0.5)
	if got.R != 0xFF || got.G != 0xFF || got.B != 0xFF {
		t.Fatalf("nil texture sample = %v, want white", got)
	}
}
