package app

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), B: 0x80, A: 0xFF})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestLoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.png")
	writeTestPNG(t, path)

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture() error = %v", err)
	}
	if tex.W != 8 || tex.H != 8 {
		t.Fatalf("texture size = %dx%d, want 8x8", tex.W, tex.H)
	}
	if len(tex.Pix) != 8*8*4 {
		t.Fatalf("Pix len = %d, want %d", len(tex.Pix), 8*8*4)
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	_, err := LoadTexture(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatalf("LoadTexture() on missing file = nil error, want error")
	}
}

func TestLoadTextureCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadTexture(path); err == nil {
		t.Fatalf("LoadTexture() on corrupt file = nil error, want error")
	}
}

func TestResolveAssetExplicitWins(t *testing.T) {
	if got := resolveAsset("/tmp/x.png", "default.png"); got != "/tmp/x.png" {
		t.Fatalf("resolveAsset explicit = %q, want /tmp/x.png", got)
	}
}

func TestResolveAssetDefaultIsExecutableRelative(t *testing.T) {
	got := resolveAsset("", defaultFrontImage)
	if filepath.Base(got) != defaultFrontImage {
		t.Fatalf("resolveAsset default base = %q, want %q", filepath.Base(got), defaultFrontImage)
	}
}
