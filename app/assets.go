package app

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"coinview/coingl"
)

// Default face image names, resolved next to the executable.
const (
	defaultFrontImage = "coin_front.png"
	defaultBackImage  = "coin_back.png"
)

// LoadTexture decodes a PNG file into an RGBA texture. A missing or corrupt
// file is the viewer's one fatal startup condition; the error propagates
// unretried.
func LoadTexture(path string) (*coingl.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return coingl.NewTexture(img), nil
}

// resolveAsset returns an explicit path unchanged; otherwise the default name
// is resolved relative to the program's own location.
func resolveAsset(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}
