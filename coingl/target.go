package coingl

// Target is a minimal pixel target for software rendering.
//
// Implementations must clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	// BlendPixel composites c over the existing pixel using c's alpha.
	BlendPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	// RenderTextured interpolates vertex colors and UVs and modulates with the
	// mesh texture when one is set. This is the normal viewing mode.
	RenderTextured RenderMode = iota
	RenderWireframe
	// RenderSolidFlat fills triangles with the mesh base color shaded by the
	// scene light.
	RenderSolidFlat
)
