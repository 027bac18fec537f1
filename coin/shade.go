package coin

import "math"

// The shading in this package is fully procedural: stateless functions of the
// angular position on the coin and the accumulated rotation. There is no
// light source; the moving highlight on the edge is a hand-computed cosine
// term. All channels are clamped before use so the rasterizer only ever sees
// valid colors.
//
// theta is the angular position around the coin in radians; ax and ay are the
// accumulated rotations in degrees. The degree values feed the periodic terms
// unscaled (divided by small constants), which sets the speed at which bands
// and highlights sweep as the coin turns.

// Edge channel floors. Red/green clamp at 0.08, blue at 0.12, keeping the rim
// off pure black; everything caps at 1.
const (
	edgeFloorRG = 0.08
	edgeFloorB  = 0.12
)

// EdgeColor returns the front-rim color at theta for the given rotation.
//
// The color is a four-band iridescent gradient (blue, green, gold, magenta)
// selected by a two-frequency sine/cosine pattern, plus a sharply peaked
// mirror highlight that sweeps across the rim as ay changes, plus a
// low-amplitude multi-frequency noise term.
func EdgeColor(theta, ax, ay float64) (r, g, b float64) {
	band := (math.Sin(theta*2+ay/6)+math.Cos(theta*3+ax/9))*0.5 + 0.5
	mirror := math.Pow(math.Abs(math.Cos(theta-ay*math.Pi/180)), 18)
	noise := 0.07*math.Sin(theta*10+ax/8) + 0.07*math.Cos(theta*5+ay/11)

	switch {
	case band < 0.25:
		r, g, b = 0.2, 0.5, 0.9 // blue
	case band < 0.5:
		r, g, b = 0.2, 0.8, 0.4 // green
	case band < 0.75:
		r, g, b = 0.9, 0.8, 0.2 // gold
	default:
		r, g, b = 0.8, 0.2, 0.7 // magenta
	}

	r = clamp(r+0.7*mirror+noise, edgeFloorRG, 1.0)
	g = clamp(g+0.7*mirror+noise, edgeFloorRG, 1.0)
	b = clamp(b+0.7*mirror+noise, edgeFloorB, 1.0)
	return r, g, b
}

// EdgeBackColor darkens a front-rim color for the rear rim vertex, suggesting
// depth along the coin's thickness.
func EdgeBackColor(r, g, b float64) (br, bg, bb float64) {
	return r*0.25 + 0.1, g*0.25 + 0.1, b*0.25 + 0.1
}

// FaceShade returns the gray level multiplied into the face texture at theta:
// a rotation-reactive rim brightness minus a single-wave shadow term.
func FaceShade(theta, ax, ay float64) float64 {
	rim := 0.28 + 0.42*((math.Sin(theta*2+ay/8)+math.Cos(theta*3+ax/12))*0.5+0.5)
	shadow := 0.07 + 0.10*math.Abs(math.Sin(theta+ax/20))
	return rim - shadow
}

// FaceRimRadius perturbs the face rim radius by up to 4% as a function of
// theta, faking a bevel.
func FaceRimRadius(theta, radius float64) float64 {
	return radius * (1 + 0.04*math.Abs(math.Cos(theta)))
}

// HoloColor returns the holographic overlay rim color and alpha at theta: a
// sine-driven blue/gold interpolation whose alpha pulses with rotation.
func HoloColor(theta, ax, ay float64) (r, g, b, a float64) {
	holo := 0.5 + 0.5*math.Sin(ax/25+theta*3+ay/25)
	r = 0.85 + 0.15*holo
	g = 0.85 + 0.15*(1-holo)
	b = 1.0
	a = 0.08 + 0.07*math.Abs(math.Cos(theta+ay/40))
	return r, g, b, a
}

// HoloCenterAlpha is the faint white specular highlight at the overlay center.
const HoloCenterAlpha = 0.10

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
