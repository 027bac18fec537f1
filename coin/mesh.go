package coin

import (
	"math"

	"coinview/coingl"
)

// The coin tessellates at 5° angular steps: 73 rim points close the circle
// (the first and last coincide), 72 segments.
const (
	stepDeg  = 5
	rimCount = 360/stepDeg + 1
)

// geometry owns the five coin meshes. Positions and UVs are computed once;
// refresh rewrites only the rotation-dependent vertex colors, so a frame
// allocates nothing.
type geometry struct {
	edge      coingl.Mesh
	faceFront coingl.Mesh
	faceBack  coingl.Mesh
	holoFront coingl.Mesh
	holoBack  coingl.Mesh
}

func (g *geometry) build() {
	g.edge = buildEdge()
	g.faceFront = buildFace(true)
	g.faceBack = buildFace(false)
	g.holoFront = buildHolo(true)
	g.holoBack = buildHolo(false)
}

func (g *geometry) refresh(ax, ay float64) {
	refreshEdge(&g.edge, ax, ay)
	refreshFace(&g.faceFront, ax, ay)
	refreshFace(&g.faceBack, ax, ay)
	refreshHolo(&g.holoFront, ax, ay)
	refreshHolo(&g.holoBack, ax, ay)
}

func rimTheta(i int) float64 {
	return float64(i*stepDeg) * math.Pi / 180
}

// buildEdge lays out the rim as a closed band of paired vertices: for each
// rim point, a front vertex at +Thickness/2 and a back vertex at -Thickness/2,
// triangulated as a strip.
func buildEdge() coingl.Mesh {
	verts := make([]coingl.Vertex, 0, rimCount*2)
	for i := 0; i < rimCount; i++ {
		theta := rimTheta(i)
		x := float32(Radius * math.Cos(theta))
		y := float32(Radius * math.Sin(theta))
		verts = append(verts,
			coingl.Vertex{Pos: coingl.V3(x, y, Thickness/2)},
			coingl.Vertex{Pos: coingl.V3(x, y, -Thickness/2)},
		)
	}

	indices := make([]uint16, 0, (rimCount-1)*6)
	for i := 0; i < rimCount-1; i++ {
		f0 := uint16(2 * i)
		b0 := f0 + 1
		f1 := f0 + 2
		b1 := f0 + 3
		indices = append(indices, f0, b0, f1)
		indices = append(indices, b0, b1, f1)
	}

	return coingl.Mesh{Vertices: verts, Indices: indices}
}

func refreshEdge(m *coingl.Mesh, ax, ay float64) {
	for i := 0; i < rimCount; i++ {
		theta := rimTheta(i)
		r, g, b := EdgeColor(theta, ax, ay)
		br, bg, bb := EdgeBackColor(r, g, b)
		m.Vertices[2*i].Color = coingl.ColorF(float32(r), float32(g), float32(b), 1)
		m.Vertices[2*i+1].Color = coingl.ColorF(float32(br), float32(bg), float32(bb), 1)
	}
}

// buildFace lays out a textured disc as a fan: a center vertex plus the
// bevel-perturbed rim, with polar UV mapping.
func buildFace(front bool) coingl.Mesh {
	z := float32(Thickness) / 2
	if !front {
		z = -z
	}

	verts := make([]coingl.Vertex, 0, rimCount+1)
	verts = append(verts, coingl.Vertex{Pos: coingl.V3(0, 0, z), U: 0.5, V: 0.5})
	for i := 0; i < rimCount; i++ {
		theta := rimTheta(i)
		outer := FaceRimRadius(theta, Radius)
		verts = append(verts, coingl.Vertex{
			Pos: coingl.V3(float32(outer*math.Cos(theta)), float32(outer*math.Sin(theta)), z),
			U:   float32(0.5 + 0.5*math.Cos(theta)),
			V:   float32(0.5 - 0.5*math.Sin(theta)),
		})
	}

	indices := make([]uint16, 0, (rimCount-1)*3)
	for i := 1; i < rimCount; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	return coingl.Mesh{Vertices: verts, Indices: indices}
}

func refreshFace(m *coingl.Mesh, ax, ay float64) {
	m.Vertices[0].Color = coingl.RGB(0xFF, 0xFF, 0xFF)
	for i := 0; i < rimCount; i++ {
		theta := rimTheta(i)
		gray := float32(FaceShade(theta, ax, ay))
		m.Vertices[i+1].Color = coingl.ColorF(gray, gray, gray, 1)
	}
}

// buildHolo lays out the translucent overlay fan at the exact coin radius.
// It blends over the already-drawn face with the depth test off.
func buildHolo(front bool) coingl.Mesh {
	z := float32(Thickness) / 2
	if !front {
		z = -z
	}

	verts := make([]coingl.Vertex, 0, rimCount+1)
	verts = append(verts, coingl.Vertex{Pos: coingl.V3(0, 0, z)})
	for i := 0; i < rimCount; i++ {
		theta := rimTheta(i)
		verts = append(verts, coingl.Vertex{
			Pos: coingl.V3(float32(Radius*math.Cos(theta)), float32(Radius*math.Sin(theta)), z),
		})
	}

	indices := make([]uint16, 0, (rimCount-1)*3)
	for i := 1; i < rimCount; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	return coingl.Mesh{Vertices: verts, Indices: indices, Blend: true, NoDepth: true}
}

func refreshHolo(m *coingl.Mesh, ax, ay float64) {
	m.Vertices[0].Color = coingl.ColorF(1, 1, 1, HoloCenterAlpha)
	for i := 0; i < rimCount; i++ {
		theta := rimTheta(i)
		r, g, b, a := HoloColor(theta, ax, ay)
		m.Vertices[i+1].Color = coingl.ColorF(float32(r), float32(g), float32(b), float32(a))
	}
}
