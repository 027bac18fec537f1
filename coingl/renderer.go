package coingl

// Renderer is a fixed-pipeline software rasterizer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderTextured,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target. Meshes draw in slot order.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := float32(1)
	if h != 0 {
		aspect = float32(w) / float32(h)
	}
	view := s.Camera.View()
	proj := s.Camera.Projection(aspect)

	s.eachMesh(func(m *Mesh) {
		if m == nil || !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, proj, view, m, s.Light)
	})
}

// frag carries the per-vertex attributes of one projected triangle corner.
type frag struct {
	x, y int
	z    float32
	u, v float32
	c    Color
}

func (r *Renderer) renderMesh(t Target, w, h int, proj, view Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}

	mvp := Mat4Mul(proj, Mat4Mul(view, model))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		p0 := Mat4MulV4(mvp, Vec4{X: v0.Pos.X, Y: v0.Pos.Y, Z: v0.Pos.Z, W: 1})
		p1 := Mat4MulV4(mvp, Vec4{X: v1.Pos.X, Y: v1.Pos.Y, Z: v1.Pos.Z, W: 1})
		p2 := Mat4MulV4(mvp, Vec4{X: v2.Pos.X, Y: v2.Pos.Y, Z: v2.Pos.Z, W: 1})

		// Trivial clip: drop triangles that touch the near plane.
		if p0.W <= 0 || p1.W <= 0 || p2.W <= 0 {
			continue
		}

		ndc0 := clipToNDC(p0)
		ndc1 := clipToNDC(p1)
		ndc2 := clipToNDC(p2)

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		f0 := frag{x: x0, y: y0, z: ndc0.Z, u: v0.U, v: v0.V, c: v0.Color}
		f1 := frag{x: x1, y: y1, z: ndc1.Z, u: v1.U, v: v1.V, c: v1.Color}
		f2 := frag{x: x2, y: y2, z: ndc2.Z, u: v2.U, v: v2.V, c: v2.Color}

		switch r.Mode {
		case RenderWireframe:
			c := m.BaseColor
			r.drawLine(t, x0, y0, x1, y1, c)
			r.drawLine(t, x1, y1, x2, y2, c)
			r.drawLine(t, x2, y2, x0, y0, c)
		case RenderSolidFlat:
			n := triangleNormal(v0.Pos, v1.Pos, v2.Pos)
			c := m.BaseColor.Scale(lightIntensity(light, n))
			f0.c, f1.c, f2.c = c, c, c
			r.fillTriangle(t, w, h, f0, f1, f2, nil, false, m.NoDepth)
		default:
			r.fillTriangle(t, w, h, f0, f1, f2, m.Texture, m.Blend, m.NoDepth)
		}
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) ndcPoint {
	invW := 1.0 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) float32 {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		// Two-sided: the coin is viewed from either side.
		d = -d
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32, write bool) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := z*0.5 + 0.5
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	if write {
		r.depthBuf[idx] = d
	}
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle rasterizes one triangle with interpolated UV and color.
// Both windings fill (immediate-mode GL draws back faces too; the coin is
// seen from either side mid-flip).
func (r *Renderer) fillTriangle(t Target, w, h int, f0, f1, f2 frag, tex *Texture, blend, noDepth bool) {
	minX, maxX := min3(f0.x, f1.x, f2.x), max3(f0.x, f1.x, f2.x)
	minY, maxY := min3(f0.y, f1.y, f2.y), max3(f0.y, f1.y, f2.y)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(f0.x, f0.y, f1.x, f1.y, f2.x, f2.y)
	if area == 0 {
		return
	}
	flip := 1
	if area < 0 {
		area = -area
		flip = -1
	}
	invArea := 1.0 / float32(area)

	r0, g0, b0, a0 := float32(f0.c.R), float32(f0.c.G), float32(f0.c.B), float32(f0.c.A)
	r1, g1, b1, a1 := float32(f1.c.R), float32(f1.c.G), float32(f1.c.B), float32(f1.c.A)
	r2, g2, b2, a2 := float32(f2.c.R), float32(f2.c.G), float32(f2.c.B), float32(f2.c.A)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := flip * edgeFn(f1.x, f1.y, f2.x, f2.y, x, y)
			w1 := flip * edgeFn(f2.x, f2.y, f0.x, f0.y, x, y)
			w2 := flip * edgeFn(f0.x, f0.y, f1.x, f1.y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			b0f := float32(w0) * invArea
			b1f := float32(w1) * invArea
			b2f := float32(w2) * invArea

			z := b0f*f0.z + b1f*f1.z + b2f*f2.z
			if !noDepth && !r.depthTest(w, x, y, z, !blend) {
				continue
			}

			c := Color{
				R: uint8(clampF32(b0f*r0+b1f*r1+b2f*r2, 0, 255)),
				G: uint8(clampF32(b0f*g0+b1f*g1+b2f*g2, 0, 255)),
				B: uint8(clampF32(b0f*b0+b1f*b1+b2f*b2, 0, 255)),
				A: uint8(clampF32(b0f*a0+b1f*a1+b2f*a2, 0, 255)),
			}
			if tex != nil {
				u := b0f*f0.u + b1f*f1.u + b2f*f2.u
				v := b0f*f0.v + b1f*f1.v + b2f*f2.v
				c = Modulate(c, tex.Sample(u, v))
			}
			if blend {
				t.BlendPixel(x, y, c)
			} else {
				t.SetPixel(x, y, c)
			}
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
