package coingl

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	got := Mat4Mul(a, b)
	if got != b {
		t.Fatalf("identity*a mismatch")
	}
	got2 := Mat4Mul(b, a)
	if got2 != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestLookAtTranslatesEyeToOrigin(t *testing.T) {
	eye := V3(0, 0, 350)
	m := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))
	p := Mat4MulV4(m, Vec4{X: eye.X, Y: eye.Y, Z: eye.Z, W: 1})
	if !closeF(p.X, 0) || !closeF(p.Y, 0) || !closeF(p.Z, 0) {
		t.Fatalf("view(eye) = (%v, %v, %v), want origin", p.X, p.Y, p.Z)
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	m := Mat4RotateY(math.Pi / 2)
	p := Mat4MulV4(m, Vec4{X: 1, W: 1})
	// GL convention: +90° about Y carries +X to -Z.
	if !closeF(p.X, 0) || !closeF(p.Z, -1) {
		t.Fatalf("rotateY(90°)·x = (%v, %v, %v), want (0, 0, -1)", p.X, p.Y, p.Z)
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	m := Mat4RotateX(math.Pi / 2)
	p := Mat4MulV4(m, Vec4{Y: 1, W: 1})
	if !closeF(p.Y, 0) || !closeF(p.Z, 1) {
		t.Fatalf("rotateX(90°)·y = (%v, %v, %v), want (0, 0, 1)", p.X, p.Y, p.Z)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	m := Mat4RotateZ(math.Pi / 2)
	p := Mat4MulV4(m, Vec4{X: 1, W: 1})
	// GL convention: +90° about Z carries +X to +Y.
	if !closeF(p.X, 0) || !closeF(p.Y, 1) {
		t.Fatalf("rotateZ(90°)·x = (%v, %v, %v), want (0, 1, 0)", p.X, p.Y, p.Z)
	}
}

func TestPerspectiveCenterMapsToCenter(t *testing.T) {
	proj := Mat4Perspective(Radians(45), 1, 0.1, 1000)
	p := Mat4MulV4(proj, Vec4{X: 0, Y: 0, Z: -350, W: 1})
	if p.W <= 0 {
		t.Fatalf("w = %v, want > 0 for a point in front of the camera", p.W)
	}
	if !closeF(p.X/p.W, 0) || !closeF(p.Y/p.W, 0) {
		t.Fatalf("ndc = (%v, %v), want (0, 0)", p.X/p.W, p.Y/p.W)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := Normalize(Vec3{}); got != (Vec3{}) {
		t.Fatalf("Normalize(0) = %v, want zero vector", got)
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct{ in, want float32 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Fatalf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func closeF(got, want float32) bool {
	return math.Abs(float64(got-want)) < 1e-4
}
