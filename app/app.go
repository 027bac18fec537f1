// Package app drives the coin viewer: it owns the Coin, the scene and the
// renderer, and advances everything once per host tick.
package app

import (
	"fmt"
	"math"
	"time"

	"coinview/coin"
	"coinview/coingl"
	"coinview/hal"
)

// Config selects the face images. Empty paths fall back to the default names
// next to the executable.
type Config struct {
	FrontImage string
	BackImage  string
}

// Camera setup matching the fixed 600×600 viewing volume: 45° vertical fov,
// near 0.1, far 1000, eye pulled back 350 units on the view axis.
const (
	cameraDistance = 350
	cameraFOVDeg   = 45
	cameraNear     = 0.1
	cameraFar      = 1000
)

type meshIDs struct {
	edge      int
	faceFront int
	faceBack  int
	holoFront int
	holoBack  int
}

// App is the per-process viewer state, touched only from the tick callback.
type App struct {
	log hal.Logger
	fb  hal.Framebuffer
	in  hal.Input
	aud hal.Audio
	clk hal.Time

	// upMs is the last tick seen on the clock stream, i.e. uptime in
	// milliseconds. Reported in the quit log line.
	upMs uint64

	coin   *coin.Coin
	r      *coingl.Renderer
	s      *coingl.Scene
	target coingl.RGBATarget
	ids    meshIDs

	hud  hudWriter
	mode coingl.RenderMode
	quit bool
}

// New loads the face textures and returns the per-tick step function. Texture
// load failure is startup-fatal and propagates.
func New(h hal.HAL, cfg Config) (func() error, error) {
	front, err := LoadTexture(resolveAsset(cfg.FrontImage, defaultFrontImage))
	if err != nil {
		return nil, fmt.Errorf("front face: %w", err)
	}
	back, err := LoadTexture(resolveAsset(cfg.BackImage, defaultBackImage))
	if err != nil {
		return nil, fmt.Errorf("back face: %w", err)
	}
	a := newApp(h, front, back)
	return a.step, nil
}

// newApp wires the viewer against already-loaded textures. Split from New so
// tests can inject in-memory textures.
func newApp(h hal.HAL, front, back *coingl.Texture) *App {
	fb := h.Display().Framebuffer()
	w, hgt := fb.Width(), fb.Height()

	a := &App{
		log:  h.Logger(),
		fb:   fb,
		in:   h.Input(),
		aud:  h.Audio(),
		clk:  h.Time(),
		coin: coin.New(front, back),
		r:    coingl.NewRenderer(w, hgt, true),
		s:    coingl.CreateScene(5),
		target: coingl.RGBATarget{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      w,
			H:      hgt,
		},
	}

	a.r.ClearColor = coingl.RGB(26, 26, 38)
	a.r.Mode = coingl.RenderTextured

	a.s.Camera = coingl.Camera{
		Position: coingl.V3(0, 0, cameraDistance),
		Target:   coingl.V3(0, 0, 0),
		Up:       coingl.V3(0, 1, 0),
		FOVYRad:  coingl.Radians(cameraFOVDeg),
		Near:     cameraNear,
		Far:      cameraFar,
	}
	a.s.Light = coingl.Light{
		Ambient:   0.35,
		Dir:       coingl.Normalize(coingl.V3(0, 0, -1)),
		DirAmount: 0.65,
	}

	edge, faceF, faceB, holoF, holoB := a.coin.Meshes()
	edge.BaseColor = coingl.RGB(0xD9, 0xD9, 0xF2)
	faceF.Texture = a.coin.FrontTexture()
	faceB.Texture = a.coin.BackTexture()
	a.ids = meshIDs{
		edge:      a.s.AddMesh(edge),
		faceFront: a.s.AddMesh(faceF),
		faceBack:  a.s.AddMesh(faceB),
		holoFront: a.s.AddMesh(holoF),
		holoBack:  a.s.AddMesh(holoB),
	}

	a.hud.init(fb)
	a.log.WriteLineString(fmt.Sprintf("coinview: %dx%d window, front %dx%d, back %dx%d",
		w, hgt, front.W, front.H, back.W, back.H))
	return a
}

// step runs one frame: drain input, advance the flip animation, reposition
// the light, refresh vertex colors, render, draw the HUD, present.
func (a *App) step() error {
	a.drainTicks()
	a.drainInput()
	if a.quit {
		up := time.Duration(a.upMs) * time.Millisecond
		a.log.WriteLineString("coinview: quit after " + up.String())
		return hal.ErrShutdown
	}

	if a.coin.Update() {
		a.aud.Chime()
	}

	// The light follows the rotation so the flat-shaded debug mode shows a
	// moving shine. The textured mode ignores it; its shading is per-vertex.
	lx := math.Sin(a.coin.AngleY/60) * 300
	ly := math.Cos(a.coin.AngleX/60) * 300
	a.s.Light.Dir = coingl.Normalize(coingl.V3(float32(-lx), float32(-ly), -300))

	a.coin.Refresh()
	m := a.coin.Transform()
	for _, id := range []int{a.ids.edge, a.ids.faceFront, a.ids.faceBack, a.ids.holoFront, a.ids.holoBack} {
		a.s.UpdateMeshTransform(id, m)
	}
	a.s.SetMeshTexture(a.ids.faceFront, a.coin.FrontTexture())
	a.s.SetMeshTexture(a.ids.faceBack, a.coin.BackTexture())

	a.r.Render(&a.target, a.s)
	a.drawHUD()
	return a.fb.Present()
}

// drainTicks empties the clock stream, keeping only the newest tick. The host
// emits one tick per elapsed millisecond.
func (a *App) drainTicks() {
	ch := a.clk.Ticks()
	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return
			}
			a.upMs = n
		default:
			return
		}
	}
}

func (a *App) drainInput() {
	ptr := a.in.Pointer().Events()
ptrLoop:
	for {
		select {
		case g, ok := <-ptr:
			if !ok {
				break ptrLoop
			}
			a.dispatch(g)
		default:
			break ptrLoop
		}
	}

	kbd := a.in.Keyboard().Events()
kbdLoop:
	for {
		select {
		case ev, ok := <-kbd:
			if !ok {
				break kbdLoop
			}
			a.handleKey(ev)
		default:
			break kbdLoop
		}
	}
}

func (a *App) dispatch(g hal.Gesture) {
	if g.Kind == hal.GestureQuit {
		a.quit = true
		return
	}
	a.coin.HandleGesture(g)
}

func (a *App) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	if ev.Code == hal.KeyEscape {
		a.dispatch(hal.Gesture{Kind: hal.GestureQuit})
		return
	}
	switch ev.Rune {
	case 'q':
		a.dispatch(hal.Gesture{Kind: hal.GestureQuit})
	case 'f':
		a.coin.QueueFlip()
	case 'w':
		a.cycleMode()
	}
}

func (a *App) cycleMode() {
	switch a.mode {
	case coingl.RenderTextured:
		a.mode = coingl.RenderWireframe
	case coingl.RenderWireframe:
		a.mode = coingl.RenderSolidFlat
	default:
		a.mode = coingl.RenderTextured
	}
	a.r.SetRenderMode(a.mode)
	a.log.WriteLineString("coinview: render mode " + modeName(a.mode))
}

func modeName(m coingl.RenderMode) string {
	switch m {
	case coingl.RenderWireframe:
		return "wireframe"
	case coingl.RenderSolidFlat:
		return "flat"
	default:
		return "textured"
	}
}
