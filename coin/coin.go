// Package coin implements the challenge-coin model: orientation and flip
// state, gesture handling, and the procedurally shaded coin geometry (edge
// ring, textured faces, holographic overlay).
package coin

import (
	"coinview/coingl"
	"coinview/hal"
)

// Coin dimensions in model units and animation constants.
const (
	Radius    = 90
	Thickness = 10

	// flipStep is the per-tick flip advance in degrees: a 180° flip completes
	// in 9 ticks (~0.15s at 60 TPS). Frame-count based, not time based.
	flipStep = 20
	halfTurn = 180

	// Rotation degrees per pixel of mouse drag, and per normalized unit of
	// touch drag. The 360× asymmetry comes from the differing coordinate
	// conventions of the two devices and is preserved as-is.
	mouseSensitivity = 0.5
	touchSensitivity = 180

	// flipTouchID is the touch identifier that queues a flip on touch-down.
	flipTouchID = 2
)

// Coin holds the viewer's only piece of mutable state. It is not safe for
// concurrent use; the frame loop owns it.
type Coin struct {
	// AngleX and AngleY accumulate rotation in degrees about the horizontal
	// and vertical axes. Unbounded; the trig in the shading wraps them.
	AngleX float64
	AngleY float64

	// Flipped selects which texture is front-facing.
	Flipped bool

	// FlipAnim is the in-flight flip rotation in degrees, 0 when idle.
	// Always within [0, FlipTarget].
	FlipAnim float64
	// FlipTarget is the total queued flip rotation, a multiple of 180.
	FlipTarget float64

	// LastX, LastY record the most recent primary press position.
	LastX, LastY int

	front *coingl.Texture
	back  *coingl.Texture

	geom geometry
}

// New creates a coin with its two face textures and builds the static
// geometry. Vertex colors are refreshed per frame by Refresh.
func New(front, back *coingl.Texture) *Coin {
	c := &Coin{front: front, back: back}
	c.geom.build()
	c.Refresh()
	return c
}

// Flipping reports whether a flip animation is in progress.
func (c *Coin) Flipping() bool { return c.FlipTarget > 0 }

// QueueFlip adds a half turn to the pending flip rotation. Flips queued while
// one is in flight compound additively; there is no cancellation.
func (c *Coin) QueueFlip() {
	c.FlipTarget += halfTurn
}

// Update advances the flip animation by one tick. Each completed half turn
// toggles Flipped exactly once; queuing two half turns before completion
// yields two toggles. Returns true when a half turn completed this tick.
func (c *Coin) Update() bool {
	if c.FlipAnim >= c.FlipTarget {
		return false
	}
	c.FlipAnim += flipStep
	if c.FlipAnim < halfTurn {
		return false
	}

	c.Flipped = !c.Flipped
	c.FlipAnim -= halfTurn
	c.FlipTarget -= halfTurn
	if c.FlipTarget <= 0 {
		c.FlipAnim = 0
		c.FlipTarget = 0
	}
	return true
}

// HandleGesture applies one input event to the coin state. Events are
// processed in arrival order; rotation accumulation is purely additive.
func (c *Coin) HandleGesture(g hal.Gesture) {
	switch g.Kind {
	case hal.GesturePointerDown:
		switch g.Button {
		case hal.ButtonPrimary:
			c.LastX, c.LastY = g.X, g.Y
		case hal.ButtonSecondary:
			c.QueueFlip()
		}
	case hal.GesturePointerMove:
		if g.Primary {
			c.AngleY += g.DX * mouseSensitivity
			c.AngleX += g.DY * mouseSensitivity
		}
	case hal.GestureTouchDown:
		if g.TouchID == flipTouchID {
			c.QueueFlip()
		}
	case hal.GestureTouchMove:
		c.AngleY += g.DX * touchSensitivity
		c.AngleX += g.DY * touchSensitivity
	}
}

// Transform returns the model matrix for the current orientation: the
// accumulated X/Y rotation plus any in-flight flip about the vertical axis.
func (c *Coin) Transform() coingl.Mat4 {
	rx := coingl.Mat4RotateX(coingl.Radians(float32(c.AngleX)))
	ry := coingl.Mat4RotateY(coingl.Radians(float32(c.AngleY + c.FlipAnim)))
	return coingl.Mat4Mul(rx, ry)
}

// FrontTexture returns the texture currently shown on the front face.
func (c *Coin) FrontTexture() *coingl.Texture {
	if c.Flipped {
		return c.back
	}
	return c.front
}

// BackTexture returns the texture currently shown on the back face.
func (c *Coin) BackTexture() *coingl.Texture {
	if c.Flipped {
		return c.front
	}
	return c.back
}

// Refresh recomputes the rotation-dependent vertex colors in place. Geometry
// positions and UVs are static; only colors react to AngleX/AngleY.
func (c *Coin) Refresh() {
	c.geom.refresh(c.AngleX, c.AngleY)
}

// Meshes returns the coin meshes in draw order: edge ring, front face, back
// face, front holo overlay, back holo overlay. The slices inside are owned by
// the coin and rewritten by Refresh.
func (c *Coin) Meshes() (edge, faceFront, faceBack, holoFront, holoBack coingl.Mesh) {
	return c.geom.edge, c.geom.faceFront, c.geom.faceBack, c.geom.holoFront, c.geom.holoBack
}
