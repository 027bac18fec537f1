package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrShutdown is returned by an app step to request a clean exit. Runners
// treat it as a normal termination, not a failure.
var ErrShutdown = errors.New("shutdown")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp: one byte per channel, RGBA order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// GestureKind discriminates pointer/touch input events.
type GestureKind uint8

const (
	GestureNone GestureKind = iota
	GesturePointerDown
	GesturePointerUp
	GesturePointerMove
	GestureTouchDown
	GestureTouchUp
	GestureTouchMove
	GestureQuit
)

// PointerButton identifies a pointer button.
type PointerButton uint8

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
)

// Gesture is a single pointer/touch input event. Field validity depends on
// Kind:
//
//   - GesturePointerDown/Up: Button, X, Y
//   - GesturePointerMove:    X, Y, DX, DY (pixels), Primary (button held)
//   - GestureTouchDown/Up:   TouchID, X, Y
//   - GestureTouchMove:      TouchID, DX, DY (normalized to window size)
//   - GestureQuit:           no payload
type Gesture struct {
	Kind    GestureKind
	Button  PointerButton
	X, Y    int
	DX, DY  float64
	Primary bool
	TouchID int
}

// Pointer provides pointer/touch events (best-effort on each platform).
type Pointer interface {
	Events() <-chan Gesture
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
)

// KeyEvent is a keyboard event. Printable keys arrive as runes.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
	Keyboard() Keyboard
}

// Audio plays short UI sounds.
type Audio interface {
	// Chime plays the flip-complete sound. Best-effort: a platform without
	// audio output drops it silently.
	Chime()
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; frame pacing lives in the runners.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Audio() Audio
	Time() Time
}
