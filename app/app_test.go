package app

import (
	"errors"
	"testing"

	"coinview/coingl"
	"coinview/hal"
)

// fakeHAL drives the app in-process: a plain framebuffer, scripted input
// channels, counted chimes.
type fakeHAL struct {
	fb     *fakeFramebuffer
	ptr    chan hal.Gesture
	kbd    chan hal.KeyEvent
	ticks  chan uint64
	chimes int
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:    newFakeFramebuffer(w, h),
		ptr:   make(chan hal.Gesture, 64),
		kbd:   make(chan hal.KeyEvent, 64),
		ticks: make(chan uint64, 64),
	}
}

func (f *fakeHAL) Logger() hal.Logger   { return nullLogger{} }
func (f *fakeHAL) Display() hal.Display { return f }
func (f *fakeHAL) Input() hal.Input     { return f }
func (f *fakeHAL) Audio() hal.Audio     { return f }
func (f *fakeHAL) Time() hal.Time       { return f }

func (f *fakeHAL) Framebuffer() hal.Framebuffer { return f.fb }
func (f *fakeHAL) Pointer() hal.Pointer         { return gestureChan(f.ptr) }
func (f *fakeHAL) Keyboard() hal.Keyboard       { return keyChan(f.kbd) }
func (f *fakeHAL) Chime()                       { f.chimes++ }
func (f *fakeHAL) Ticks() <-chan uint64         { return f.ticks }

type gestureChan chan hal.Gesture

func (c gestureChan) Events() <-chan hal.Gesture { return c }

type keyChan chan hal.KeyEvent

func (c keyChan) Events() <-chan hal.KeyEvent { return c }

type nullLogger struct{}

func (nullLogger) WriteLineString(string) {}
func (nullLogger) WriteLineBytes([]byte)  {}

type fakeFramebuffer struct {
	w, h int
	buf  []byte
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{w: w, h: h, buf: make([]byte, w*h*4)}
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f *fakeFramebuffer) StrideBytes() int        { return f.w * 4 }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf }
func (f *fakeFramebuffer) ClearRGB(r, g, b uint8)  {}
func (f *fakeFramebuffer) Present() error          { return nil }

func testTextures() (*coingl.Texture, *coingl.Texture) {
	mk := func(c coingl.Color) *coingl.Texture {
		t := &coingl.Texture{W: 4, H: 4, Pix: make([]byte, 4*4*4)}
		for i := 0; i < 16; i++ {
			t.Pix[i*4+0] = c.R
			t.Pix[i*4+1] = c.G
			t.Pix[i*4+2] = c.B
			t.Pix[i*4+3] = 0xFF
		}
		return t
	}
	return mk(coingl.RGB(200, 40, 40)), mk(coingl.RGB(40, 40, 200))
}

func TestStepRendersFrame(t *testing.T) {
	h := newFakeHAL(128, 128)
	front, back := testTextures()
	a := newApp(h, front, back)

	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}

	// The background clear plus the coin must have touched the buffer.
	lit := 0
	for i := 0; i+3 < len(h.fb.buf); i += 4 {
		if h.fb.buf[i] != 0 || h.fb.buf[i+1] != 0 || h.fb.buf[i+2] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatalf("framebuffer untouched after step()")
	}
}

func TestGestureQuitStopsApp(t *testing.T) {
	h := newFakeHAL(64, 64)
	front, back := testTextures()
	a := newApp(h, front, back)

	h.ptr <- hal.Gesture{Kind: hal.GestureQuit}
	if err := a.step(); !errors.Is(err, hal.ErrShutdown) {
		t.Fatalf("step() after quit gesture = %v, want ErrShutdown", err)
	}
}

func TestEscapeKeyStopsApp(t *testing.T) {
	h := newFakeHAL(64, 64)
	front, back := testTextures()
	a := newApp(h, front, back)

	h.kbd <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := a.step(); !errors.Is(err, hal.ErrShutdown) {
		t.Fatalf("step() after escape = %v, want ErrShutdown", err)
	}
}

func TestFlipKeyChimesOnCompletion(t *testing.T) {
	h := newFakeHAL(64, 64)
	front, back := testTextures()
	a := newApp(h, front, back)

	h.kbd <- hal.KeyEvent{Rune: 'f', Press: true}
	for i := 0; i < 9; i++ {
		if err := a.step(); err != nil {
			t.Fatalf("step() error = %v", err)
		}
	}
	if h.chimes != 1 {
		t.Fatalf("chimes = %d after one completed flip, want 1", h.chimes)
	}
	if !a.coin.Flipped {
		t.Fatalf("coin not flipped after 9 steps")
	}
}

func TestDragGestureRotates(t *testing.T) {
	h := newFakeHAL(64, 64)
	front, back := testTextures()
	a := newApp(h, front, back)

	h.ptr <- hal.Gesture{Kind: hal.GesturePointerMove, DX: 10, DY: -5, Primary: true}
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if a.coin.AngleY != 5.0 || a.coin.AngleX != -2.5 {
		t.Fatalf("angles = %v, %v, want 5.0, -2.5", a.coin.AngleY, a.coin.AngleX)
	}
}

func TestStepDrainsClockTicks(t *testing.T) {
	h := newFakeHAL(64, 64)
	front, back := testTextures()
	a := newApp(h, front, back)

	for _, n := range []uint64{1, 2, 3} {
		h.ticks <- n
	}
	if err := a.step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if a.upMs != 3 {
		t.Fatalf("upMs = %d, want 3 (newest tick)", a.upMs)
	}
	if len(h.ticks) != 0 {
		t.Fatalf("%d ticks left unread after step()", len(h.ticks))
	}

	h.ticks <- 250
	h.ptr <- hal.Gesture{Kind: hal.GestureQuit}
	if err := a.step(); !errors.Is(err, hal.ErrShutdown) {
		t.Fatalf("step() after quit gesture = %v, want ErrShutdown", err)
	}
	if a.upMs != 250 {
		t.Fatalf("upMs = %d at quit, want 250", a.upMs)
	}
}

func TestModeCycle(t *testing.T) {
	h := newFakeHAL(64, 64)
	front, back := testTextures()
	a := newApp(h, front, back)

	want := []coingl.RenderMode{coingl.RenderWireframe, coingl.RenderSolidFlat, coingl.RenderTextured}
	for _, m := range want {
		h.kbd <- hal.KeyEvent{Rune: 'w', Press: true}
		if err := a.step(); err != nil {
			t.Fatalf("step() error = %v", err)
		}
		if a.mode != m {
			t.Fatalf("mode = %v, want %v", a.mode, m)
		}
	}
}
