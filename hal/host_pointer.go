package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostPointer polls ebiten mouse and touch state once per tick and turns it
// into Gesture events. Touch deltas are normalized to the window size; mouse
// deltas stay in pixels.
type hostPointer struct {
	ch chan Gesture

	winW, winH int

	lastX, lastY int
	haveCursor   bool

	touches  map[ebiten.TouchID][2]int
	touchIDs []ebiten.TouchID
	justIDs  []ebiten.TouchID
}

func newHostPointer(winW, winH int) *hostPointer {
	return &hostPointer{
		ch:      make(chan Gesture, 128),
		winW:    winW,
		winH:    winH,
		touches: make(map[ebiten.TouchID][2]int),
	}
}

func (p *hostPointer) Events() <-chan Gesture { return p.ch }

func (p *hostPointer) emit(g Gesture) {
	select {
	case p.ch <- g:
	default:
	}
}

func (p *hostPointer) poll() {
	cx, cy := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.emit(Gesture{Kind: GesturePointerDown, Button: ButtonPrimary, X: cx, Y: cy})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		p.emit(Gesture{Kind: GesturePointerDown, Button: ButtonSecondary, X: cx, Y: cy})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.emit(Gesture{Kind: GesturePointerUp, Button: ButtonPrimary, X: cx, Y: cy})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		p.emit(Gesture{Kind: GesturePointerUp, Button: ButtonSecondary, X: cx, Y: cy})
	}

	if p.haveCursor && (cx != p.lastX || cy != p.lastY) {
		p.emit(Gesture{
			Kind:    GesturePointerMove,
			X:       cx,
			Y:       cy,
			DX:      float64(cx - p.lastX),
			DY:      float64(cy - p.lastY),
			Primary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		})
	}
	p.lastX, p.lastY = cx, cy
	p.haveCursor = true

	p.justIDs = inpututil.AppendJustPressedTouchIDs(p.justIDs[:0])
	for _, id := range p.justIDs {
		tx, ty := ebiten.TouchPosition(id)
		p.touches[id] = [2]int{tx, ty}
		p.emit(Gesture{Kind: GestureTouchDown, TouchID: int(id), X: tx, Y: ty})
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		prev, ok := p.touches[id]
		p.touches[id] = [2]int{tx, ty}
		if !ok || (tx == prev[0] && ty == prev[1]) {
			continue
		}
		p.emit(Gesture{
			Kind:    GestureTouchMove,
			TouchID: int(id),
			X:       tx,
			Y:       ty,
			DX:      float64(tx-prev[0]) / float64(p.winW),
			DY:      float64(ty-prev[1]) / float64(p.winH),
		})
	}

	p.justIDs = inpututil.AppendJustReleasedTouchIDs(p.justIDs[:0])
	for _, id := range p.justIDs {
		prev := p.touches[id]
		delete(p.touches, id)
		p.emit(Gesture{Kind: GestureTouchUp, TouchID: int(id), X: prev[0], Y: prev[1]})
	}
}
