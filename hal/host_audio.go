//go:build cgo

package hal

import (
	"bytes"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const chimeSampleRate = 44100

// hostAudio plays the flip chime on desktop via Ebiten's audio package.
// The PCM clip is synthesized once; each Chime spawns a short-lived player.
type hostAudio struct {
	mu     sync.Mutex
	ctx    *audio.Context
	pcm    []byte
	player *audio.Player
}

func newHostAudio() Audio {
	return &hostAudio{}
}

func (a *hostAudio) Chime() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		a.ctx = audio.NewContext(chimeSampleRate)
	}
	if a.pcm == nil {
		a.pcm = synthChime()
	}
	if a.player != nil {
		_ = a.player.Close()
		a.player = nil
	}
	p, err := a.ctx.NewPlayer(bytes.NewReader(a.pcm))
	if err != nil {
		return
	}
	p.SetVolume(0.4)
	p.Play()
	a.player = p
}

// synthChime builds ~140ms of a decaying two-tone strike, 16-bit LE stereo.
func synthChime() []byte {
	const (
		dur   = 0.14
		f1    = 1318.5 // E6
		f2    = 1975.5 // B6
		decay = 22.0
	)
	n := int(dur * chimeSampleRate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / chimeSampleRate
		env := math.Exp(-decay * t)
		v := 0.7*math.Sin(2*math.Pi*f1*t) + 0.3*math.Sin(2*math.Pi*f2*t)
		s := int16(v * env * 0.8 * math.MaxInt16)
		out[i*4+0] = byte(s)
		out[i*4+1] = byte(s >> 8)
		out[i*4+2] = byte(s)
		out[i*4+3] = byte(s >> 8)
	}
	return out
}
