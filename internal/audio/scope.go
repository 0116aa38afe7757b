package audio

import (
	"encoding/binary"
	"fmt"
	"image"
	"sync"

	"github.com/ebitengine/oto/v3"
)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
	otoRate    int
)

// initOto opens the process-wide audio context. oto allows only one, so the
// first rate wins.
func initOto(rate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: exportChannels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
			otoRate = rate
		}
	})
	if otoInitErr != nil {
		return nil, fmt.Errorf("opening audio device: %w", otoInitErr)
	}
	if otoRate != rate {
		return nil, fmt.Errorf("audio device already open at %d Hz", otoRate)
	}
	return otoCtx, nil
}

// Scope plays the traced path as stereo audio in a loop, so an X/Y
// oscilloscope fed from the sound card shows the drawing.
//
// The device goroutine calls Read; every other method is called from the
// UI loop.
type Scope struct {
	rate   int
	mu     sync.Mutex
	pcm    []byte
	pos    int
	player *oto.Player
}

// NewScope creates a stopped oscilloscope. The audio device is opened on
// the first Toggle.
func NewScope(rate int) *Scope {
	return &Scope{rate: rate}
}

// SetPath replaces the looped path.
func (s *Scope) SetPath(path []image.Point, pivot image.Point) {
	frames := pathFrames(path, pivot)
	pcm := make([]byte, len(frames)*4)
	for i, fr := range frames {
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(int16(fr[0]*32767)))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(int16(fr[1]*32767)))
	}

	s.mu.Lock()
	s.pcm = pcm
	s.pos = 0
	s.mu.Unlock()
}

// Read loops over the current path. An empty path plays silence.
func (s *Scope) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pcm) == 0 {
		clear(p)
		return len(p), nil
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], s.pcm[s.pos:])
		n += c
		s.pos = (s.pos + c) % len(s.pcm)
	}
	return n, nil
}

// Toggle starts or pauses playback and reports whether it is now playing.
func (s *Scope) Toggle() (bool, error) {
	if s.player == nil {
		ctx, err := initOto(s.rate)
		if err != nil {
			return false, err
		}
		s.player = ctx.NewPlayer(s)
	}
	if s.player.IsPlaying() {
		s.player.Pause()
		return false, nil
	}
	s.player.Play()
	return true, nil
}

// Playing reports whether the scope is audible.
func (s *Scope) Playing() bool {
	return s.player != nil && s.player.IsPlaying()
}

// Close stops playback.
func (s *Scope) Close() {
	if s.player != nil {
		s.player.Pause()
	}
}
