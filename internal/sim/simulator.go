// Package sim advances an epicycle chain frame by frame and records the
// path its tip traces.
package sim

import (
	"image"
	"math"

	"github.com/olivier-w/milkyway/internal/chain"
)

const fullTurn = 2 * math.Pi

// Simulator owns the virtual clock and the trail. It is driven from a
// single frame loop and is not safe for concurrent use.
type Simulator struct {
	mode     Mode
	t        float64
	userStep float64
	samples  int // transform size in ReplayingTransform
	frame    int // frame index within the current revolution
	wrapped  bool
	trail    *Trail
}

// New creates a simulator in CapturingUserInput mode. fps sets the
// real-time step used for hand-edited arms.
func New(fps, trailCapacity int) *Simulator {
	if fps < 1 {
		fps = 1
	}
	return &Simulator{
		userStep: 1 / float64(fps),
		trail:    NewTrail(trailCapacity),
	}
}

// Replay switches to a transform of n samples. Time restarts at zero.
func (s *Simulator) Replay(n int) {
	if n < 1 {
		s.Capture()
		return
	}
	s.mode = ReplayingTransform
	s.samples = n
	s.frame = 0
	s.wrapped = false
	s.t = 0
	s.trail.Reset()
}

// Capture switches back to hand-edited arms. Time keeps running.
func (s *Simulator) Capture() {
	s.mode = CapturingUserInput
	s.samples = 0
	s.frame = 0
	s.wrapped = false
	s.trail.Reset()
}

// Step positions every link of c for the current time, records the tip,
// and advances the clock. It returns the tip position. A chain holding
// only its head has no tip and records nothing.
func (s *Simulator) Step(c *chain.Chain) image.Point {
	if s.wrapped {
		s.trail.Reset()
		s.wrapped = false
	}
	tip := Place(c, s.t)
	if c.Len() > 1 {
		s.trail.Push(tip)
	}
	s.advance()
	return tip
}

func (s *Simulator) advance() {
	if s.mode == ReplayingTransform {
		s.frame++
		if s.frame >= s.samples {
			// The next frame starts a new revolution over the old trace.
			s.frame = 0
			s.wrapped = true
		}
		s.t = fullTurn * float64(s.frame) / float64(s.samples)
		return
	}

	s.t += s.userStep
	if s.t >= fullTurn {
		s.t = 0
	}
}

// Place positions every non-head link of c at time t and returns the tail
// position. Each link hangs off its parent's rotating rod.
func Place(c *chain.Chain, t float64) image.Point {
	parent := c.Head()
	for i := 1; i < c.Len(); i++ {
		angle := float64(parent.Freq)*t + parent.Phase
		p := image.Pt(
			parent.X+int(math.Round(parent.RodLength*math.Sin(angle))),
			parent.Y+int(math.Round(parent.RodLength*math.Cos(angle))),
		)
		c.Place(i, p)
		parent = c.At(i)
	}
	return parent.Pos()
}

// Trace returns the n tip positions of one revolution of c, sampled at
// t = 2πk/n. c itself is not moved.
func Trace(c *chain.Chain, n int) []image.Point {
	if n < 1 {
		return nil
	}
	work := c.Clone()
	out := make([]image.Point, n)
	for k := range n {
		out[k] = Place(work, fullTurn*float64(k)/float64(n))
	}
	return out
}

// ResetTrail clears the recorded path.
func (s *Simulator) ResetTrail() {
	s.trail.Reset()
	s.wrapped = false
}

// Mode returns the current mode.
func (s *Simulator) Mode() Mode { return s.mode }

// Time returns the virtual time of the next frame, in [0, 2π).
func (s *Simulator) Time() float64 { return s.t }

// Samples returns the transform size being replayed, or 0.
func (s *Simulator) Samples() int { return s.samples }

// Trail returns the recorded path.
func (s *Simulator) Trail() *Trail { return s.trail }
