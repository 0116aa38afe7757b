// Package session owns the drawing state of one run: the stroke being
// captured, the epicycle chain, and the simulator that replays it.
package session

import (
	"image"
	"log"
	"math"
	"math/rand/v2"

	"github.com/olivier-w/milkyway/internal/capture"
	"github.com/olivier-w/milkyway/internal/chain"
	"github.com/olivier-w/milkyway/internal/fourier"
	"github.com/olivier-w/milkyway/internal/sim"
)

// DefaultCapacity is the stroke and trail size used when none is given.
const DefaultCapacity = 100000

// Options configures a Session.
type Options struct {
	// Capacity bounds both the stroke samples and the trail.
	Capacity int
	// FPS sets the real-time step of hand-edited arms.
	FPS int
	// Seed drives color and random arm choices.
	Seed uint64
}

// Session is mutated only from the UI's update loop.
type Session struct {
	chain        *chain.Chain
	stroke       *capture.Buffer
	sim          *sim.Simulator
	rng          *rand.Rand
	fps          int
	drawing      bool
	trailVisible bool
}

// New creates a session whose chain is pivoted at pivot.
func New(pivot image.Point, opts Options) *Session {
	if opts.FPS < 1 {
		opts.FPS = 60
	}
	if opts.Capacity < 1 {
		opts.Capacity = DefaultCapacity
	}
	return &Session{
		chain:        chain.New(pivot.X, pivot.Y),
		stroke:       capture.NewBuffer(opts.Capacity),
		sim:          sim.New(opts.FPS, opts.Capacity),
		rng:          rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		fps:          opts.FPS,
		trailVisible: true,
	}
}

// BeginStroke starts capturing a new drawing, discarding any stroke in
// progress. The chain stops moving until the stroke ends.
func (s *Session) BeginStroke() {
	s.drawing = true
	s.trailVisible = true
	s.stroke.Reset(s.chain.Head().Pos())
	s.sim.Capture()
}

// Extend adds a pointer position to the stroke. It reports whether the
// point was kept.
func (s *Session) Extend(p image.Point) bool {
	if !s.drawing {
		return false
	}
	return s.stroke.Add(p)
}

// EndStroke finishes the stroke and rebuilds the chain from its
// transform. It reports false when the stroke was empty; the chain is
// left untouched in that case.
func (s *Session) EndStroke() bool {
	if !s.drawing {
		return false
	}
	s.drawing = false
	return s.transform()
}

// LoadSamples replaces the stroke with samples measured from the pivot and
// transforms them as if they had been drawn.
func (s *Session) LoadSamples(samples []fourier.Complex) bool {
	return s.LoadTransform(samples, nil)
}

// LoadTransform is LoadSamples for a curve whose transform was already
// computed elsewhere. cs is used only when it has one component per kept
// sample; otherwise the stroke is transformed here.
func (s *Session) LoadTransform(samples []fourier.Complex, cs []fourier.Component) bool {
	s.drawing = false
	s.trailVisible = true
	s.stroke.Load(s.chain.Head().Pos(), samples)
	if len(cs) != s.stroke.Len() {
		return s.transform()
	}
	return s.rebuild(cs)
}

func (s *Session) transform() bool {
	if s.stroke.Len() == 0 {
		return false
	}
	return s.rebuild(fourier.Transform(s.stroke.Samples()))
}

func (s *Session) rebuild(cs []fourier.Component) bool {
	n := len(cs)
	if n == 0 {
		return false
	}
	s.chain.Rebuild(cs, s.pickColor)
	s.sim.Replay(n)

	head := s.chain.Head()
	log.Printf("transform: %d samples, dominant arm freq=%d amp=%.2f phase=%.3f", n, head.Freq, head.Radius, head.Phase)
	return true
}

func (s *Session) pickColor() chain.Color {
	return chain.Palette[s.rng.IntN(len(chain.Palette))]
}

// AddRandomArm appends a hand-edited arm with random speed, length and
// color, and returns to user mode.
func (s *Session) AddRandomArm() {
	freq := s.rng.IntN(13) - 6
	rod := float64(s.rng.IntN(50) + 40)
	radius := float64(s.rng.IntN(15)) + 8
	phase := float64(s.rng.IntN(2)) * math.Pi
	s.chain.Append(radius, freq, s.pickColor(), rod, phase)
	s.sim.Capture()
}

// RemoveArm drops the last arm and returns to user mode.
func (s *Session) RemoveArm() {
	s.chain.RemoveLast()
	s.sim.Capture()
}

// ClearArms resets the chain to its default head.
func (s *Session) ClearArms() {
	s.chain.Clear()
	s.sim.ResetTrail()
}

// ToggleTrail flips trail visibility and starts a fresh trail.
func (s *Session) ToggleTrail() {
	s.trailVisible = !s.trailVisible
	s.sim.ResetTrail()
}

// Recenter moves the pivot and starts a fresh trail.
func (s *Session) Recenter(p image.Point) {
	s.chain.SetPivot(p.X, p.Y)
	s.sim.ResetTrail()
}

// ClearTrail drops the recorded trail without touching the chain.
func (s *Session) ClearTrail() {
	s.sim.ResetTrail()
}

// Glide moves the pivot without touching the trail, for animated moves
// that end in a Recenter.
func (s *Session) Glide(p image.Point) {
	s.chain.SetPivot(p.X, p.Y)
}

// Frame advances the chain by one frame unless a stroke is in progress.
func (s *Session) Frame() {
	if s.drawing {
		return
	}
	s.sim.Step(s.chain)
}

// Path returns one full revolution of the chain's tip. Transform arms are
// sampled once per captured sample; hand-edited arms once per frame.
func (s *Session) Path() []image.Point {
	return s.PathFunc()()
}

// PathFunc snapshots the chain and returns a function computing Path from
// the snapshot. Tracing costs one pass over the chain per point, so the UI
// runs the returned function off its update loop.
func (s *Session) PathFunc() func() []image.Point {
	if s.chain.Len() < 2 {
		return func() []image.Point { return nil }
	}
	n := s.sim.Samples()
	if s.sim.Mode() != sim.ReplayingTransform {
		n = int(math.Ceil(2 * math.Pi * float64(s.fps)))
	}
	c := s.chain.Clone()
	return func() []image.Point { return sim.Trace(c, n) }
}

func (s *Session) Chain() *chain.Chain { return s.chain }

// Trail returns the traced path.
func (s *Session) Trail() *sim.Trail { return s.sim.Trail() }

// Stroke returns the raw points of the current stroke.
func (s *Session) Stroke() []image.Point { return s.stroke.Points() }

// SampleCount returns the number of samples in the current stroke.
func (s *Session) SampleCount() int { return s.stroke.Len() }

// StrokeFull reports whether the stroke hit the capacity limit.
func (s *Session) StrokeFull() bool { return s.stroke.Full() }

// Capacity returns the stroke and trail capacity.
func (s *Session) Capacity() int { return s.stroke.Capacity() }

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.drawing }

// TrailVisible reports whether the trail should be drawn.
func (s *Session) TrailVisible() bool { return s.trailVisible }

// Mode returns the simulator mode.
func (s *Session) Mode() sim.Mode { return s.sim.Mode() }

// Time returns the simulator's virtual time.
func (s *Session) Time() float64 { return s.sim.Time() }

// Pivot returns the chain's root position.
func (s *Session) Pivot() image.Point { return s.chain.Head().Pos() }
