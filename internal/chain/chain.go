// Package chain holds the ordered list of rotating arms whose tip traces
// the drawing.
package chain

import (
	"image"

	"github.com/olivier-w/milkyway/internal/fourier"
)

// Color is a cosmetic palette entry for an arm's circle.
type Color uint8

const (
	Gray Color = iota
	Red
	Blue
	Green
	Violet
	White
)

// Palette lists the colors picked for transform and random arms.
var Palette = []Color{Red, Blue, Green, Violet}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Violet:
		return "violet"
	case White:
		return "white"
	default:
		return "gray"
	}
}

// Link is one arm of the chain. X and Y are the arm's pivot position on
// the canvas; the arm itself rotates around that point.
type Link struct {
	X         int
	Y         int
	Radius    float64
	Freq      int
	Color     Color
	RodLength float64
	Phase     float64
}

// Pos returns the link position.
func (l Link) Pos() image.Point { return image.Pt(l.X, l.Y) }

// Head defaults, restored whenever the chain is cleared.
const (
	DefaultRadius    = 5
	DefaultFreq      = 5
	DefaultRodLength = 50
)

// Chain is an ordered list of links stored contiguously. Index 0 is the
// head, which sits on the pivot and is never removed.
type Chain struct {
	links []Link
}

// New creates a chain with a single default head at (x, y).
func New(x, y int) *Chain {
	c := &Chain{links: make([]Link, 1, 16)}
	c.links[0].X = x
	c.links[0].Y = y
	c.resetHead()
	return c
}

func (c *Chain) resetHead() {
	h := &c.links[0]
	h.Radius = DefaultRadius
	h.Freq = DefaultFreq
	h.Color = Gray
	h.RodLength = DefaultRodLength
	h.Phase = 0
}

// Append adds a link at the tail.
func (c *Chain) Append(radius float64, freq int, color Color, rodLength, phase float64) {
	c.links = append(c.links, Link{
		Radius:    radius,
		Freq:      freq,
		Color:     color,
		RodLength: rodLength,
		Phase:     phase,
	})
}

// RemoveLast drops the tail link. With only the head left, the head is
// reset to its defaults instead.
func (c *Chain) RemoveLast() {
	if len(c.links) == 1 {
		c.Clear()
		return
	}
	c.links[len(c.links)-1] = Link{}
	c.links = c.links[:len(c.links)-1]
}

// Clear resets the head to its defaults and drops every other link.
func (c *Chain) Clear() {
	c.resetHead()
	clear(c.links[1:])
	c.links = c.links[:1]
}

// Rebuild replaces the chain with arms taken from cs in descending
// amplitude order, followed by a terminal link that marks the tracing
// tip. The head keeps its position. pick supplies each arm's color.
//
// cs itself is not reordered.
func (c *Chain) Rebuild(cs []fourier.Component, pick func() Color) {
	if len(cs) == 0 {
		c.Clear()
		return
	}
	sorted := make([]fourier.Component, len(cs))
	copy(sorted, cs)
	fourier.SortByAmplitude(sorted)

	c.Clear()
	top := sorted[0]
	h := &c.links[0]
	h.Radius = top.Amp
	h.Freq = top.Freq
	h.Phase = top.Phase
	h.RodLength = top.Amp
	h.Color = pick()

	for _, comp := range sorted[1:] {
		c.Append(comp.Amp, comp.Freq, pick(), comp.Amp, comp.Phase)
	}
	c.Append(0, 0, White, 0, 0)
}

// SetPivot moves the head. Other links follow on the next simulated frame.
func (c *Chain) SetPivot(x, y int) {
	c.links[0].X = x
	c.links[0].Y = y
}

// Len returns the number of links including the head.
func (c *Chain) Len() int { return len(c.links) }

// At returns a copy of link i.
func (c *Chain) At(i int) Link { return c.links[i] }

// Head returns a copy of the head link.
func (c *Chain) Head() Link { return c.links[0] }

// Tail returns a copy of the last link.
func (c *Chain) Tail() Link { return c.links[len(c.links)-1] }

// Links returns a copy of every link in order.
func (c *Chain) Links() []Link {
	out := make([]Link, len(c.links))
	copy(out, c.links)
	return out
}

// Clone returns an independent copy of the chain.
func (c *Chain) Clone() *Chain {
	return &Chain{links: c.Links()}
}

// Place sets the position of link i. Only the simulator moves links.
func (c *Chain) Place(i int, p image.Point) {
	c.links[i].X = p.X
	c.links[i].Y = p.Y
}
