package ui

import (
	"image"
	"math"

	"github.com/charmbracelet/harmonica"
)

// pivotSpring eases the chain's pivot toward a new centre instead of
// jumping there when the terminal is resized.
type pivotSpring struct {
	spring harmonica.Spring
	x, y   float64
	vx, vy float64
	target image.Point
	moving bool
}

func newPivotSpring(fps int) pivotSpring {
	return pivotSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

// jump places the pivot without animation.
func (p *pivotSpring) jump(to image.Point) {
	p.x, p.y = float64(to.X), float64(to.Y)
	p.vx, p.vy = 0, 0
	p.target = to
	p.moving = false
}

// moveTo starts easing toward to from the current position.
func (p *pivotSpring) moveTo(from, to image.Point) {
	if !p.moving {
		p.x, p.y = float64(from.X), float64(from.Y)
	}
	p.target = to
	p.moving = from != to
}

// step advances the animation one frame. It reports the rounded position
// and whether the pivot has come to rest on the target.
func (p *pivotSpring) step() (image.Point, bool) {
	if !p.moving {
		return p.target, true
	}
	p.x, p.vx = p.spring.Update(p.x, p.vx, float64(p.target.X))
	p.y, p.vy = p.spring.Update(p.y, p.vy, float64(p.target.Y))

	dx, dy := p.x-float64(p.target.X), p.y-float64(p.target.Y)
	if math.Hypot(dx, dy) < 0.5 && math.Hypot(p.vx, p.vy) < 0.5 {
		p.jump(p.target)
		return p.target, true
	}
	return image.Pt(int(math.Round(p.x)), int(math.Round(p.y))), false
}
