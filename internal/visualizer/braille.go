package visualizer

import (
	"math"

	"github.com/muesli/termenv"
)

// Braille draws the full scene at braille resolution: the trail, the arms
// joining each link, and each link's circle.
type Braille struct {
	output  string
	profile termenv.Profile
}

func NewBraille() *Braille {
	return &Braille{profile: terminalProfile()}
}

func (b *Braille) Name() string { return "braille" }

func (b *Braille) Update(f Frame, width, height int) {
	if width < 1 || height < 1 {
		b.output = ""
		return
	}
	c := NewCanvas(width, height)

	if f.Drawing {
		c.Polyline(f.Stroke, trailColor)
		b.output = c.Render(b.profile)
		return
	}

	if f.TrailVisible {
		c.Polyline(f.Trail, trailColor)
	}
	for i := 1; i < len(f.Links); i++ {
		p, q := f.Links[i-1], f.Links[i]
		c.Line(p.X, p.Y, q.X, q.Y, armColor)
	}
	for _, l := range f.Links {
		c.Circle(l.X, l.Y, int(math.Round(l.Radius)), paletteRGB(l.Color))
	}

	b.output = c.Render(b.profile)
}

func (b *Braille) View() string {
	return b.output
}
