package visualizer

import (
	"math"
	"strings"

	"github.com/muesli/termenv"
)

var glyphTrail = []rune{'·', '•', '✶', '✹'}

// Glyph draws the trail at cell resolution with glyphs that grow with
// recency, plus a marker on every link. It is coarser than Braille but
// reads well in small terminals.
type Glyph struct {
	output  string
	profile termenv.Profile
}

func NewGlyph() *Glyph {
	return &Glyph{profile: terminalProfile()}
}

func (g *Glyph) Name() string { return "glyph" }

func (g *Glyph) Update(f Frame, width, height int) {
	if width < 1 || height < 1 {
		g.output = ""
		return
	}
	cols, rows := width, height

	chars := make([][]rune, rows)
	ages := make([][]float64, rows)
	for r := range rows {
		chars[r] = make([]rune, cols)
		ages[r] = make([]float64, cols)
		for c := range cols {
			chars[r][c] = ' '
			ages[r][c] = 1
		}
	}

	path := f.Trail
	if f.Drawing {
		path = f.Stroke
	} else if !f.TrailVisible {
		path = nil
	}
	for i, p := range path {
		x, y := p.X/2, p.Y/4
		if p.X < 0 || p.Y < 0 || x >= cols || y >= rows {
			continue
		}
		age := float64(len(path)-1-i) / float64(max(1, len(path)-1))
		chars[y][x] = glyphTrail[min(len(glyphTrail)-1, int((1-age)*float64(len(glyphTrail)-1)))]
		if age < ages[y][x] {
			ages[y][x] = age
		}
	}

	if !f.Drawing {
		for i, l := range f.Links {
			x, y := l.X/2, l.Y/4
			if l.X < 0 || l.Y < 0 || x >= cols || y >= rows {
				continue
			}
			chars[y][x] = '∘'
			ages[y][x] = -1
			if i == 0 {
				chars[y][x] = '◉'
			}
		}
	}

	var out strings.Builder
	color := newANSIState(g.profile)
	for r := range rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := range cols {
			ch := chars[r][c]
			if ch == ' ' || g.profile == termenv.Ascii {
				out.WriteRune(ch)
				continue
			}
			if ages[r][c] < 0 {
				color.set(&out, armColor)
				out.WriteRune(ch)
				continue
			}
			age := clamp01(1 - ages[r][c])
			hue := math.Mod(0.08+float64(c)/float64(cols)*0.75+age*0.12, 1)
			color.set(&out, hsv(hue, 0.78, 0.3+0.7*age))
			out.WriteRune(ch)
		}
		color.reset(&out)
	}

	g.output = out.String()
}

func (g *Glyph) View() string {
	return g.output
}
