package visualizer

import (
	"image"
	"strings"

	"github.com/muesli/termenv"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Canvas is a grid of braille cells addressed in dots. Each cell carries
// one color: the last one drawn into it.
type Canvas struct {
	cols    int
	rows    int
	pattern []uint8
	color   []colorRGB
}

// NewCanvas creates a canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{
		cols:    cols,
		rows:    rows,
		pattern: make([]uint8, cols*rows),
		color:   make([]colorRGB, cols*rows),
	}
}

// Set lights the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col colorRGB) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.cols || cy >= c.rows {
		return
	}
	i := cy*c.cols + cx
	c.pattern[i] |= 1 << brailleBits[x%2][y%4]
	c.color[i] = col
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.cols || y/4 >= c.rows {
		return false
	}
	return c.pattern[(y/4)*c.cols+x/2]&(1<<brailleBits[x%2][y%4]) != 0
}

// Line draws a straight segment with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, col colorRGB) {
	if !c.mayCross(x0, y0, x1, y1) {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// mayCross rejects segments whose bounding box misses the canvas.
func (c *Canvas) mayCross(x0, y0, x1, y1 int) bool {
	w, h := c.cols*2, c.rows*4
	return max(x0, x1) >= 0 && min(x0, x1) < w && max(y0, y1) >= 0 && min(y0, y1) < h
}

// Circle draws a circle outline with the midpoint algorithm. A radius
// below one dot draws nothing.
func (c *Canvas) Circle(cx, cy, r int, col colorRGB) {
	if r < 1 || !c.mayCross(cx-r, cy-r, cx+r, cy+r) {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y, col)
		c.Set(cx+y, cy+x, col)
		c.Set(cx-y, cy+x, col)
		c.Set(cx-x, cy+y, col)
		c.Set(cx-x, cy-y, col)
		c.Set(cx-y, cy-x, col)
		c.Set(cx+y, cy-x, col)
		c.Set(cx+x, cy-y, col)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// Polyline joins consecutive points with lines.
func (c *Canvas) Polyline(pts []image.Point, col colorRGB) {
	if len(pts) == 1 {
		c.Set(pts[0].X, pts[0].Y, col)
		return
	}
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, col)
	}
}

// Render returns the canvas as text, colored for the given profile.
func (c *Canvas) Render(profile termenv.Profile) string {
	var out strings.Builder
	color := newANSIState(profile)
	for r := range c.rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		for col := range c.cols {
			i := r*c.cols + col
			if c.pattern[i] == 0 {
				out.WriteByte(' ')
				continue
			}
			color.set(&out, c.color[i])
			out.WriteRune(rune(0x2800 + int(c.pattern[i])))
		}
		color.reset(&out)
	}
	return out.String()
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
