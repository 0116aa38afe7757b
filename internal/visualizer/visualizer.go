package visualizer

import (
	"image"

	"github.com/olivier-w/milkyway/internal/chain"
)

// Frame is a read-only snapshot of what to draw. Coordinates are braille
// dots: two per cell horizontally, four vertically.
type Frame struct {
	Links        []chain.Link
	Trail        []image.Point
	Stroke       []image.Point
	TrailVisible bool
	Drawing      bool
}

// Visualizer renders a frame as terminal text.
type Visualizer interface {
	Name() string
	Update(f Frame, width, height int)
	View() string
}

// Modes returns all available visualizers.
func Modes() []Visualizer {
	return []Visualizer{
		NewBraille(),
		NewGlyph(),
	}
}

// Index returns the position of the named visualizer in Modes, or 0.
func Index(name string) int {
	for i, v := range Modes() {
		if v.Name() == name {
			return i
		}
	}
	return 0
}

// DotSize converts a cell area to braille dot dimensions.
func DotSize(width, height int) (int, int) {
	return width * 2, height * 4
}
