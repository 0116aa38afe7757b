package visualizer

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/olivier-w/milkyway/internal/chain"
)

type colorRGB struct {
	R uint8
	G uint8
	B uint8
}

func (c colorRGB) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	trailColor = colorRGB{R: 253, G: 249, B: 0}
	armColor   = colorRGB{R: 245, G: 245, B: 245}
)

// paletteRGB maps an arm's cosmetic color to terminal RGB.
func paletteRGB(c chain.Color) colorRGB {
	switch c {
	case chain.Red:
		return colorRGB{R: 230, G: 41, B: 55}
	case chain.Blue:
		return colorRGB{R: 0, G: 121, B: 241}
	case chain.Green:
		return colorRGB{R: 0, G: 228, B: 48}
	case chain.Violet:
		return colorRGB{R: 135, G: 60, B: 190}
	case chain.White:
		return armColor
	default:
		return colorRGB{R: 130, G: 130, B: 130}
	}
}

// terminalProfile is the color support lipgloss detected for stdout.
// NO_COLOR and dumb terminals come out as termenv.Ascii.
func terminalProfile() termenv.Profile {
	return lipgloss.ColorProfile()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// hsv takes a hue in turns, so callers can wrap it with math.Mod(h, 1).
func hsv(h, s, v float64) colorRGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	r, g, b := colorful.Hsv(h*360, clamp01(s), clamp01(v)).RGB255()
	return colorRGB{R: r, G: g, B: b}
}

// ansiState writes a foreground sequence only when the color changes.
type ansiState struct {
	profile termenv.Profile
	current uint32
}

const noColor = ^uint32(0)

func newANSIState(p termenv.Profile) ansiState {
	return ansiState{profile: p, current: noColor}
}

func (s *ansiState) set(sb *strings.Builder, c colorRGB) {
	if s.profile == termenv.Ascii {
		return
	}
	key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if key == s.current {
		return
	}
	sb.WriteString(colorSequence(s.profile, c))
	s.current = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == termenv.Ascii || s.current == noColor {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.current = noColor
}

var seqCache sync.Map

// colorSequence degrades c to what p supports. Renders call it per cell,
// so sequences are cached.
func colorSequence(p termenv.Profile, c colorRGB) string {
	key := uint32(p)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}
	var seq string
	if p != termenv.Ascii {
		seq = termenv.CSI + p.Color(c.hex()).Sequence(false) + "m"
	}
	seqCache.Store(key, seq)
	return seq
}
