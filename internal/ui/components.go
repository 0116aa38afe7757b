package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/olivier-w/milkyway/internal/session"
)

// renderRevolutionBar shows how far the virtual clock is through one turn.
func renderRevolutionBar(t float64, width int) string {
	if width < 4 {
		width = 4
	}
	ratio := t / (2 * math.Pi)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}

func renderStatus(s *session.Session, width int) string {
	left := fmt.Sprintf("%s  %d links", s.Mode(), s.Chain().Len())
	if n := s.SampleCount(); n > 0 {
		if s.StrokeFull() {
			left += fmt.Sprintf("  %d/%d samples (full)", n, s.Capacity())
		} else {
			left += fmt.Sprintf("  %d samples", n)
		}
	}
	if !s.TrailVisible() {
		left += "  trail off"
	}
	if s.Drawing() {
		left += "  drawing"
	}

	right := fmt.Sprintf("t %.2f", s.Time())
	barWidth := width - len(left) - len(right) - 6
	if barWidth < 4 {
		return statusStyle.Render(left + "  " + right)
	}
	return statusStyle.Render(left + "  " + renderRevolutionBar(s.Time(), barWidth) + "  " + right)
}
