package ui

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/olivier-w/milkyway/internal/chain"
)

const (
	spectrumWidth   = 34
	spectrumMaxArms = 64
)

// renderSpectrum plots arm lengths in chain order. Transform arms are
// sorted by amplitude, so the plot shows how fast the drawing's detail
// falls off.
func renderSpectrum(c *chain.Chain, height int) string {
	n := min(c.Len(), spectrumMaxArms)
	amps := make([]float64, 0, n)
	for i := range n {
		amps = append(amps, c.At(i).Radius)
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("arms") + "\n")
	s.WriteString(fmt.Sprintf("%d links\n\n", c.Len()))
	if len(amps) < 2 {
		s.WriteString("draw something")
		return s.String()
	}

	plotHeight := max(height-6, 3)
	s.WriteString(asciigraph.Plot(amps,
		asciigraph.Height(plotHeight),
		asciigraph.Width(spectrumWidth-10),
		asciigraph.Caption("radius by arm"),
	))
	return s.String()
}
