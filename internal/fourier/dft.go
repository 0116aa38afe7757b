package fourier

import (
	"cmp"
	"math"
	"slices"
)

// Component is one frequency bin of a transformed curve, read as a
// rotating arm: Amp is the arm length, Freq its angular speed and Phase
// its starting angle.
//
// Phase is measured from the screen's "up" direction, which is why it is
// offset by π/2 from the coefficient's argument.
type Component struct {
	Coef  Complex
	Freq  int
	Amp   float64
	Phase float64
}

// Scaled returns the component of the same curve stretched by s > 0.
// Stretching a curve leaves every phase and frequency unchanged.
func (c Component) Scaled(s float64) Component {
	c.Coef = c.Coef.Scale(s)
	c.Amp *= s
	return c
}

// Transform computes the discrete Fourier transform of samples with the
// direct O(N²) sum and returns one component per bin, in bin order.
//
// Bins above N/2 keep their raw index as Freq; they are not remapped to
// negative frequencies. Transform returns nil for an empty input.
func Transform(samples []Complex) []Component {
	n := len(samples)
	if n == 0 {
		return nil
	}

	out := make([]Component, n)
	for k := range n {
		var z Complex
		for i, s := range samples {
			phi := 2 * math.Pi * float64(k) * float64(i) / float64(n)
			basis := Complex{Re: math.Cos(phi), Im: -math.Sin(phi)}
			z = Add(z, Mul(s, basis))
		}
		z = z.Scale(1 / float64(n))

		out[k] = Component{
			Coef:  z,
			Freq:  k,
			Amp:   z.Abs(),
			Phase: z.Arg() + math.Pi/2,
		}
	}
	return out
}

// SortByAmplitude orders components by descending amplitude. Equal
// amplitudes keep the lower frequency first.
func SortByAmplitude(cs []Component) {
	slices.SortStableFunc(cs, func(a, b Component) int {
		if c := cmp.Compare(b.Amp, a.Amp); c != 0 {
			return c
		}
		return cmp.Compare(a.Freq, b.Freq)
	})
}

// Reconstruct sums the rotating arms at sample index n of a curve that had
// size samples, giving back the original sample.
func Reconstruct(cs []Component, n, size int) Complex {
	t := 2 * math.Pi * float64(n) / float64(size)
	var z Complex
	for _, c := range cs {
		a := float64(c.Freq)*t + c.Phase
		z = Add(z, Complex{Re: c.Amp * math.Sin(a), Im: -c.Amp * math.Cos(a)})
	}
	return z
}
