package fourier

import "math"

// Complex is a point in the plane treated as a complex number.
// Values are never mutated by arithmetic.
type Complex struct {
	Re float64
	Im float64
}

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Mul returns a * b.
func Mul(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Scale returns z multiplied by the real factor s.
func (z Complex) Scale(s float64) Complex {
	return Complex{Re: z.Re * s, Im: z.Im * s}
}

// Abs returns the magnitude of z.
func (z Complex) Abs() float64 { return math.Hypot(z.Re, z.Im) }

// Arg returns the angle of z in radians.
func (z Complex) Arg() float64 { return math.Atan2(z.Im, z.Re) }
