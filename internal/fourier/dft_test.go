package fourier

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/dsp/fourier"
)

const tolerance = 1e-9

func randomCurve(r *rand.Rand, n int) []Complex {
	out := make([]Complex, n)
	for i := range out {
		out[i] = Complex{Re: r.Float64()*400 - 200, Im: r.Float64()*400 - 200}
	}
	return out
}

func TestMulAndAdd(t *testing.T) {
	a := Complex{Re: 1, Im: 2}
	b := Complex{Re: 3, Im: -4}
	if got, want := Mul(a, b), (Complex{Re: 11, Im: 2}); got != want {
		t.Fatalf("Mul(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got, want := Add(a, b), (Complex{Re: 4, Im: -2}); got != want {
		t.Fatalf("Add(%v, %v) = %v, want %v", a, b, got, want)
	}
	if a != (Complex{Re: 1, Im: 2}) {
		t.Fatal("arithmetic mutated its operand")
	}
}

func TestTransformEmpty(t *testing.T) {
	if got := Transform(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{1, 2, 3, 7, 16, 33} {
		samples := randomCurve(r, n)
		cs := Transform(samples)
		if len(cs) != n {
			t.Fatalf("n=%d: expected %d components, got %d", n, n, len(cs))
		}

		// Order must not matter for the inverse sum.
		SortByAmplitude(cs)
		for i, want := range samples {
			got := Reconstruct(cs, i, n)
			if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); d != "" {
				t.Fatalf("n=%d sample %d: round trip mismatch (-want +got):\n%s", n, i, d)
			}
		}
	}
}

func TestTransformMatchesGonum(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	const n = 24
	samples := randomCurve(r, n)

	src := make([]complex128, n)
	for i, s := range samples {
		src[i] = complex(s.Re, s.Im)
	}
	ref := fourier.NewCmplxFFT(n).Coefficients(nil, src)

	for k, c := range Transform(samples) {
		want := Complex{Re: real(ref[k]) / n, Im: imag(ref[k]) / n}
		if d := cmp.Diff(want, c.Coef, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Fatalf("bin %d (-gonum +ours):\n%s", k, d)
		}
		if c.Freq != k {
			t.Fatalf("bin %d: expected raw frequency %d, got %d", k, k, c.Freq)
		}
	}
}

func TestTransformUnitCircle(t *testing.T) {
	samples := []Complex{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	cs := Transform(samples)

	for _, c := range cs {
		if c.Freq == 1 {
			if math.Abs(c.Amp-1) > tolerance {
				t.Fatalf("expected amplitude 1 at frequency 1, got %v", c.Amp)
			}
			if math.Abs(c.Phase-math.Pi/2) > tolerance {
				t.Fatalf("expected phase π/2 at frequency 1, got %v", c.Phase)
			}
			continue
		}
		if c.Amp > tolerance {
			t.Fatalf("expected silent bin %d, got amplitude %v", c.Freq, c.Amp)
		}
	}

	SortByAmplitude(cs)
	if cs[0].Freq != 1 {
		t.Fatalf("expected dominant frequency 1 first, got %d", cs[0].Freq)
	}
}

func TestTransformKeepsHighBins(t *testing.T) {
	// Clockwise circle: all energy lands in bin N-1, not -1.
	samples := []Complex{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}
	cs := Transform(samples)
	SortByAmplitude(cs)
	if cs[0].Freq != 3 {
		t.Fatalf("expected clockwise energy in bin 3, got %d", cs[0].Freq)
	}
}

func TestSortByAmplitudeTieBreak(t *testing.T) {
	cs := []Component{
		{Freq: 4, Amp: 1},
		{Freq: 2, Amp: 3},
		{Freq: 1, Amp: 1},
		{Freq: 0, Amp: 3},
		{Freq: 3, Amp: 0},
	}
	SortByAmplitude(cs)

	got := make([]int, len(cs))
	for i, c := range cs {
		got[i] = c.Freq
	}
	if d := cmp.Diff([]int{0, 2, 1, 4, 3}, got); d != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", d)
	}
}

func TestScaledMatchesTransformOfScaledCurve(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	curve := randomCurve(r, 24)

	stretched := make([]Complex, len(curve))
	for i, s := range curve {
		stretched[i] = s.Scale(2.5)
	}
	want := Transform(stretched)

	got := Transform(curve)
	for i := range got {
		got[i] = got[i].Scaled(2.5)
	}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
		t.Fatalf("scaled components differ (-want +got):\n%s", d)
	}
}
