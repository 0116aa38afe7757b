package sim

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/olivier-w/milkyway/internal/chain"
	"github.com/olivier-w/milkyway/internal/fourier"
)

func circleChain(pivot image.Point, radius float64) (*chain.Chain, int) {
	samples := []fourier.Complex{{Re: radius}, {Im: radius}, {Re: -radius}, {Im: -radius}}
	c := chain.New(pivot.X, pivot.Y)
	c.Rebuild(fourier.Transform(samples), func() chain.Color { return chain.Red })
	return c, len(samples)
}

func TestReplayRetracesUnitCircle(t *testing.T) {
	pivot := image.Pt(200, 100)
	c, n := circleChain(pivot, 100)

	s := New(60, 1000)
	s.Replay(n)
	for range n {
		s.Step(c)
	}

	want := []image.Point{{300, 100}, {200, 0}, {100, 100}, {200, 200}}
	if d := cmp.Diff(want, s.Trail().Points()); d != "" {
		t.Fatalf("unexpected trace (-want +got):\n%s", d)
	}
}

func TestReplayWritesOneRevolutionBeforeRewinding(t *testing.T) {
	samples := make([]fourier.Complex, 37)
	for i := range samples {
		a := 2 * math.Pi * float64(i) / float64(len(samples))
		samples[i] = fourier.Complex{Re: 80*math.Cos(a) + 10*math.Cos(3*a), Im: 50 * math.Sin(2*a)}
	}
	c := chain.New(0, 0)
	c.Rebuild(fourier.Transform(samples), func() chain.Color { return chain.Blue })

	s := New(60, 100000)
	s.Replay(len(samples))
	for i := range len(samples) {
		s.Step(c)
		if s.Trail().Cursor() != i+1 {
			t.Fatalf("frame %d: expected cursor %d, got %d", i, i+1, s.Trail().Cursor())
		}
	}
	if s.Time() != 0 {
		t.Fatalf("expected time to wrap to 0, got %v", s.Time())
	}

	s.Step(c)
	if s.Trail().Cursor() != 1 || s.Trail().Len() != 1 {
		t.Fatalf("expected new revolution to overwrite the trace, got cursor %d", s.Trail().Cursor())
	}
}

func TestReplayReproducesSamples(t *testing.T) {
	samples := []fourier.Complex{{Re: 40, Im: 0}, {Re: 30, Im: 30}, {Re: 0, Im: 45}, {Re: -35, Im: 20}, {Re: -20, Im: -30}, {Re: 10, Im: -40}}
	pivot := image.Pt(500, 300)
	c := chain.New(pivot.X, pivot.Y)
	c.Rebuild(fourier.Transform(samples), func() chain.Color { return chain.Green })

	got := Trace(c, len(samples))
	for i, p := range got {
		want := image.Pt(pivot.X+int(samples[i].Re), pivot.Y-int(samples[i].Im))
		// Each arm rounds to the nearest dot.
		if absInt(p.X-want.X) > len(samples) || absInt(p.Y-want.Y) > len(samples) {
			t.Fatalf("sample %d: expected near %v, got %v", i, want, p)
		}
	}
}

func TestCaptureModeWrapsTimeWithoutClearingTrail(t *testing.T) {
	c := chain.New(0, 0)
	c.Append(10, 2, chain.Red, 30, 0)

	s := New(1, 100)
	steps := int(math.Ceil(2 * math.Pi))
	for range steps {
		s.Step(c)
	}
	if s.Time() != 0 {
		t.Fatalf("expected time to wrap to 0, got %v", s.Time())
	}
	if s.Trail().Len() != steps {
		t.Fatalf("expected %d trail points, got %d", steps, s.Trail().Len())
	}
}

func TestDegenerateChainTracksHead(t *testing.T) {
	c := chain.New(7, 9)
	c.Rebuild([]fourier.Component{{Freq: 0, Amp: 0}}, func() chain.Color { return chain.Gray })
	if c.Len() != 2 {
		t.Fatalf("expected head and terminal, got %d", c.Len())
	}

	s := New(60, 10)
	s.Replay(1)
	tip := s.Step(c)
	if tip != image.Pt(7, 9) {
		t.Fatalf("expected terminal on the head, got %v", tip)
	}
}

func TestHeadOnlyChainRecordsNothing(t *testing.T) {
	s := New(60, 10)
	s.Step(chain.New(0, 0))
	if s.Trail().Len() != 0 {
		t.Fatal("expected no trail without a tip")
	}
}

func TestTraceLeavesChainInPlace(t *testing.T) {
	c, n := circleChain(image.Pt(0, 0), 50)
	before := c.Links()
	if got := len(Trace(c, n)); got != n {
		t.Fatalf("expected %d points, got %d", n, got)
	}
	if d := cmp.Diff(before, c.Links()); d != "" {
		t.Fatalf("trace moved the chain (-before +after):\n%s", d)
	}
}

func TestReplayOfEmptyTransformFallsBackToCapture(t *testing.T) {
	s := New(60, 10)
	s.Replay(0)
	if s.Mode() != CapturingUserInput {
		t.Fatalf("expected %v, got %v", CapturingUserInput, s.Mode())
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
