package chain

import (
	"math"
	"testing"

	"github.com/olivier-w/milkyway/internal/fourier"
)

func gray() Color { return Gray }

func assertDefaultHead(t *testing.T, h Link) {
	t.Helper()
	if h.Radius != DefaultRadius || h.Freq != DefaultFreq || h.RodLength != DefaultRodLength || h.Phase != 0 || h.Color != Gray {
		t.Fatalf("expected default head, got %+v", h)
	}
}

func TestNewHasDefaultHeadAtPivot(t *testing.T) {
	c := New(40, 20)
	if c.Len() != 1 {
		t.Fatalf("expected head only, got %d links", c.Len())
	}
	h := c.Head()
	if h.X != 40 || h.Y != 20 {
		t.Fatalf("expected head at (40,20), got (%d,%d)", h.X, h.Y)
	}
	assertDefaultHead(t, h)
}

func TestRebuildOrdersByAmplitudeAndAppendsTerminal(t *testing.T) {
	samples := []fourier.Complex{{Re: 3, Im: 1}, {Re: -2, Im: 5}, {Re: 0, Im: -4}, {Re: 7, Im: 2}, {Re: 1, Im: 1}}
	cs := fourier.Transform(samples)

	c := New(10, 10)
	c.Append(1, 1, Red, 1, 0)
	c.Rebuild(cs, gray)

	if c.Len() != len(samples)+1 {
		t.Fatalf("expected %d links, got %d", len(samples)+1, c.Len())
	}
	for i := 1; i < c.Len()-2; i++ {
		if c.At(i).Radius < c.At(i+1).Radius {
			t.Fatalf("links %d and %d out of order: %v < %v", i, i+1, c.At(i).Radius, c.At(i+1).Radius)
		}
	}
	if c.Head().Radius < c.At(1).Radius {
		t.Fatal("expected head to carry the largest amplitude")
	}

	tail := c.Tail()
	if tail.Radius != 0 || tail.Freq != 0 || tail.Phase != 0 || tail.RodLength != 0 {
		t.Fatalf("expected zero terminal link, got %+v", tail)
	}
	if h := c.Head(); h.X != 10 || h.Y != 10 {
		t.Fatal("expected rebuild to keep the pivot")
	}
	if cs[0].Freq != 0 || cs[1].Freq != 1 {
		t.Fatal("expected input components to keep bin order")
	}
}

func TestRebuildUsesAmplitudeAsRodLength(t *testing.T) {
	cs := fourier.Transform([]fourier.Complex{{Re: 1, Im: 0}, {Re: 0, Im: 1}, {Re: -1, Im: 0}, {Re: 0, Im: -1}})
	c := New(0, 0)
	c.Rebuild(cs, gray)

	h := c.Head()
	if h.Freq != 1 || math.Abs(h.RodLength-1) > 1e-9 || h.RodLength != h.Radius {
		t.Fatalf("unexpected head %+v", h)
	}
}

func TestRemoveLastOnHeadOnlyResetsDefaults(t *testing.T) {
	c := New(0, 0)
	c.Rebuild([]fourier.Component{{Freq: 3, Amp: 9, Phase: 1}}, func() Color { return Violet })
	c.RemoveLast() // terminal
	if c.Len() != 1 {
		t.Fatalf("expected head only, got %d", c.Len())
	}
	if c.Head().Freq != 3 {
		t.Fatal("expected head untouched while other links existed")
	}

	c.RemoveLast()
	if c.Len() != 1 {
		t.Fatalf("expected head to survive, got %d links", c.Len())
	}
	assertDefaultHead(t, c.Head())
}

func TestManualEditsReturnToHead(t *testing.T) {
	c := New(0, 0)
	for i := range 3 {
		c.Append(float64(10+i), i-1, Blue, 40, 0)
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 links, got %d", c.Len())
	}

	c.RemoveLast()
	c.RemoveLast()
	if c.Len() != 2 || c.Tail().Radius != 10 {
		t.Fatalf("expected the first appended link at the tail, got %+v", c.Tail())
	}
	c.RemoveLast()
	if c.Len() != 1 {
		t.Fatalf("expected head only, got %d", c.Len())
	}
	assertDefaultHead(t, c.Head())
}

func TestClearDropsEverything(t *testing.T) {
	c := New(5, 5)
	c.Rebuild([]fourier.Component{{Freq: 1, Amp: 2}, {Freq: 2, Amp: 1}}, gray)
	c.Clear()
	if c.Len() != 1 {
		t.Fatalf("expected head only, got %d", c.Len())
	}
	assertDefaultHead(t, c.Head())
	if h := c.Head(); h.X != 5 || h.Y != 5 {
		t.Fatal("expected clear to keep the pivot")
	}
}

func TestLinksReturnsCopy(t *testing.T) {
	c := New(0, 0)
	links := c.Links()
	links[0].Radius = 99
	if c.Head().Radius == 99 {
		t.Fatal("expected Links to return a copy")
	}
}
