// Package capture records a pointer stroke as samples relative to a pivot.
package capture

import (
	"image"

	"github.com/olivier-w/milkyway/internal/fourier"
)

// Buffer holds the samples of the current stroke. It never grows past its
// capacity; once full, further points are dropped.
type Buffer struct {
	pivot    image.Point
	points   []image.Point
	samples  []fourier.Complex
	capacity int
}

// NewBuffer creates a sample buffer that accepts up to capacity points.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{capacity: capacity}
}

// Reset discards the current stroke and starts a new one around pivot.
func (b *Buffer) Reset(pivot image.Point) {
	b.pivot = pivot
	b.points = b.points[:0]
	b.samples = b.samples[:0]
}

// Add records a raw pointer position. It reports false when the point
// repeats the previous one or the buffer is full.
func (b *Buffer) Add(p image.Point) bool {
	if len(b.points) >= b.capacity {
		return false
	}
	if n := len(b.points); n > 0 && b.points[n-1] == p {
		return false
	}
	b.points = append(b.points, p)
	b.samples = append(b.samples, fourier.Complex{
		Re: float64(p.X - b.pivot.X),
		Im: float64(b.pivot.Y - p.Y),
	})
	return true
}

// Load replaces the stroke with precomputed samples, truncated to capacity.
// A sample equal to the one before it is skipped, as in Add. The raw
// points are rebuilt from the pivot so the stroke can be drawn.
func (b *Buffer) Load(pivot image.Point, samples []fourier.Complex) {
	b.Reset(pivot)
	for _, s := range samples {
		if len(b.samples) >= b.capacity {
			break
		}
		if n := len(b.samples); n > 0 && b.samples[n-1] == s {
			continue
		}
		b.samples = append(b.samples, s)
		b.points = append(b.points, image.Pt(
			pivot.X+int(s.Re),
			pivot.Y-int(s.Im),
		))
	}
}

// Samples returns the recorded samples. The slice is owned by the buffer
// and only valid until the next Reset.
func (b *Buffer) Samples() []fourier.Complex { return b.samples }

// Points returns the raw pointer positions of the stroke.
func (b *Buffer) Points() []image.Point { return b.points }

// Len returns the number of recorded samples.
func (b *Buffer) Len() int { return len(b.samples) }

// Full reports whether the buffer has stopped accepting points.
func (b *Buffer) Full() bool { return len(b.samples) >= b.capacity }

// Capacity returns the maximum number of samples.
func (b *Buffer) Capacity() int { return b.capacity }

// Pivot returns the origin samples are measured from.
func (b *Buffer) Pivot() image.Point { return b.pivot }
