package sim

import "image"

// Trail is a fixed-capacity ring of traced positions. It holds the most
// recent path, not a growing history.
type Trail struct {
	buf    []image.Point
	cursor int // next write position
	len    int // valid points
}

// NewTrail creates a trail ring with the given capacity.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]image.Point, capacity)}
}

// Push writes p at the cursor and advances it, wrapping at capacity.
func (t *Trail) Push(p image.Point) {
	t.buf[t.cursor] = p
	t.cursor = (t.cursor + 1) % len(t.buf)
	if t.len < len(t.buf) {
		t.len++
	}
}

// Points returns the valid points, oldest first.
func (t *Trail) Points() []image.Point {
	if t.len == 0 {
		return nil
	}
	out := make([]image.Point, t.len)
	start := (t.cursor - t.len + len(t.buf)) % len(t.buf)
	for i := range t.len {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Reset rewinds the cursor so the next revolution overwrites the trace.
func (t *Trail) Reset() {
	t.cursor = 0
	t.len = 0
}

// Cursor returns the next write position, always in [0, Capacity).
func (t *Trail) Cursor() int { return t.cursor }

// Len returns the number of valid points.
func (t *Trail) Len() int { return t.len }

// Capacity returns the ring size.
func (t *Trail) Capacity() int { return len(t.buf) }
