package sim

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTrailWrapsAtCapacity(t *testing.T) {
	const capacity = 5
	tr := NewTrail(capacity)
	for i := range capacity + 1 {
		tr.Push(image.Pt(i, i))
		if c := tr.Cursor(); c < 0 || c >= capacity {
			t.Fatalf("cursor %d out of range after %d pushes", c, i+1)
		}
	}
	if tr.Capacity() != capacity {
		t.Fatalf("expected capacity %d, got %d", capacity, tr.Capacity())
	}
	if tr.Cursor() != 1 {
		t.Fatalf("expected cursor 1 after capacity+1 writes, got %d", tr.Cursor())
	}
	if tr.Len() != tr.Capacity() {
		t.Fatalf("expected %d valid points, got %d", tr.Capacity(), tr.Len())
	}

	want := []image.Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}
	if d := cmp.Diff(want, tr.Points()); d != "" {
		t.Fatalf("unexpected points (-want +got):\n%s", d)
	}
}

func TestTrailReset(t *testing.T) {
	tr := NewTrail(3)
	tr.Push(image.Pt(1, 1))
	tr.Reset()
	if tr.Cursor() != 0 || tr.Len() != 0 || tr.Points() != nil {
		t.Fatal("expected empty trail after reset")
	}
}
