package assetgen

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestWavePath_SampleCount(t *testing.T) {
	for _, width := range []int{10, 240, 409} {
		points := WavePath(width, 40, 0.35, 1.5, 0)
		if len(points) != width+1 {
			t.Errorf("expected %d samples for width %d, got %d", width+1, width, len(points))
		}
		if points[0].X != 0 || points[width].X != float64(width) {
			t.Errorf("samples expected to cover x from 0 to %d inclusive", width)
		}
	}
}

func TestWavePath_Symmetry(t *testing.T) {
	const (
		width  = 100
		height = 40
	)
	points := WavePath(width, height, 0.3, 1, 0)

	// Over a full period, y(x) and y(width-x) mirror around height/2.
	for x := 0; x <= width; x++ {
		sum := points[x].Y + points[width-x].Y
		if math.Abs(sum-float64(height)) > 1e-6 {
			t.Fatalf("wave not symmetric around the midline at x=%d: y+y' = %f", x, sum)
		}
	}
}

func TestWavePath_FlatLine(t *testing.T) {
	const height = 40
	points := WavePath(50, height, 0, 2, 1)

	for _, p := range points {
		if math.Abs(p.Y-height/2) > epsilon {
			t.Fatalf("zero amplitude expected a flat line at y=%d, got y=%f", height/2, p.Y)
		}
	}
}

func TestGearPolygon(t *testing.T) {
	const (
		cx, cy = 12.0, 12.0
		outer  = 9.6
		inner  = 6.0
		teeth  = 8
	)
	points := GearPolygon(cx, cy, outer, inner, teeth)

	if len(points) != 2*teeth {
		t.Fatalf("expected %d vertices, got %d", 2*teeth, len(points))
	}
	for i, p := range points {
		want := outer
		if i%2 != 0 {
			want = inner
		}
		dist := math.Hypot(p.X-cx, p.Y-cy)
		if math.Abs(dist-want) > epsilon {
			t.Errorf("vertex %d expected at radius %f, got %f", i, want, dist)
		}
	}
}
