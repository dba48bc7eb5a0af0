package assetgen

import (
	"math"
	"strings"

	"github.com/insightwave/assetgen/svg"
)

// Point is a single (x, y) coordinate of a polyline path or polygon outline.
type Point struct {
	X, Y float64
}

// WavePath samples a sine wave at unit spacing across the given width,
// returning width+1 points covering every integer x from 0 to width.
// The amplitude is a fraction of the height, the frequency is the number of
// full cycles across the width and the phase shifts the waveform.
func WavePath(width, height int, amplitude, frequency, phase float64) []Point {
	points := make([]Point, 0, width+1)
	for x := 0; x <= width; x++ {
		y := float64(height)/2 + float64(height)*amplitude*
			math.Sin(float64(x)/float64(width)*2*math.Pi*frequency+phase)
		points = append(points, Point{X: float64(x), Y: y})
	}
	return points
}

// GearPolygon produces a symmetric gear silhouette around the center point:
// 2*teeth vertices at equally spaced angles, alternating between the outer
// and the inner radius.
func GearPolygon(cx, cy, outerRadius, innerRadius float64, teeth int) []Point {
	points := make([]Point, 0, 2*teeth)
	for i := 0; i < 2*teeth; i++ {
		angle := float64(i) * math.Pi / float64(teeth)
		radius := outerRadius
		if i%2 != 0 {
			radius = innerRadius
		}
		points = append(points, Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return points
}

// polylineData serializes a point sequence into SVG path data, translating
// every point by (dx, dy).
func polylineData(points []Point, dx, dy float64) string {
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(svg.Ftoa(p.X + dx))
		sb.WriteString(",")
		sb.WriteString(svg.Ftoa(p.Y + dy))
	}
	return sb.String()
}

// polygonPoints serializes a point sequence into an SVG polygon point list.
func polygonPoints(points []Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(svg.Ftoa(p.X))
		sb.WriteString(",")
		sb.WriteString(svg.Ftoa(p.Y))
	}
	return sb.String()
}
