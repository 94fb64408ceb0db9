package crossing

import "math"

// Lattice maps floating point coordinates onto the integer lattice by translating and scaling.
type Lattice struct {
	CX, CY float64 // center of the source coordinates, mapped to the origin
	Scale  float64
}

// FitLattice returns the lattice that maps bounds onto [-size, size] in both directions while keeping the aspect ratio.
func FitLattice(bounds Rect, size int) Lattice {
	scale := 1.0
	if d := math.Max(bounds.W, bounds.H); 0.0 < d {
		scale = 2.0 * float64(size) / d
	}
	return Lattice{
		CX:    bounds.X + bounds.W/2.0,
		CY:    bounds.Y + bounds.H/2.0,
		Scale: scale,
	}
}

// Point returns the lattice point nearest to (x,y).
func (l Lattice) Point(x, y float64) Point {
	return Point{
		int(math.Round((x - l.CX) * l.Scale)),
		int(math.Round((y - l.CY) * l.Scale)),
	}
}

// Inverse returns the source coordinates of lattice point p.
func (l Lattice) Inverse(p Point) (float64, float64) {
	return float64(p.X)/l.Scale + l.CX, float64(p.Y)/l.Scale + l.CY
}

// appendPolyline appends the segments between consecutive coordinates. Segments that collapse onto a single lattice point are skipped.
func appendPolyline[P ~[2]float64](segments []Segment, l Lattice, coords []P) []Segment {
	for i := 1; i < len(coords); i++ {
		a := l.Point(coords[i-1][0], coords[i-1][1])
		b := l.Point(coords[i][0], coords[i][1])
		if s, err := NewSegment(a, b); err == nil {
			segments = append(segments, s)
		}
	}
	return segments
}
