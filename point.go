package crossing

import (
	"fmt"
	"math"
)

// Domain is the coordinate bound for which intersection and circle computations are exact in 64-bit integer arithmetic. Coordinates must lie within [-Domain, Domain].
var Domain = 1000

// Point is a point on the integer lattice.
type Point struct {
	X, Y int
}

// PolarPoint returns the lattice point nearest to origin plus the polar coordinate (radius, theta), with theta in radians.
func PolarPoint(origin Point, radius, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		origin.X + int(math.Round(radius*cos)),
		origin.Y + int(math.Round(radius*sin)),
	}
}

// Barycenter returns the lattice point nearest to alpha*a + (1-alpha)*b.
func Barycenter(a, b Point, alpha float64) Point {
	return Point{
		int(math.Round(alpha*float64(a.X) + (1.0-alpha)*float64(b.X))),
		int(math.Round(alpha*float64(a.Y) + (1.0-alpha)*float64(b.Y))),
	}
}

// Interpolate returns the lattice point nearest to (1-t)*p + t*q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Barycenter(q, p, t)
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add adds q to p.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) int64 {
	return int64(p.X)*int64(q.X) + int64(p.Y)*int64(q.Y)
}

// PerpDot returns the perp dot product (2-D cross product) of p and q.
func (p Point) PerpDot(q Point) int64 {
	return int64(p.X)*int64(q.Y) - int64(p.Y)*int64(q.X)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// Compare orders points lexicographically, first by X and then by Y. It returns -1, 0, or +1.
func (p Point) Compare(q Point) int {
	if p.X < q.X {
		return -1
	} else if q.X < p.X {
		return 1
	} else if p.Y < q.Y {
		return -1
	} else if q.Y < p.Y {
		return 1
	}
	return 0
}

// Less returns true if p comes before q in lexicographic order.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// InDomain returns true if both coordinates lie within [-Domain, Domain].
func (p Point) InDomain() bool {
	return -Domain <= p.X && p.X <= Domain && -Domain <= p.Y && p.Y <= Domain
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
