package crossing

import (
	"fmt"
	"math"
)

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func cmpInt64(a, b int64) int {
	if a < b {
		return -1
	} else if b < a {
		return 1
	}
	return 0
}

// sqrtGE returns true if sqrt(d) >= k for d >= 0.
func sqrtGE(d, k int64) bool {
	return k <= 0 || k*k <= d
}

// sqrtLE returns true if sqrt(d) <= k for d >= 0.
func sqrtLE(d, k int64) bool {
	return 0 <= k && d <= k*k
}

////////////////////////////////////////////////////////////////

// Rect is a floating point rectangle, used to fit geographic coordinates onto the lattice and to lay out drawings.
type Rect struct {
	X, Y, W, H float64
}

// Bounds returns the rectangle spanned by the endpoints of the segments.
func Bounds(segments []Segment) Rect {
	if len(segments) == 0 {
		return Rect{}
	}
	r := emptyRect
	for _, s := range segments {
		r = r.AddPoint(float64(s.A.X), float64(s.A.Y))
		r = r.AddPoint(float64(s.B.X), float64(s.B.Y))
	}
	return r
}

// AddPoint returns the rectangle extended to include (x,y).
func (r Rect) AddPoint(x, y float64) Rect {
	if math.IsNaN(r.X) {
		return Rect{x, y, 0.0, 0.0}
	}
	x0 := math.Min(r.X, x)
	y0 := math.Min(r.Y, y)
	x1 := math.Max(r.X+r.W, x)
	y1 := math.Max(r.Y+r.H, y)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Add returns the union of r and q.
func (r Rect) Add(q Rect) Rect {
	if math.IsNaN(q.X) {
		return r
	} else if math.IsNaN(r.X) {
		return q
	}
	return r.AddPoint(q.X, q.Y).AddPoint(q.X+q.W, q.Y+q.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// emptyRect is the starting value for accumulating bounds with AddPoint.
var emptyRect = Rect{math.NaN(), math.NaN(), 0.0, 0.0}
