package crossing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSegment is returned when a segment is constructed from two equal points.
var ErrInvalidSegment = errors.New("invalid segment")

// Segment is a line segment between two distinct lattice points. The endpoints are stored in lexicographic order, so that A is the lower (left) and B the higher (right) endpoint.
type Segment struct {
	A, B Point
}

// NewSegment returns the segment between a and b. It returns ErrInvalidSegment if a and b are equal.
func NewSegment(a, b Point) (Segment, error) {
	cmp := a.Compare(b)
	if cmp == 0 {
		return Segment{}, fmt.Errorf("%w: endpoints are equal at %v", ErrInvalidSegment, a)
	} else if 0 < cmp {
		a, b = b, a
	}
	return Segment{a, b}, nil
}

// MustSegment returns the segment (x0,y0)-(x1,y1) and panics on failure.
func MustSegment(x0, y0, x1, y1 int) Segment {
	s, err := NewSegment(Point{x0, y0}, Point{x1, y1})
	if err != nil {
		panic(err)
	}
	return s
}

// Vertical returns true if the segment is parallel to the Y axis.
func (s Segment) Vertical() bool {
	return s.A.X == s.B.X
}

// Horizontal returns true if the segment is parallel to the X axis.
func (s Segment) Horizontal() bool {
	return s.A.Y == s.B.Y
}

// Len returns the length of the segment.
func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// InDomain returns true if both endpoints lie within the coordinate domain.
func (s Segment) InDomain() bool {
	return s.A.InDomain() && s.B.InDomain()
}

// Collinear returns true if s and t lie on the same line.
func (s Segment) Collinear(t Segment) bool {
	r := s.B.Sub(s.A)
	return r.PerpDot(t.B.Sub(t.A)) == 0 && r.PerpDot(t.A.Sub(s.A)) == 0
}

// Compare orders segments structurally by their endpoints. It is unrelated to the sweep order.
func (s Segment) Compare(t Segment) int {
	if cmp := s.A.Compare(t.A); cmp != 0 {
		return cmp
	}
	return s.B.Compare(t.B)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.A, s.B)
}

// ratPoint is an exact rational point (X/D, Y/D) with D > 0.
type ratPoint struct {
	X, Y, D int64
}

func (p ratPoint) reduce() ratPoint {
	if g := gcd(gcd(abs(p.X), abs(p.Y)), p.D); 1 < g {
		p.X /= g
		p.Y /= g
		p.D /= g
	}
	return p
}

// compare orders rational points lexicographically.
func (p ratPoint) compare(q ratPoint) int {
	if cmp := cmpInt64(p.X*q.D, q.X*p.D); cmp != 0 {
		return cmp
	}
	return cmpInt64(p.Y*q.D, q.Y*p.D)
}

// Snap returns the nearest lattice point.
func (p ratPoint) Snap() Point {
	return Point{
		int(math.Round(float64(p.X) / float64(p.D))),
		int(math.Round(float64(p.Y) / float64(p.D))),
	}
}

// crossing returns the exact intersection point of s and t. Parallel segments, including collinear and overlapping ones, never intersect.
func (s Segment) crossing(t Segment) (ratPoint, bool) {
	r := s.B.Sub(s.A)
	q := t.B.Sub(t.A)
	ratio := r.PerpDot(q)
	if ratio == 0 {
		return ratPoint{}, false
	}

	// s(a) = s.A + a/ratio*r and t(b) = t.A + b/ratio*q
	w := t.A.Sub(s.A)
	a := w.PerpDot(q)
	b := w.PerpDot(r)
	if ratio < 0 {
		ratio, a, b = -ratio, -a, -b
	}
	if a < 0 || ratio < a || b < 0 || ratio < b {
		return ratPoint{}, false
	}

	// weighted average of s.A and s.B with weights ratio-a and a
	return ratPoint{
		X: int64(s.A.X)*(ratio-a) + int64(s.B.X)*a,
		Y: int64(s.A.Y)*(ratio-a) + int64(s.B.Y)*a,
		D: ratio,
	}.reduce(), true
}

// IntersectionWith returns the intersection point of s and t snapped to the nearest lattice point. It returns false if the segments are parallel or do not intersect, endpoints included. Overlapping collinear segments are not reported.
func (s Segment) IntersectionWith(t Segment) (Point, bool) {
	p, ok := s.crossing(t)
	if !ok {
		return Point{}, false
	}
	return p.Snap(), true
}

// CircleCrossings returns the number of points (0, 1, or 2) where the segment crosses the circle with given center and radius. A tangent point counts once.
func (s Segment) CircleCrossings(center Point, radius int) int {
	// |A + alpha*d - center|^2 = radius^2 is quadratic in alpha:
	// a*alpha^2 + 2*h*alpha + c = 0 with roots (-h ± sqrt(h^2-a*c))/a
	d := s.B.Sub(s.A)
	f := s.A.Sub(center)
	a := d.Dot(d)
	h := f.Dot(d)
	c := f.Dot(f) - int64(radius)*int64(radius)
	disc := h*h - a*c
	if disc < 0 {
		return 0
	}

	// bound comparisons on sqrt(disc) replace 0 <= alpha <= 1, since a > 0
	n := 0
	if sqrtGE(disc, h) && sqrtLE(disc, a+h) {
		n++ // larger root
	}
	if disc != 0 && sqrtLE(disc, -h) && sqrtGE(disc, -(a+h)) {
		n++ // smaller root
	}
	return n
}

// Contains returns true if p lies within distance eps of the segment.
func (s Segment) Contains(p Point, eps int) bool {
	if 0 < s.CircleCrossings(p, eps) {
		return true
	}

	// no crossings, so the segment is either completely inside or outside the circle
	f := s.A.Sub(p)
	return f.Dot(f) <= int64(eps)*int64(eps)
}

// CompareAt orders s and t by their Y coordinate on the vertical line at x. Ties are broken by slope, so that segments crossing at x are ordered as they are just right of x. Vertical segments are steepest and take their lower endpoint's Y. The order is only meaningful for segments that both span x, and it is not consistent with equality.
func (s Segment) CompareAt(t Segment, x int) int {
	return s.compareAt(t, int64(x), 1)
}

// compareAt compares at the rational position x = num/den, with den > 0.
func (s Segment) compareAt(t Segment, num, den int64) int {
	sy, sdx := s.yAt(num, den)
	ty, tdx := t.yAt(num, den)
	if cmp := cmpInt64(sy*tdx, ty*sdx); cmp != 0 {
		return cmp
	}
	if cmp := s.compareSlope(t); cmp != 0 {
		return cmp
	}
	return s.Compare(t)
}

// yAt returns the Y coordinate at x = num/den as the fraction n/(dx*den).
func (s Segment) yAt(num, den int64) (int64, int64) {
	dx := int64(s.B.X - s.A.X)
	if dx == 0 {
		return int64(s.A.Y) * den, 1
	}
	dy := int64(s.B.Y - s.A.Y)
	return int64(s.A.Y)*dx*den + (num-int64(s.A.X)*den)*dy, dx
}

func (s Segment) compareSlope(t Segment) int {
	sdx, tdx := int64(s.B.X-s.A.X), int64(t.B.X-t.A.X)
	if sdx == 0 || tdx == 0 {
		if sdx == tdx {
			return 0
		} else if sdx == 0 {
			return 1
		}
		return -1
	}
	sdy, tdy := int64(s.B.Y-s.A.Y), int64(t.B.Y-t.A.Y)
	return cmpInt64(sdy*tdx, tdy*sdx)
}

// SweepLine is the comparison context that orders segments along a vertical line at a moving X position. It is bound to a single status structure and must not be shared between sweeps.
type SweepLine struct {
	num, den int64
}

// NewSweepLine returns a sweep line at x.
func NewSweepLine(x int) *SweepLine {
	return &SweepLine{int64(x), 1}
}

// SetX moves the sweep line to x.
func (l *SweepLine) SetX(x int) {
	l.num, l.den = int64(x), 1
}

func (l *SweepLine) setRat(num, den int64) {
	l.num, l.den = num, den
}

// X returns the current position of the sweep line.
func (l *SweepLine) X() float64 {
	return float64(l.num) / float64(l.den)
}

// Compare orders s and t by their position on the sweep line, see Segment.CompareAt.
func (l *SweepLine) Compare(s, t Segment) int {
	return s.compareAt(t, l.num, l.den)
}

func (l *SweepLine) String() string {
	if l.den == 1 {
		return fmt.Sprintf("x=%d", l.num)
	}
	return fmt.Sprintf("x=%d/%d", l.num, l.den)
}
