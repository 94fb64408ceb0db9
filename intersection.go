package crossing

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Intersection is a lattice point together with the segments passing through it. Segments are kept by value, so that identical input segments count as one segment and add no crossing between them.
type Intersection struct {
	Point
	Segments []Segment // sorted structurally, without duplicates
}

// NewIntersection returns an intersection at p with the given segments.
func NewIntersection(p Point, segments ...Segment) *Intersection {
	z := &Intersection{Point: p, Segments: make([]Segment, 0, len(segments))}
	for _, s := range segments {
		z.Add(s)
	}
	return z
}

// Has returns true if s passes through the intersection.
func (z *Intersection) Has(s Segment) bool {
	_, ok := slices.BinarySearchFunc(z.Segments, s, Segment.Compare)
	return ok
}

// Add adds s to the intersection if it is not already present. It returns true if s was added.
func (z *Intersection) Add(s Segment) bool {
	i, ok := slices.BinarySearchFunc(z.Segments, s, Segment.Compare)
	if ok {
		return false
	}
	z.Segments = slices.Insert(z.Segments, i, s)
	return true
}

// Len returns the number of segments passing through the intersection.
func (z *Intersection) Len() int {
	return len(z.Segments)
}

// Crossings returns the number of pairs of distinct segments that cross at the intersection.
func (z *Intersection) Crossings() int {
	n := len(z.Segments)
	return n * (n - 1) / 2
}

// Equals returns true if both intersections have the same location and the same segments.
func (z *Intersection) Equals(q *Intersection) bool {
	return z.Point == q.Point && slices.Equal(z.Segments, q.Segments)
}

func (z *Intersection) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%v:", z.Point)
	for _, s := range z.Segments {
		fmt.Fprintf(&sb, " %v", s)
	}
	return sb.String()
}

// IntersectionSet is a collection of intersections indexed by X and then Y coordinate. Adding an intersection at an existing location merges the segments.
type IntersectionSet struct {
	xs map[int]map[int]*Intersection
	n  int
}

// NewIntersectionSet returns an empty set.
func NewIntersectionSet() *IntersectionSet {
	return &IntersectionSet{
		xs: map[int]map[int]*Intersection{},
	}
}

// Add inserts z into the set, or merges its segments into the intersection already present at the same location. It returns the intersection held by the set.
func (zs *IntersectionSet) Add(z *Intersection) *Intersection {
	ys, ok := zs.xs[z.X]
	if !ok {
		ys = map[int]*Intersection{}
		zs.xs[z.X] = ys
	}
	if cur, ok := ys[z.Y]; ok {
		for _, s := range z.Segments {
			cur.Add(s)
		}
		return cur
	}
	ys[z.Y] = z
	zs.n++
	return z
}

// AddPair records that s and t intersect at p.
func (zs *IntersectionSet) AddPair(p Point, s, t Segment) *Intersection {
	if ys, ok := zs.xs[p.X]; ok {
		if cur, ok := ys[p.Y]; ok {
			cur.Add(s)
			cur.Add(t)
			return cur
		}
	}
	return zs.Add(NewIntersection(p, s, t))
}

// Get returns the intersection at p, or nil.
func (zs *IntersectionSet) Get(p Point) *Intersection {
	return zs.xs[p.X][p.Y]
}

// At returns all intersections with X coordinate x, in no particular order.
func (zs *IntersectionSet) At(x int) []*Intersection {
	ys := zs.xs[x]
	r := make([]*Intersection, 0, len(ys))
	for _, z := range ys {
		r = append(r, z)
	}
	return r
}

// Len returns the number of intersection points.
func (zs *IntersectionSet) Len() int {
	return zs.n
}

// Crossings returns the total number of crossing segment pairs over all intersection points.
func (zs *IntersectionSet) Crossings() int {
	n := 0
	for _, ys := range zs.xs {
		for _, z := range ys {
			n += z.Crossings()
		}
	}
	return n
}

// All returns all intersections sorted by location.
func (zs *IntersectionSet) All() []*Intersection {
	r := make([]*Intersection, 0, zs.n)
	for _, ys := range zs.xs {
		for _, z := range ys {
			r = append(r, z)
		}
	}
	slices.SortFunc(r, func(a, b *Intersection) int {
		return a.Point.Compare(b.Point)
	})
	return r
}

// Bounds returns the rectangle spanned by the intersection locations. It has NaN coordinates for an empty set, so that it leaves the rectangle unchanged in Rect.Add.
func (zs *IntersectionSet) Bounds() Rect {
	r := emptyRect
	for _, ys := range zs.xs {
		for _, z := range ys {
			r = r.AddPoint(float64(z.X), float64(z.Y))
		}
	}
	return r
}

// Equals returns true if both sets hold the same intersections.
func (zs *IntersectionSet) Equals(qs *IntersectionSet) bool {
	if zs.n != qs.n {
		return false
	}
	for _, z := range zs.All() {
		if q := qs.Get(z.Point); q == nil || !z.Equals(q) {
			return false
		}
	}
	return true
}

func (zs *IntersectionSet) Print(w io.Writer) {
	for _, z := range zs.All() {
		fmt.Fprintln(w, z)
	}
}

func (zs *IntersectionSet) String() string {
	sb := strings.Builder{}
	zs.Print(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}
