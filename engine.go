package crossing

import (
	"errors"
	"fmt"
)

// ErrOutOfDomain is returned by ValidateDomain for segments with coordinates outside [-Domain, Domain].
var ErrOutOfDomain = errors.New("coordinates out of domain")

// SweepThreshold is the number of segments from which EdgeIntersections uses the Bentley-Ottmann sweep instead of testing all pairs.
var SweepThreshold = 100

// EdgeIntersections returns all intersections between segments. Below SweepThreshold segments all pairs are tested, otherwise the segments are perturbed with AdjustForBO and swept. In the latter case the intersection locations are those of the perturbed segments, but the intersections refer to the given segments. Segments touching only at a shared endpoint are separated by the perturbation and are then not reported.
func EdgeIntersections(segments []Segment) *IntersectionSet {
	if len(segments) < SweepThreshold {
		return EdgeIntersectionsNaive(segments)
	}
	zs, err := bentleyOttmann(AdjustForBO(segments), segments)
	if err != nil {
		panic(fmt.Sprintf("bug: perturbed segments are degenerate: %v", err))
	}
	return zs
}

// EdgeIntersectionsNaive returns all intersections between segments by testing all pairs in O(n^2). Segments may share endpoints and be vertical.
func EdgeIntersectionsNaive(segments []Segment) *IntersectionSet {
	zs := NewIntersectionSet()
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if p, ok := segments[i].IntersectionWith(segments[j]); ok {
				zs.AddPair(p, segments[i], segments[j])
			}
		}
	}
	return zs
}

// EdgeIntersectionsBO returns all intersections between segments using the Bentley-Ottmann sweep. It returns ErrDuplicateEndpoint if segments share endpoints, see AdjustForBO. Vertical segments are only supported when no other segment crosses them between their endpoints' Y coordinates at the same X.
func EdgeIntersectionsBO(segments []Segment) (*IntersectionSet, error) {
	return bentleyOttmann(segments, segments)
}

// AdjustForBO returns a perturbed copy of the segments without vertical segments and without shared endpoints. Vertical segments have their upper endpoint moved one unit to the right, or their lower endpoint one unit to the left at the right edge of the domain. Endpoints colliding with an earlier endpoint are moved along Y towards the segment's other endpoint until a free lattice point is found, turning around at the edge of the domain so that segments within the domain stay within it.
func AdjustForBO(segments []Segment) []Segment {
	used := make(map[Point]bool, 2*len(segments))
	free := func(p, other Point) Point {
		dy := 1
		if other.Y < p.Y {
			dy = -1
		}
		q := p
		for used[q] {
			q.Y += dy
			if !q.InDomain() && p.InDomain() {
				dy = -dy
				q = p
			}
		}
		used[q] = true
		return q
	}

	r := make([]Segment, len(segments))
	for i, s := range segments {
		a, b := s.A, s.B
		if a.X == b.X {
			if b.X == Domain {
				a.X--
			} else {
				b.X++
			}
		}
		a = free(a, b)
		b = free(b, a)
		r[i] = Segment{a, b} // a.X < b.X
	}
	return r
}

// VertexCrossings returns the number of (segment, center) pairs for which the segment crosses the circle around the center with the given radius.
func VertexCrossings(segments []Segment, centers []Point, radius int) int {
	n := 0
	for _, s := range segments {
		for _, c := range centers {
			if 0 < s.CircleCrossings(c, radius) {
				n++
			}
		}
	}
	return n
}

// ValidateDomain returns ErrOutOfDomain for the first segment with a coordinate outside [-Domain, Domain].
func ValidateDomain(segments []Segment) error {
	for i, s := range segments {
		if !s.InDomain() {
			return fmt.Errorf("%w: segment %d %v exceeds ±%d", ErrOutOfDomain, i, s, Domain)
		}
	}
	return nil
}
