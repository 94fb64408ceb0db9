package crossing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestNewSegment(t *testing.T) {
	s, err := NewSegment(Point{5, 0}, Point{0, 0})
	test.Error(t, err)
	test.T(t, s, Segment{Point{0, 0}, Point{5, 0}})

	s, err = NewSegment(Point{0, 5}, Point{0, -5})
	test.Error(t, err)
	test.T(t, s, Segment{Point{0, -5}, Point{0, 5}})
	test.That(t, s.Vertical())
	test.That(t, !s.Horizontal())
	test.Float(t, s.Len(), 10.0)
	test.T(t, s.String(), "(0,-5)-(0,5)")

	_, err = NewSegment(Point{3, 3}, Point{3, 3})
	test.That(t, errors.Is(err, ErrInvalidSegment), err)

	test.T(t, MustSegment(1, 1, 0, 0), MustSegment(0, 0, 1, 1))
}

func TestSegmentIntersectionWith(t *testing.T) {
	var tts = []struct {
		s, t Segment
		ok   bool
		p    Point
	}{
		{MustSegment(-100, 100, 100, -100), MustSegment(-100, -100, 100, 100), true, Point{0, 0}},
		{MustSegment(0, 0, 10, 10), MustSegment(0, 10, 10, 0), true, Point{5, 5}},
		{MustSegment(0, 0, 10, 0), MustSegment(5, -5, 5, 5), true, Point{5, 0}},
		{MustSegment(0, 0, 3, 1), MustSegment(0, 1, 3, 0), true, Point{2, 1}}, // at (1.5,0.5)
		{MustSegment(0, 0, 7, 3), MustSegment(0, 3, 7, 0), true, Point{4, 2}}, // at (3.5,1.5)

		// endpoints are included
		{MustSegment(0, 0, 10, 0), MustSegment(10, 0, 20, 5), true, Point{10, 0}},
		{MustSegment(0, 0, 10, 0), MustSegment(4, 0, 6, 8), true, Point{4, 0}},
		{MustSegment(0, 0, 10, 10), MustSegment(0, 0, 10, 0), true, Point{0, 0}},

		// no intersection
		{MustSegment(0, 0, 10, 0), MustSegment(11, -5, 11, 5), false, Point{}},
		{MustSegment(0, 0, 1, 1), MustSegment(5, 0, 6, -3), false, Point{}},
		{MustSegment(0, 0, 10, 0), MustSegment(4, 1, 6, 8), false, Point{}},

		// parallel and collinear
		{MustSegment(0, 0, 10, 0), MustSegment(0, 1, 10, 1), false, Point{}},
		{MustSegment(0, 0, 10, 0), MustSegment(5, 0, 15, 0), false, Point{}},
		{MustSegment(0, 0, 10, 10), MustSegment(0, 0, 10, 10), false, Point{}},
		{MustSegment(0, 0, 10, 10), MustSegment(10, 10, 20, 20), false, Point{}},
		{MustSegment(0, -5, 0, 5), MustSegment(0, 0, 0, 10), false, Point{}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p, ok := tt.s.IntersectionWith(tt.t)
			test.T(t, ok, tt.ok)
			test.T(t, p, tt.p)

			// commutative
			p, ok = tt.t.IntersectionWith(tt.s)
			test.T(t, ok, tt.ok)
			test.T(t, p, tt.p)
		})
	}
}

func TestSegmentCrossing(t *testing.T) {
	p, ok := MustSegment(0, 0, 3, 1).crossing(MustSegment(0, 1, 3, 0))
	test.That(t, ok)
	test.T(t, p, ratPoint{3, 1, 2})

	q, ok := MustSegment(0, 1, 3, 0).crossing(MustSegment(0, 0, 3, 1))
	test.That(t, ok)
	test.T(t, q, p)

	p, ok = MustSegment(-100, 100, 100, -100).crossing(MustSegment(-100, -100, 100, 100))
	test.That(t, ok)
	test.T(t, p, ratPoint{0, 0, 1})
}

func TestSegmentCircleCrossings(t *testing.T) {
	var tts = []struct {
		s      Segment
		center Point
		radius int
		n      int
	}{
		{MustSegment(-10, 20, 10, 20), Point{0, 0}, 5, 0}, // outside
		{MustSegment(20, 20, 30, -10), Point{0, 0}, 5, 0}, // outside, line misses
		{MustSegment(6, 0, 10, 0), Point{0, 0}, 5, 0},     // outside, line crosses
		{MustSegment(-1, 0, 1, 0), Point{0, 0}, 5, 0},     // inside
		{MustSegment(0, 0, 10, 0), Point{0, 0}, 5, 1},     // one endpoint inside
		{MustSegment(1, 1, -9, -9), Point{0, 0}, 5, 1},    // one endpoint inside
		{MustSegment(-10, 0, 10, 0), Point{0, 0}, 5, 2},   // chord
		{MustSegment(0, -10, 0, 10), Point{0, 0}, 5, 2},   // vertical chord
		{MustSegment(-7, -6, 9, 5), Point{1, 0}, 5, 2},    // slanted chord
		{MustSegment(-10, 5, 10, 5), Point{0, 0}, 5, 1},   // tangent
		{MustSegment(5, -10, 5, -1), Point{0, 0}, 5, 0},   // tangent point outside segment
		{MustSegment(5, 0, 10, 0), Point{0, 0}, 5, 1},     // endpoint on circle
		{MustSegment(-5, 0, 5, 0), Point{0, 0}, 5, 2},     // both endpoints on circle
		{MustSegment(3, 4, 3, 9), Point{0, 0}, 5, 1},      // endpoint on circle
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.s.CircleCrossings(tt.center, tt.radius), tt.n)

			// independent of the order of the endpoints
			r := Segment{tt.s.B, tt.s.A}
			test.T(t, r.CircleCrossings(tt.center, tt.radius), tt.n)
		})
	}
}

func TestSegmentContains(t *testing.T) {
	s := MustSegment(0, 0, 10, 0)
	test.That(t, s.Contains(Point{5, 0}, 0))
	test.That(t, s.Contains(Point{5, 1}, 1))
	test.That(t, s.Contains(Point{1, 0}, 20))
	test.That(t, s.Contains(Point{12, 0}, 2))
	test.That(t, !s.Contains(Point{5, 3}, 2))
	test.That(t, !s.Contains(Point{13, 0}, 2))
}

func TestSegmentCollinear(t *testing.T) {
	s := MustSegment(-2, -3, 3, 2)
	test.That(t, s.Collinear(s))
	test.That(t, s.Collinear(MustSegment(-3, -4, -1, -2)))
	test.That(t, s.Collinear(MustSegment(10, 11, 20, 21)))
	test.That(t, !s.Collinear(MustSegment(-3, -3, 2, 2))) // parallel
	test.That(t, !s.Collinear(MustSegment(-2, -3, 3, 3)))
	test.That(t, MustSegment(0, -5, 0, 5).Collinear(MustSegment(0, 10, 0, 20)))
}

func TestSegmentCompareAt(t *testing.T) {
	s := MustSegment(0, 0, 10, 10)
	u := MustSegment(0, 10, 10, 0)
	test.T(t, s.CompareAt(u, 2), -1)
	test.T(t, u.CompareAt(s, 2), 1)
	test.T(t, s.CompareAt(u, 8), 1)

	// equal Y, ordered by slope as just right of the crossing
	test.T(t, s.CompareAt(u, 5), 1)
	test.T(t, u.CompareAt(s, 5), -1)

	// order is not consistent with equality
	test.T(t, s.CompareAt(MustSegment(5, 5, 6, 6), 5), -1)
	test.That(t, s != MustSegment(5, 5, 6, 6))
	test.T(t, s.CompareAt(s, 3), 0)

	// vertical segments are steepest
	v := MustSegment(5, -5, 5, 5)
	h := MustSegment(0, -5, 10, -5)
	test.T(t, v.CompareAt(h, 5), 1)
	test.T(t, h.CompareAt(v, 5), -1)

	line := NewSweepLine(2)
	test.T(t, line.Compare(s, u), -1)
	line.SetX(8)
	test.T(t, line.Compare(s, u), 1)
	test.Float(t, line.X(), 8.0)
	line.setRat(9, 2)
	test.T(t, line.Compare(s, u), -1)
	test.T(t, line.String(), "x=9/2")
}
