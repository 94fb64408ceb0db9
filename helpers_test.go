package crossing

import (
	"math"
	"math/rand/v2"
)

// RandomSegments returns n non-vertical segments with distinct endpoints in [-size, size].
func RandomSegments(rng *rand.Rand, n, size int) []Segment {
	used := map[Point]bool{}
	point := func() Point {
		for {
			p := Point{rng.IntN(2*size+1) - size, rng.IntN(2*size+1) - size}
			if !used[p] {
				used[p] = true
				return p
			}
		}
	}

	segments := make([]Segment, 0, n)
	for len(segments) < n {
		a, b := point(), point()
		if a.X == b.X {
			delete(used, b)
			continue
		}
		segments = append(segments, MustSegment(a.X, a.Y, b.X, b.Y))
	}
	return segments
}

// CollinearSegments returns n non-vertical segments with distinct endpoints that lie on few lines, so that many of them overlap.
func CollinearSegments(rng *rand.Rand, n, size int) []Segment {
	dirs := []Point{{1, 0}, {1, 1}, {1, -1}, {2, 1}, {1, -2}}
	type line struct{ o, d Point }
	lines := make([]line, 1+n/8)
	for i := range lines {
		o := Point{rng.IntN(2*size+1) - size, rng.IntN(2*size+1) - size}
		lines[i] = line{o, dirs[rng.IntN(len(dirs))]}
	}

	used := map[Point]bool{}
	segments := make([]Segment, 0, n)
	for len(segments) < n {
		l := lines[rng.IntN(len(lines))]
		i, j := rng.IntN(2*size+1)-size, rng.IntN(2*size+1)-size
		a := Point{l.o.X + i*l.d.X, l.o.Y + i*l.d.Y}
		b := Point{l.o.X + j*l.d.X, l.o.Y + j*l.d.Y}
		if i == j || used[a] || used[b] {
			continue
		}
		used[a], used[b] = true, true
		segments = append(segments, MustSegment(a.X, a.Y, b.X, b.Y))
	}
	return segments
}

// Star returns n segments from center to points on a circle, all sharing the center endpoint.
func Star(center Point, n int, radius float64) []Segment {
	segments := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		p := PolarPoint(center, radius, 2.0*math.Pi*float64(i)/float64(n))
		if s, err := NewSegment(center, p); err == nil {
			segments = append(segments, s)
		}
	}
	return segments
}
