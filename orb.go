package crossing

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// orbRect converts an orb bound into a Rect.
func orbRect(b orb.Bound) Rect {
	return Rect{b.Min.X(), b.Min.Y(), b.Max.X() - b.Min.X(), b.Max.Y() - b.Min.Y()}
}

// SegmentsFromOrb appends the segments of line strings, rings, polygons, bounds, and their collections, mapped onto the lattice. Points are ignored.
func SegmentsFromOrb(segments []Segment, g orb.Geometry, l Lattice) []Segment {
	switch g := g.(type) {
	case orb.LineString:
		segments = appendPolyline(segments, l, g)
	case orb.MultiLineString:
		for _, ls := range g {
			segments = appendPolyline(segments, l, ls)
		}
	case orb.Ring:
		segments = appendPolyline(segments, l, g)
	case orb.Polygon:
		for _, r := range g {
			segments = appendPolyline(segments, l, r)
		}
	case orb.MultiPolygon:
		for _, p := range g {
			segments = SegmentsFromOrb(segments, p, l)
		}
	case orb.Bound:
		segments = appendPolyline(segments, l, g.ToRing())
	case orb.Collection:
		for _, h := range g {
			segments = SegmentsFromOrb(segments, h, l)
		}
	}
	return segments
}

// SegmentsFromFeatures fits the features' geometries onto [-size, size] and returns their segments.
func SegmentsFromFeatures(fc *geojson.FeatureCollection, size int) []Segment {
	collection := make(orb.Collection, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry != nil {
			collection = append(collection, f.Geometry)
		}
	}
	if len(collection) == 0 {
		return []Segment{}
	}
	l := FitLattice(orbRect(collection.Bound()), size)
	return SegmentsFromOrb([]Segment{}, collection, l)
}

// ReadGeoJSON reads a GeoJSON feature collection, feature, or geometry and returns its segments fitted onto [-size, size].
func ReadGeoJSON(r io.Reader, size int) ([]Segment, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err == nil && 0 < len(fc.Features) {
		return SegmentsFromFeatures(fc, size), nil
	}
	if f, err := geojson.UnmarshalFeature(b); err == nil && f.Geometry != nil {
		fc = geojson.NewFeatureCollection().Append(f)
		return SegmentsFromFeatures(fc, size), nil
	}
	g, err := geojson.UnmarshalGeometry(b)
	if err != nil {
		return nil, fmt.Errorf("invalid GeoJSON: %w", err)
	}
	fc = geojson.NewFeatureCollection().Append(geojson.NewFeature(g.Geometry()))
	return SegmentsFromFeatures(fc, size), nil
}
