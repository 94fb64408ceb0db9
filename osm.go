package crossing

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/wroge/wgs84/v2"
)

// webMercator projects WGS84 longitude/latitude to web mercator (EPSG:3857) meters, so that angles and thus crossings are preserved locally.
func webMercator() orb.Projection {
	transform := wgs84.Transform(wgs84.EPSG(4326), wgs84.EPSG(3857))
	return func(p orb.Point) orb.Point {
		x, y, _ := transform(p.Lon(), p.Lat(), 0.0)
		return orb.Point{x, y}
	}
}

// SegmentsFromOSM returns the segments of the ways in o, projected to web mercator and fitted onto [-size, size].
func SegmentsFromOSM(o *osm.OSM, size int) ([]Segment, error) {
	fc, err := osmgeojson.Convert(o,
		osmgeojson.NoID(true),
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, fmt.Errorf("convert OSM: %w", err)
	}

	proj := webMercator()
	for _, f := range fc.Features {
		if f.Geometry != nil {
			f.Geometry = project.Geometry(f.Geometry, proj)
		}
	}
	return SegmentsFromFeatures(fc, size), nil
}

// ReadOSM reads OSM XML and returns the segments of its ways, see SegmentsFromOSM.
func ReadOSM(r io.Reader, size int) ([]Segment, error) {
	o := &osm.OSM{}
	if err := xml.NewDecoder(r).Decode(o); err != nil {
		return nil, fmt.Errorf("invalid OSM XML: %w", err)
	}
	return SegmentsFromOSM(o, size)
}
