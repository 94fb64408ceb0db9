package crossing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func TestPlot(t *testing.T) {
	segments := []Segment{MustSegment(-10, -10, 10, 10), MustSegment(-10, 10, 10, -10)}
	zs := EdgeIntersectionsNaive(segments)

	p, err := Plot(segments, zs, DefaultDrawOptions)
	test.Error(t, err)
	test.String(t, p.Title.Text, "2 segments, 1 intersections, 1 crossings")

	p, err = Plot(segments, nil, DefaultDrawOptions)
	test.Error(t, err)
	test.String(t, p.Title.Text, "2 segments")

	filename := filepath.Join(t.TempDir(), "plot.svg")
	test.Error(t, SavePlot(filename, segments, zs, DefaultDrawOptions, 10.0, 10.0))
	info, err := os.Stat(filename)
	test.Error(t, err)
	test.That(t, 0 < info.Size())
}
