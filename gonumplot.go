package crossing

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot returns a gonum plot with the segments as lines and the intersections as scatter points. Save it with plot.Save, the file extension selects the format (eps, jpg, pdf, png, svg, tif).
func Plot(segments []Segment, zs *IntersectionSet, opts DrawOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d segments", len(segments))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, s := range segments {
		line, err := plotter.NewLine(plotter.XYs{
			{X: float64(s.A.X), Y: float64(s.A.Y)},
			{X: float64(s.B.X), Y: float64(s.B.Y)},
		})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = opts.SegmentColor
		line.LineStyle.Width = vg.Points(opts.StrokeWidth)
		p.Add(line)
	}

	if zs != nil && 0 < zs.Len() {
		p.Title.Text += fmt.Sprintf(", %d intersections, %d crossings", zs.Len(), zs.Crossings())

		xys := make(plotter.XYs, 0, zs.Len())
		for _, z := range zs.All() {
			xys = append(xys, plotter.XY{X: float64(z.X), Y: float64(z.Y)})
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = opts.IntersectionColor
		scatter.GlyphStyle.Radius = vg.Points(opts.Radius)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}
	return p, nil
}

// SavePlot plots the segments and intersections to filename with the given size in centimeters.
func SavePlot(filename string, segments []Segment, zs *IntersectionSet, opts DrawOptions, width, height float64) error {
	p, err := Plot(segments, zs, opts)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, filename)
}
