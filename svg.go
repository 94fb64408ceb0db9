package crossing

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

// DrawOptions styles the drawings of segments and their intersections.
type DrawOptions struct {
	Scale             float64 // pixels per lattice unit
	Margin            float64 // in pixels
	StrokeWidth       float64 // in pixels
	Radius            float64 // radius of intersection markers in pixels
	SegmentColor      color.RGBA
	IntersectionColor color.RGBA
}

// DefaultDrawOptions draws black segments with red intersection markers.
var DefaultDrawOptions = DrawOptions{
	Scale:             1.0,
	Margin:            10.0,
	StrokeWidth:       1.0,
	Radius:            3.0,
	SegmentColor:      color.RGBA{0, 0, 0, 255},
	IntersectionColor: color.RGBA{220, 20, 60, 255},
}

// frame maps lattice coordinates to image coordinates with the Y axis pointing down.
type frame struct {
	bounds Rect
	opts   DrawOptions
}

func newFrame(segments []Segment, zs *IntersectionSet, opts DrawOptions) frame {
	bounds := Bounds(segments)
	if zs != nil {
		// perturbed intersections may lie outside the segments' bounds
		bounds = bounds.Add(zs.Bounds())
	}
	return frame{bounds, opts}
}

func (f frame) size() (float64, float64) {
	return f.bounds.W*f.opts.Scale + 2.0*f.opts.Margin, f.bounds.H*f.opts.Scale + 2.0*f.opts.Margin
}

func (f frame) pos(p Point) (float64, float64) {
	x := (float64(p.X)-f.bounds.X)*f.opts.Scale + f.opts.Margin
	y := (f.bounds.Y+f.bounds.H-float64(p.Y))*f.opts.Scale + f.opts.Margin
	return x, y
}

func toCSSColor(c color.RGBA) string {
	if c.A == 255 {
		return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B})
	} else if c.A == 0 {
		return "none"
	}
	a := float64(c.A) / 255.0
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", int(float64(c.R)/a), int(float64(c.G)/a), int(float64(c.B)/a), strconv.FormatFloat(a, 'g', 4, 64))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteSVG draws the segments and the intersections as a minified SVG image.
func WriteSVG(w io.Writer, segments []Segment, zs *IntersectionSet, opts DrawOptions) error {
	f := newFrame(segments, zs, opts)
	width, height := f.size()

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="0 0 %s %s">`, num(width), num(height), num(width), num(height))
	fmt.Fprintf(buf, `<g stroke="%s" stroke-width="%s" stroke-linecap="round" fill="none">`, toCSSColor(opts.SegmentColor), num(opts.StrokeWidth))
	for _, s := range segments {
		x0, y0 := f.pos(s.A)
		x1, y1 := f.pos(s.B)
		fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`, num(x0), num(y0), num(x1), num(y1))
	}
	fmt.Fprintf(buf, `</g>`)
	if zs != nil {
		fmt.Fprintf(buf, `<g fill="%s">`, toCSSColor(opts.IntersectionColor))
		for _, z := range zs.All() {
			x, y := f.pos(z.Point)
			fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s"><title>%v</title></circle>`, num(x), num(y), num(opts.Radius), z)
		}
		fmt.Fprintf(buf, `</g>`)
	}
	fmt.Fprintf(buf, `</svg>`)

	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)
	return m.Minify("image/svg+xml", w, buf)
}
