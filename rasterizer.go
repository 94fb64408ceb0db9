package crossing

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// circleSegments is the number of polygon edges used to rasterize intersection markers.
const circleSegments = 16

// Rasterize draws the segments and the intersections onto a new image.
func Rasterize(segments []Segment, zs *IntersectionSet, opts DrawOptions) *image.RGBA {
	f := newFrame(segments, zs, opts)
	width, height := f.size()
	w, h := int(math.Ceil(width)), int(math.Ceil(height))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// segments are drawn one at a time, overlapping quads of opposite orientation would cancel out
	ras := vector.NewRasterizer(w, h)
	src := image.NewUniform(opts.SegmentColor)
	hw := math.Max(opts.StrokeWidth, 0.5) / 2.0
	for _, s := range segments {
		x0, y0 := f.pos(s.A)
		x1, y1 := f.pos(s.B)
		dx, dy := x1-x0, y1-y0
		d := math.Hypot(dx, dy)
		if d == 0.0 {
			continue
		}
		nx, ny := -dy/d*hw, dx/d*hw
		ras.MoveTo(float32(x0+nx), float32(y0+ny))
		ras.LineTo(float32(x1+nx), float32(y1+ny))
		ras.LineTo(float32(x1-nx), float32(y1-ny))
		ras.LineTo(float32(x0-nx), float32(y0-ny))
		ras.ClosePath()
		ras.Draw(img, img.Bounds(), src, image.Point{})
		ras.Reset(w, h)
	}

	if zs != nil && 0 < zs.Len() {
		for _, z := range zs.All() {
			cx, cy := f.pos(z.Point)
			ras.MoveTo(float32(cx+opts.Radius), float32(cy))
			for i := 1; i < circleSegments; i++ {
				sin, cos := math.Sincos(2.0 * math.Pi * float64(i) / circleSegments)
				ras.LineTo(float32(cx+opts.Radius*cos), float32(cy+opts.Radius*sin))
			}
			ras.ClosePath()
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(opts.IntersectionColor), image.Point{})
	}
	return img
}

// WritePNG draws the segments and the intersections as a PNG image.
func WritePNG(w io.Writer, segments []Segment, zs *IntersectionSet, opts DrawOptions) error {
	return png.Encode(w, Rasterize(segments, zs, opts))
}
