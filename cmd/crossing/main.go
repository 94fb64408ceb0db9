package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/tdewolff/argp"

	"github.com/tdewolff/crossing"
)

type Options struct {
	Method    string
	Format    string
	Adjust    bool
	Size      int
	Radius    int
	Threshold int
	Output    string
	Width     float64
	Quiet     bool
	Verbose   int
	Input     string
}

func main() {
	opts := Options{}
	f := argp.New("Find all intersections between line segments on the integer lattice")
	f.AddOpt(&opts.Method, "m", "method", "Method: auto, naive, or sweep")
	f.AddOpt(&opts.Format, "f", "format", "Input format: txt, geojson, or osm, by default from the file extension")
	f.AddOpt(&opts.Adjust, "a", "adjust", "Perturb segments to remove vertical segments and shared endpoints before sweeping")
	f.AddOpt(&opts.Size, "s", "size", "Half width of the lattice that GeoJSON and OSM coordinates are fitted onto")
	f.AddOpt(&opts.Radius, "r", "radius", "Count segments crossing circles of this radius around all endpoints")
	f.AddOpt(&opts.Threshold, "t", "threshold", "Number of segments from which the auto method sweeps")
	f.AddOpt(&opts.Output, "o", "output", "Draw segments and intersections to an SVG, PNG, PDF, or EPS file")
	f.AddOpt(&opts.Width, "w", "width", "Width of the output drawing in pixels (SVG, PNG) or centimeters (PDF, EPS)")
	f.AddOpt(&opts.Quiet, "q", "quiet", "Only print the totals")
	f.AddOpt(argp.Count{I: &opts.Verbose}, "v", "verbose", "Verbose logging, set twice for more verbosity")
	f.AddArg(&opts.Input, "input", "Input file, or - for stdin")
	opts.Method = "auto"
	opts.Size = crossing.Domain
	opts.Threshold = crossing.SweepThreshold
	f.Parse()

	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(opts.Verbose))
	flag.CommandLine.Parse([]string{})
	defer glog.Flush()

	if err := run(opts); err != nil {
		glog.Exitf("%v", err)
	}
}

func inputFormat(opts Options) string {
	if opts.Format != "" {
		return strings.ToLower(opts.Format)
	}
	switch strings.ToLower(filepath.Ext(opts.Input)) {
	case ".json", ".geojson":
		return "geojson"
	case ".osm", ".xml":
		return "osm"
	}
	return "txt"
}

func read(opts Options) ([]crossing.Segment, error) {
	var r io.Reader = os.Stdin
	if opts.Input != "" && opts.Input != "-" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		glog.V(1).Infof("Opened file for reading: %s", opts.Input)
	}

	switch format := inputFormat(opts); format {
	case "txt":
		return crossing.ParseSegments(r)
	case "geojson":
		return crossing.ReadGeoJSON(r, opts.Size)
	case "osm":
		return crossing.ReadOSM(r, opts.Size)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func run(opts Options) error {
	segments, err := read(opts)
	if err != nil {
		return err
	}
	glog.Infof("Read %d segments", len(segments))
	if err := crossing.ValidateDomain(segments); err != nil {
		glog.Warningf("%v, results may be wrong", err)
	}

	crossing.SweepThreshold = opts.Threshold
	if opts.Adjust {
		segments = crossing.AdjustForBO(segments)
		glog.V(1).Infof("Perturbed segments for the sweep")
	}

	t := time.Now()
	var zs *crossing.IntersectionSet
	switch opts.Method {
	case "auto":
		zs = crossing.EdgeIntersections(segments)
	case "naive":
		zs = crossing.EdgeIntersectionsNaive(segments)
	case "sweep":
		if zs, err = crossing.EdgeIntersectionsBO(segments); err != nil {
			return fmt.Errorf("%w, use --adjust or --method naive", err)
		}
	default:
		return fmt.Errorf("unknown method %q", opts.Method)
	}
	glog.V(1).Infof("Found intersections with method %s in %v", opts.Method, time.Since(t))

	if !opts.Quiet {
		for _, z := range zs.All() {
			fmt.Println(z)
		}
	}
	fmt.Printf("intersections: %d\ncrossings: %d\n", zs.Len(), zs.Crossings())

	if 0 < opts.Radius {
		centers := []crossing.Point{}
		seen := map[crossing.Point]bool{}
		for _, s := range segments {
			for _, p := range []crossing.Point{s.A, s.B} {
				if !seen[p] {
					seen[p] = true
					centers = append(centers, p)
				}
			}
		}
		fmt.Printf("vertex crossings: %d\n", crossing.VertexCrossings(segments, centers, opts.Radius))
	}

	if opts.Output != "" {
		if err := write(opts, segments, zs); err != nil {
			return err
		}
		glog.Infof("Created %s", opts.Output)
	}
	return nil
}

func write(opts Options, segments []crossing.Segment, zs *crossing.IntersectionSet) error {
	drawOpts := crossing.DefaultDrawOptions
	bounds := crossing.Bounds(segments)
	ext := strings.ToLower(filepath.Ext(opts.Output))
	if ext == ".pdf" || ext == ".eps" {
		width := opts.Width
		if width <= 0.0 {
			width = 20.0
		}
		height := width
		if 0.0 < bounds.W {
			height = width * bounds.H / bounds.W
		}
		return crossing.SavePlot(opts.Output, segments, zs, drawOpts, width, height+2.0)
	}

	if 0.0 < opts.Width && 0.0 < bounds.W {
		drawOpts.Scale = (opts.Width - 2.0*drawOpts.Margin) / bounds.W
	}
	w, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	switch ext {
	case ".svg":
		err = crossing.WriteSVG(w, segments, zs, drawOpts)
	case ".png":
		err = crossing.WritePNG(w, segments, zs, drawOpts)
	default:
		err = fmt.Errorf("unknown output format %q", ext)
	}
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
