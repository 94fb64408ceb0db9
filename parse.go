package crossing

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func parseInt(b []byte) (int, int) {
	i := skipCommaWhitespace(b)
	n, m := strconv.ParseInt(b[i:])
	if m == 0 {
		return 0, 0
	}
	return int(n), i + m
}

// ParseSegment parses a segment from four integers "x0 y0 x1 y1", separated by whitespace or commas.
func ParseSegment(b []byte) (Segment, error) {
	var coords [4]int
	i := 0
	for j := range coords {
		n, m := parseInt(b[i:])
		if m == 0 {
			return Segment{}, fmt.Errorf("expected integer at column %d", i+skipCommaWhitespace(b[i:])+1)
		}
		coords[j] = n
		i += m
	}
	if i += skipCommaWhitespace(b[i:]); i < len(b) {
		return Segment{}, fmt.Errorf("unexpected %q at column %d", b[i:], i+1)
	}
	return NewSegment(Point{coords[0], coords[1]}, Point{coords[2], coords[3]})
}

// ParseSegments reads one segment per line, see ParseSegment. Empty lines and lines starting with # are skipped.
func ParseSegments(r io.Reader) ([]Segment, error) {
	segments := []Segment{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		b = b[skipCommaWhitespace(b):]
		if len(b) == 0 || b[0] == '#' {
			continue
		}
		s, err := ParseSegment(b)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		segments = append(segments, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return segments, nil
}

// WriteSegments writes one segment per line in the format read by ParseSegments.
func WriteSegments(w io.Writer, segments []Segment) error {
	bw := bufio.NewWriter(w)
	for _, s := range segments {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", s.A.X, s.A.Y, s.B.X, s.B.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
