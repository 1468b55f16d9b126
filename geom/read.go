package geom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPoints parses one "x,y,z" record per line from r.
//
// Blank lines are skipped and surrounding whitespace is ignored, both for the
// line and for each field. Any other deviation returns ErrMalformedRecord
// wrapped with the 1-based line number. Point order follows line order.
func ReadPoints(r io.Reader) ([]Point, error) {
	var (
		points []Point
		sc     = bufio.NewScanner(r)
		line   int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("geom: read points: %w", err)
	}

	return points, nil
}

func parseRecord(text string) (Point, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(fields))
	}
	var xyz [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w: field %d: %v", ErrMalformedRecord, i+1, err)
		}
		xyz[i] = v
	}

	return Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
