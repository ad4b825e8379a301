package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"polystat/internal/model"
)

var (
	// ErrMalformedPoint is returned when a point token does not match "(x;y)"
	ErrMalformedPoint = errors.New("malformed point")

	// ErrMalformedRecord is returned for a structurally invalid polygon record,
	// including a declared vertex count below 3 and a short read
	ErrMalformedRecord = errors.New("malformed polygon record")
)

// ParsePoint reads one "(x;y)" token, skipping any whitespace in front of it
func ParsePoint(r *Reader) (model.Point, error) {
	if err := r.Err(); err != nil {
		return model.Point{}, err
	}

	if err := r.skipSpace(); err != nil && !errors.Is(err, io.EOF) {
		return model.Point{}, r.fail(fmt.Errorf("%w: %w", ErrMalformedPoint, err))
	}

	p, err := parsePoint(r)
	if err != nil {
		return model.Point{}, r.fail(err)
	}
	return p, nil
}

// ParsePolygon reads one record: a vertex count N followed by exactly N
// points on the same line. The record ends after the N-th point; when only
// blanks follow it the line terminator is consumed too, otherwise the rest
// of the line is left for the next read.
//
// io.EOF is returned when the input ends before a record starts. A failed
// parse leaves the reader in its failure state and does not skip the rest
// of the line; that is up to the caller.
func ParsePolygon(r *Reader) (model.Polygon, error) {
	if err := r.Err(); err != nil {
		return model.Polygon{}, err
	}

	if err := r.skipSpace(); err != nil {
		return model.Polygon{}, r.fail(err)
	}

	line := r.Line()
	malformed := func(format string, args ...any) error {
		return r.fail(fmt.Errorf("%w at line %d: %s", ErrMalformedRecord, line, fmt.Sprintf(format, args...)))
	}

	countToken, err := r.takeWhile(isDigit)
	if err != nil {
		return model.Polygon{}, r.fail(err)
	}
	if countToken == "" {
		return model.Polygon{}, malformed("missing vertex count")
	}
	count, err := strconv.Atoi(countToken)
	if err != nil {
		return model.Polygon{}, malformed("vertex count %q: %v", countToken, err)
	}
	if count < model.MinVertices {
		return model.Polygon{}, malformed("declares %d vertices, need at least %d", count, model.MinVertices)
	}

	points := make([]model.Point, 0, min(count, 64))
	for i := 0; i < count; i++ {
		if err := r.skipBlank(); err != nil && !errors.Is(err, io.EOF) {
			return model.Polygon{}, r.fail(err)
		}
		p, err := parsePoint(r)
		if err != nil {
			return model.Polygon{}, r.fail(fmt.Errorf("%w at line %d: point %d of %d: %w",
				ErrMalformedRecord, line, i+1, count, err))
		}
		points = append(points, p)
	}

	if err := r.skipBlank(); err != nil && !errors.Is(err, io.EOF) {
		return model.Polygon{}, r.fail(err)
	}
	if b, err := r.peek(); err == nil && b == '\n' {
		if _, err := r.next(); err != nil {
			return model.Polygon{}, r.fail(err)
		}
	} else if err != nil && !errors.Is(err, io.EOF) {
		return model.Polygon{}, r.fail(err)
	}

	polygon, err := model.NewPolygon(points)
	if err != nil {
		return model.Polygon{}, malformed("%v", err)
	}
	return polygon, nil
}

// parsePoint reads "(x;y)" at the current position with no inner whitespace
func parsePoint(r *Reader) (model.Point, error) {
	if !r.expect('(') {
		return model.Point{}, fmt.Errorf("%w: expected '('", ErrMalformedPoint)
	}
	x, err := parseReal(r)
	if err != nil {
		return model.Point{}, fmt.Errorf("%w: x: %w", ErrMalformedPoint, err)
	}
	if !r.expect(';') {
		return model.Point{}, fmt.Errorf("%w: expected ';'", ErrMalformedPoint)
	}
	y, err := parseReal(r)
	if err != nil {
		return model.Point{}, fmt.Errorf("%w: y: %w", ErrMalformedPoint, err)
	}
	if !r.expect(')') {
		return model.Point{}, fmt.Errorf("%w: expected ')'", ErrMalformedPoint)
	}
	return model.Point{X: x, Y: y}, nil
}

var errEmptyNumber = errors.New("missing number")

// parseReal reads an integer or decimal literal with optional sign and exponent
func parseReal(r *Reader) (float64, error) {
	token, err := r.takeWhile(isNumberByte)
	if err != nil {
		return 0, err
	}
	if token == "" {
		return 0, errEmptyNumber
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
