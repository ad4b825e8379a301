package parser

import (
	"errors"
	"fmt"
	"io"

	"polystat/internal/model"
)

// SkippedRecord describes a line dropped by ReadPolygons
type SkippedRecord struct {
	Line int
	Err  error
}

// Batch is the result of a lenient read of a polygon list
type Batch struct {
	Polygons []model.Polygon
	Skipped  []SkippedRecord
}

// ReadPolygons reads polygon records until the end of input.
// A malformed record is dropped together with the rest of its line and
// reading continues with the next line. Input left on a line after a
// complete record is read as the next record. Only I/O errors abort the read.
func ReadPolygons(in io.Reader) (Batch, error) {
	r := NewReader(in)
	var batch Batch

	for {
		polygon, err := ParsePolygon(r)
		switch {
		case err == nil:
			batch.Polygons = append(batch.Polygons, polygon)
		case errors.Is(err, ErrMalformedRecord):
			batch.Skipped = append(batch.Skipped, SkippedRecord{Line: r.Line(), Err: err})
			r.Clear()
			if err := r.SkipLine(); err != nil {
				return batch, fmt.Errorf("failed to skip malformed record: %w", err)
			}
		case errors.Is(err, io.EOF):
			return batch, nil
		default:
			return batch, fmt.Errorf("failed to read polygons: %w", err)
		}
	}
}
