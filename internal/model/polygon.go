package model

import (
	"errors"

	"github.com/golang/geo/r2"
	"github.com/paulmach/orb"
)

// MinVertices is the smallest vertex count a polygon may have
const MinVertices = 3

// ErrTooFewPoints is returned when a polygon would have fewer than MinVertices points
var ErrTooFewPoints = errors.New("polygon needs at least 3 points")

// Point is a vertex in the flat Cartesian plane
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec returns the point as a golang/geo planar vector
func (p Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Orb returns the point in orb's [x, y] layout
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Polygon is an ordered, immutable list of vertices.
// The order of the vertices defines the traversal direction of the boundary.
type Polygon struct {
	points []Point
}

// NewPolygon copies points into a new polygon
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < MinVertices {
		return Polygon{}, ErrTooFewPoints
	}

	copied := make([]Point, len(points))
	copy(copied, points)
	return Polygon{points: copied}, nil
}

// MustPolygon is NewPolygon for literals known to be valid
func MustPolygon(points ...Point) Polygon {
	p, err := NewPolygon(points)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of vertices
func (p Polygon) Len() int {
	return len(p.points)
}

// At returns the i-th vertex
func (p Polygon) At(i int) Point {
	return p.points[i]
}

// Points returns a copy of the vertices
func (p Polygon) Points() []Point {
	result := make([]Point, len(p.points))
	copy(result, p.points)
	return result
}

// Ring returns the boundary as a closed orb ring (first point repeated at the end)
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.points)+1)
	for _, pt := range p.points {
		ring = append(ring, pt.Orb())
	}
	if len(p.points) > 0 {
		// Close the ring
		ring = append(ring, p.points[0].Orb())
	}
	return ring
}

// Bound returns the axis-aligned bounding box of the vertices
func (p Polygon) Bound() orb.Bound {
	return p.Ring().Bound()
}

// Equal reports whether both polygons have the same vertices in the same order
func (p Polygon) Equal(other Polygon) bool {
	if len(p.points) != len(other.points) {
		return false
	}
	for i := range p.points {
		if p.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// Reverse returns a polygon with the vertex order reversed
func (p Polygon) Reverse() Polygon {
	n := len(p.points)
	rev := make([]Point, n)
	for i, pt := range p.points {
		rev[n-1-i] = pt
	}
	return Polygon{points: rev}
}
