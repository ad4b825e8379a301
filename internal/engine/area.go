package engine

import (
	"math"

	"polystat/internal/model"
)

// Area returns the area of a polygon using the shoelace formula.
// The result does not depend on winding direction. Self-intersecting
// polygons get a deterministic but geometrically meaningless value.
func Area(p model.Polygon) float64 {
	n := p.Len()
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.At(i).Vec().Cross(p.At(j).Vec())
	}
	return 0.5 * math.Abs(sum)
}

// TotalArea returns the sum of all polygon areas
func TotalArea(polygons []model.Polygon) float64 {
	return fold(polygons, 0.0, addArea)
}
