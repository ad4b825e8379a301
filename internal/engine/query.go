package engine

import (
	"errors"
	"fmt"

	"polystat/internal/model"
)

// ErrInvalidQuery is returned when a query has no defined result for its input
var ErrInvalidQuery = errors.New("invalid query")

// fold applies fn left to right over polygons, starting from seed
func fold[T any](polygons []model.Polygon, seed T, fn func(T, model.Polygon) T) T {
	acc := seed
	for _, p := range polygons {
		acc = fn(acc, p)
	}
	return acc
}

// sumAreaWhere sums the areas of the polygons accepted by keep
func sumAreaWhere(polygons []model.Polygon, keep func(model.Polygon) bool) float64 {
	return fold(polygons, 0.0, func(acc float64, p model.Polygon) float64 {
		if !keep(p) {
			return acc
		}
		return addArea(acc, p)
	})
}

func addArea(acc float64, p model.Polygon) float64 {
	return acc + Area(p)
}

func isEven(p model.Polygon) bool {
	return p.Len()%2 == 0
}

func isOdd(p model.Polygon) bool {
	return !isEven(p)
}

// AreaEven sums the areas of polygons with an even vertex count
func AreaEven(polygons []model.Polygon) float64 {
	return sumAreaWhere(polygons, isEven)
}

// AreaOdd sums the areas of polygons with an odd vertex count
func AreaOdd(polygons []model.Polygon) float64 {
	return sumAreaWhere(polygons, isOdd)
}

// AreaMean returns the average polygon area
func AreaMean(polygons []model.Polygon) (float64, error) {
	if len(polygons) == 0 {
		return 0, fmt.Errorf("%w: mean area of an empty collection", ErrInvalidQuery)
	}
	return TotalArea(polygons) / float64(len(polygons)), nil
}

// AreaVertexes sums the areas of polygons with exactly n vertices
func AreaVertexes(polygons []model.Polygon, n int) (float64, error) {
	if n < model.MinVertices {
		return 0, fmt.Errorf("%w: vertex count %d is below %d", ErrInvalidQuery, n, model.MinVertices)
	}
	return sumAreaWhere(polygons, func(p model.Polygon) bool {
		return p.Len() == n
	}), nil
}

// MaxArea returns the largest polygon area
func MaxArea(polygons []model.Polygon) (float64, error) {
	if len(polygons) == 0 {
		return 0, fmt.Errorf("%w: max area of an empty collection", ErrInvalidQuery)
	}
	return fold(polygons[1:], Area(polygons[0]), func(acc float64, p model.Polygon) float64 {
		return max(acc, Area(p))
	}), nil
}

// MinArea returns the smallest polygon area
func MinArea(polygons []model.Polygon) (float64, error) {
	if len(polygons) == 0 {
		return 0, fmt.Errorf("%w: min area of an empty collection", ErrInvalidQuery)
	}
	return fold(polygons[1:], Area(polygons[0]), func(acc float64, p model.Polygon) float64 {
		return min(acc, Area(p))
	}), nil
}

// MaxVertexes returns the largest vertex count
func MaxVertexes(polygons []model.Polygon) (int, error) {
	if len(polygons) == 0 {
		return 0, fmt.Errorf("%w: max vertexes of an empty collection", ErrInvalidQuery)
	}
	return fold(polygons[1:], polygons[0].Len(), func(acc int, p model.Polygon) int {
		return max(acc, p.Len())
	}), nil
}

// MinVertexes returns the smallest vertex count
func MinVertexes(polygons []model.Polygon) (int, error) {
	if len(polygons) == 0 {
		return 0, fmt.Errorf("%w: min vertexes of an empty collection", ErrInvalidQuery)
	}
	return fold(polygons[1:], polygons[0].Len(), func(acc int, p model.Polygon) int {
		return min(acc, p.Len())
	}), nil
}
