package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"polystat/internal/engine"
	"polystat/internal/model"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Render for an unsupported format
var ErrUnknownFormat = errors.New("unknown report format")

// Extent is a bounding box in the plane
type Extent struct {
	Min model.Point `json:"min" yaml:"min"`
	Max model.Point `json:"max" yaml:"max"`
}

// Summary holds every statistic for one collection.
// Statistics undefined for an empty collection are nil.
type Summary struct {
	Polygons    int             `json:"polygons" yaml:"polygons"`
	TotalArea   float64         `json:"total_area" yaml:"total_area"`
	AreaEven    float64         `json:"area_even" yaml:"area_even"`
	AreaOdd     float64         `json:"area_odd" yaml:"area_odd"`
	AreaMean    *float64        `json:"area_mean,omitempty" yaml:"area_mean,omitempty"`
	MaxArea     *float64        `json:"max_area,omitempty" yaml:"max_area,omitempty"`
	MinArea     *float64        `json:"min_area,omitempty" yaml:"min_area,omitempty"`
	MaxVertexes *int            `json:"max_vertexes,omitempty" yaml:"max_vertexes,omitempty"`
	MinVertexes *int            `json:"min_vertexes,omitempty" yaml:"min_vertexes,omitempty"`
	ByVertexes  map[int]float64 `json:"area_by_vertexes,omitempty" yaml:"area_by_vertexes,omitempty"`
	Bounds      *Extent         `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}

// Summarize computes all statistics for polygons
func Summarize(polygons []model.Polygon) Summary {
	s := Summary{
		Polygons:  len(polygons),
		TotalArea: engine.TotalArea(polygons),
		AreaEven:  engine.AreaEven(polygons),
		AreaOdd:   engine.AreaOdd(polygons),
	}
	if len(polygons) == 0 {
		return s
	}

	s.AreaMean = valueOrNil[float64](engine.AreaMean(polygons))
	s.MaxArea = valueOrNil[float64](engine.MaxArea(polygons))
	s.MinArea = valueOrNil[float64](engine.MinArea(polygons))
	s.MaxVertexes = valueOrNil[int](engine.MaxVertexes(polygons))
	s.MinVertexes = valueOrNil[int](engine.MinVertexes(polygons))

	s.ByVertexes = make(map[int]float64)
	bound := polygons[0].Bound()
	for _, p := range polygons {
		if _, seen := s.ByVertexes[p.Len()]; !seen {
			s.ByVertexes[p.Len()], _ = engine.AreaVertexes(polygons, p.Len())
		}
		bound = bound.Union(p.Bound())
	}
	s.Bounds = extentFromBound(bound)

	return s
}

func valueOrNil[T any](v T, err error) *T {
	if err != nil {
		return nil
	}
	return &v
}

func extentFromBound(b orb.Bound) *Extent {
	return &Extent{
		Min: model.Point{X: b.Min[0], Y: b.Min[1]},
		Max: model.Point{X: b.Max[0], Y: b.Max[1]},
	}
}

// Render writes s to w in the given format
func Render(w io.Writer, s Summary, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return renderText(w, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func renderText(w io.Writer, s Summary) error {
	lines := []string{
		fmt.Sprintf("polygons:       %d", s.Polygons),
		fmt.Sprintf("total area:     %s", engine.FormatArea(s.TotalArea)),
		fmt.Sprintf("area even:      %s", engine.FormatArea(s.AreaEven)),
		fmt.Sprintf("area odd:       %s", engine.FormatArea(s.AreaOdd)),
	}
	if s.AreaMean != nil {
		lines = append(lines,
			fmt.Sprintf("area mean:      %s", engine.FormatArea(*s.AreaMean)),
			fmt.Sprintf("max area:       %s", engine.FormatArea(*s.MaxArea)),
			fmt.Sprintf("min area:       %s", engine.FormatArea(*s.MinArea)),
			fmt.Sprintf("max vertexes:   %d", *s.MaxVertexes),
			fmt.Sprintf("min vertexes:   %d", *s.MinVertexes),
		)
	}

	counts := make([]int, 0, len(s.ByVertexes))
	for n := range s.ByVertexes {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		lines = append(lines, fmt.Sprintf("area %d-gons:%s%s", n, pad(n), engine.FormatArea(s.ByVertexes[n])))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// pad aligns "area N-gons:" labels with the other rows
func pad(n int) string {
	width := 16 - len(fmt.Sprintf("area %d-gons:", n))
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%*s", width, "")
}
