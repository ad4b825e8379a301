package export

import (
	"encoding/json"
	"fmt"
	"io"

	"polystat/internal/engine"
	"polystat/internal/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection converts polygons to GeoJSON features.
// Each feature carries its position in the input, its vertex count and its area.
func FeatureCollection(polygons []model.Polygon) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, p := range polygons {
		feature := geojson.NewFeature(orb.Polygon{p.Ring()})
		feature.Properties["index"] = i
		feature.Properties["vertices"] = p.Len()
		feature.Properties["area"] = engine.Area(p)
		fc.Append(feature)
	}

	return fc
}

// Write marshals polygons as a GeoJSON FeatureCollection to w
func Write(w io.Writer, polygons []model.Polygon) error {
	data, err := json.Marshal(FeatureCollection(polygons))
	if err != nil {
		return fmt.Errorf("failed to marshal feature collection: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write feature collection: %w", err)
	}
	return nil
}
