package host

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/geometry"
)

// FeatureCollection exports a layer as lon/lat GeoJSON. Circles are written as
// their polygon approximation with the radius (map units) as a property.
func (m *Map) FeatureCollection(layerName string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	l, ok := m.layers[layerName]
	if !ok {
		return fc
	}

	for _, f := range l.features {
		g := m.toLonLat(f.Geometry)
		if g == nil {
			continue
		}

		feature := geojson.NewFeature(g)
		feature.Properties["session"] = string(f.SessionID)
		feature.Properties["kind"] = f.Kind.String()
		if f.Marker {
			feature.Properties["marker"] = true
		}
		if c, ok := f.Geometry.(geometry.Circle); ok {
			feature.Properties["radius"] = c.Radius
		}
		fc.Append(feature)
	}

	return fc
}

func (m *Map) toLonLat(shape geometry.Shape) orb.Geometry {
	switch g := shape.(type) {
	case orb.Point:
		return m.projection.ToWGS84(g)
	case orb.LineString:
		return m.projection.LineString(g)
	case orb.Polygon:
		return m.projection.Polygon(g)
	case geometry.Circle:
		return m.projection.Polygon(g.Polygon(measurement.CircleSides))
	}
	return nil
}
