package measurement

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/philipparndt/geomeasure/pkg/geometry"
	"github.com/philipparndt/geomeasure/pkg/projection"
)

// CircleSides is the vertex count used to approximate circles before measuring them
const CircleSides = 64

// Measurement is a raw magnitude in meters (length) or square meters (area).
// Planar magnitudes are in map units.
type Measurement struct {
	Kind      Kind
	Magnitude float64
	Geodesic  bool
}

// Calculator measures drawn shapes either on the sphere or on the projected plane
type Calculator struct {
	Sphere   Sphere
	Geodesic bool
}

// Measure computes the magnitude of shape for kind. A missing shape or one
// that does not match kind yields a zero measurement.
func (c Calculator) Measure(shape geometry.Shape, kind Kind, proj projection.Projection) Measurement {
	m := Measurement{Kind: kind, Geodesic: c.Geodesic}

	switch kind {
	case KindLength:
		if ls, ok := shape.(orb.LineString); ok {
			m.Magnitude = c.length(ls, proj)
		}
	case KindArea:
		if poly, ok := shape.(orb.Polygon); ok {
			m.Magnitude = c.area(poly, proj)
		}
	case KindCircle:
		switch circle := shape.(type) {
		case geometry.Circle:
			m.Magnitude = c.area(circle.Polygon(CircleSides), proj)
		case *geometry.Circle:
			if circle != nil {
				m.Magnitude = c.area(circle.Polygon(CircleSides), proj)
			}
		}
	}

	return m
}

func (c Calculator) length(ls orb.LineString, proj projection.Projection) float64 {
	if !c.Geodesic || c.Sphere == nil {
		return planar.Length(ls)
	}

	total := 0.0
	for i := 0; i < len(ls)-1; i++ {
		c1 := proj.ToWGS84(ls[i])
		c2 := proj.ToWGS84(ls[i+1])
		total += c.Sphere.HaversineDistance(c1, c2)
	}
	return total
}

func (c Calculator) area(poly orb.Polygon, proj projection.Projection) float64 {
	if len(poly) == 0 {
		return 0
	}
	if !c.Geodesic || c.Sphere == nil {
		return math.Abs(planar.Area(poly))
	}

	// Only the outer ring counts
	return math.Abs(c.Sphere.GeodesicArea(proj.Ring(poly[0])))
}
