// Package sphere measures great-circle distances and spherical areas on a
// sphere of configurable radius.
package sphere

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DefaultRadius is the WGS84 semi-major axis (6378137 m), the radius the
// web mercator projection is built on. It is not the 6371008.8 m mean radius.
const DefaultRadius = orb.EarthRadius

// Sphere measures lon/lat geometries on a sphere
type Sphere struct {
	Radius float64
}

// New creates a sphere. Non-positive or non-finite radii fall back to DefaultRadius.
func New(radius float64) Sphere {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		radius = DefaultRadius
	}
	return Sphere{Radius: radius}
}

// HaversineDistance returns the great-circle distance between two lon/lat points
func (s Sphere) HaversineDistance(a, b orb.Point) float64 {
	// orb measures on a sphere of radius orb.EarthRadius; distance scales linearly
	return geo.DistanceHaversine(a, b) * s.scale()
}

// GeodesicArea returns the signed spherical-excess area of a lon/lat ring.
// The ring is closed implicitly.
func (s Sphere) GeodesicArea(ring orb.Ring) float64 {
	scale := s.scale()
	return geo.SignedArea(ring) * scale * scale
}

func (s Sphere) scale() float64 {
	if s.Radius <= 0 {
		return 1
	}
	return s.Radius / orb.EarthRadius
}
