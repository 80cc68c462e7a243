// Package projection converts map coordinates between the view projection
// and geographic (EPSG:4326) lon/lat.
package projection

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Supported projection codes
const (
	EPSG3857 = "EPSG:3857"
	EPSG4326 = "EPSG:4326"
)

// Projection is a named map projection with conversions to and from WGS84
type Projection struct {
	Code      string
	toWGS84   func(orb.Point) orb.Point
	fromWGS84 func(orb.Point) orb.Point
}

// WebMercator is the spherical mercator projection used by most web maps
var WebMercator = Projection{
	Code:      EPSG3857,
	toWGS84:   func(p orb.Point) orb.Point { return project.Mercator.ToWGS84(p) },
	fromWGS84: func(p orb.Point) orb.Point { return project.WGS84.ToMercator(p) },
}

// Geographic is plain lon/lat
var Geographic = Projection{Code: EPSG4326}

var aliases = map[string]Projection{
	EPSG3857:      WebMercator,
	"EPSG:900913": WebMercator,
	"EPSG:102100": WebMercator,
	"EPSG:102113": WebMercator,
	EPSG4326:      Geographic,
	"CRS:84":      Geographic,
	"WGS84":       Geographic,
}

// Lookup resolves a projection code, case-insensitively
func Lookup(code string) (Projection, bool) {
	p, ok := aliases[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// ToWGS84 converts a point in this projection to lon/lat
func (p Projection) ToWGS84(pt orb.Point) orb.Point {
	if p.toWGS84 == nil {
		return pt
	}
	return p.toWGS84(pt)
}

// FromWGS84 converts a lon/lat point into this projection
func (p Projection) FromWGS84(pt orb.Point) orb.Point {
	if p.fromWGS84 == nil {
		return pt
	}
	return p.fromWGS84(pt)
}

// Ring returns a lon/lat copy of a ring in this projection
func (p Projection) Ring(r orb.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, pt := range r {
		out[i] = p.ToWGS84(pt)
	}
	return out
}

// Polygon returns a lon/lat copy of a polygon in this projection
func (p Projection) Polygon(poly orb.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(poly))
	for i, r := range poly {
		out[i] = p.Ring(r)
	}
	return out
}

// LineString returns a lon/lat copy of a line in this projection
func (p Projection) LineString(ls orb.LineString) orb.LineString {
	out := make(orb.LineString, len(ls))
	for i, pt := range ls {
		out[i] = p.ToWGS84(pt)
	}
	return out
}
