package geometry

import "github.com/paulmach/orb"

// Shape is a geometry produced by a draw interaction.
// Supported concrete types are orb.Point, orb.LineString, orb.Polygon and Circle.
type Shape interface {
	Bound() orb.Bound
}

// LastCoordinate returns the final coordinate of a shape.
// For a circle this is the point on the circumference east of the center,
// for a polygon the closing vertex of the outer ring.
func LastCoordinate(s Shape) (orb.Point, bool) {
	switch g := s.(type) {
	case orb.Point:
		return g, true
	case orb.LineString:
		if len(g) == 0 {
			return orb.Point{}, false
		}
		return g[len(g)-1], true
	case orb.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return orb.Point{}, false
		}
		return g[0][len(g[0])-1], true
	case Circle:
		return orb.Point{g.Center[0] + g.Radius, g.Center[1]}, true
	case *Circle:
		if g == nil {
			return orb.Point{}, false
		}
		return LastCoordinate(*g)
	}
	return orb.Point{}, false
}

// Center returns the center of the shape's bounding box
func Center(s Shape) (orb.Point, bool) {
	if s == nil {
		return orb.Point{}, false
	}
	if c, ok := s.(*Circle); ok && c == nil {
		return orb.Point{}, false
	}
	return s.Bound().Center(), true
}
