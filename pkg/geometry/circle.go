package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Circle is a center/radius pair expressed in map units
type Circle struct {
	Center orb.Point
	Radius float64
}

// NewCircle creates a circle whose circumference passes through edge
func NewCircle(center, edge orb.Point) Circle {
	return Circle{
		Center: center,
		Radius: math.Hypot(edge[0]-center[0], edge[1]-center[1]),
	}
}

// Bound returns the square enclosing the circle
func (c Circle) Bound() orb.Bound {
	r := math.Abs(c.Radius)
	return orb.Bound{
		Min: orb.Point{c.Center[0] - r, c.Center[1] - r},
		Max: orb.Point{c.Center[0] + r, c.Center[1] + r},
	}
}

// Polygon approximates the circle with a regular polygon.
// The first vertex lies east of the center and vertices run counter-clockwise.
// The outer ring is closed, so it holds sides+1 points.
func (c Circle) Polygon(sides int) orb.Polygon {
	if sides < 3 {
		sides = 3
	}

	ring := make(orb.Ring, 0, sides+1)
	for i := 0; i < sides; i++ {
		angle := float64(i) * 2.0 * math.Pi / float64(sides)
		ring = append(ring, orb.Point{
			c.Center[0] + c.Radius*math.Cos(angle),
			c.Center[1] + c.Radius*math.Sin(angle),
		})
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}
