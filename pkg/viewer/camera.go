package viewer

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	minResolution = 0.01
	maxResolution = 156543.03392804097 // zoom level 0 of web mercator at 256px tiles
)

// Camera maps between map coordinates and screen pixels. Screen y grows
// downwards, map y upwards.
type Camera struct {
	Center     orb.Point
	Resolution float64 // map units per pixel
}

// NewCamera creates a camera looking at center
func NewCamera(center orb.Point, resolution float64) *Camera {
	c := &Camera{Center: center, Resolution: resolution}
	c.clamp()
	return c
}

// Fit centers the camera on a bound so it fills a width x height viewport
func (c *Camera) Fit(b orb.Bound, width, height float64) {
	c.Center = b.Center()
	if width <= 0 || height <= 0 {
		return
	}
	c.Resolution = math.Max((b.Max[0]-b.Min[0])/width, (b.Max[1]-b.Min[1])/height)
	c.clamp()
}

// Pan moves the view by a screen delta in pixels
func (c *Camera) Pan(dx, dy float64) {
	c.Center[0] -= dx * c.Resolution
	c.Center[1] += dy * c.Resolution
}

// Zoom scales the resolution by factor, keeping the map point under the
// screen position (x, y) fixed
func (c *Camera) Zoom(factor, x, y, width, height float64) {
	if factor <= 0 {
		return
	}
	anchor := c.Unproject(x, y, width, height)
	c.Resolution *= factor
	c.clamp()

	// Move the center so the anchor stays under the pointer
	moved := c.Unproject(x, y, width, height)
	c.Center[0] += anchor[0] - moved[0]
	c.Center[1] += anchor[1] - moved[1]
}

// Project converts a map coordinate to screen pixels
func (c *Camera) Project(p orb.Point, width, height float64) (float64, float64) {
	x := (p[0]-c.Center[0])/c.Resolution + width/2
	y := (c.Center[1]-p[1])/c.Resolution + height/2
	return x, y
}

// Unproject converts screen pixels to a map coordinate
func (c *Camera) Unproject(x, y, width, height float64) orb.Point {
	return orb.Point{
		c.Center[0] + (x-width/2)*c.Resolution,
		c.Center[1] - (y-height/2)*c.Resolution,
	}
}

func (c *Camera) clamp() {
	if c.Resolution < minResolution || math.IsNaN(c.Resolution) {
		c.Resolution = minResolution
	}
	if c.Resolution > maxResolution {
		c.Resolution = maxResolution
	}
}
