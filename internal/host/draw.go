package host

import (
	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/geometry"
)

// Sketch is the geometry of a drawing in progress
type Sketch struct {
	geom    geometry.Shape
	changes listeners[geometry.Shape]
}

// Geometry returns the current sketch geometry
func (s *Sketch) Geometry() geometry.Shape {
	return s.geom
}

// OnChange subscribes to geometry changes
func (s *Sketch) OnChange(fn func(geometry.Shape)) func() {
	return s.changes.add(fn)
}

func (s *Sketch) set(g geometry.Shape) {
	s.geom = g
	s.changes.emit(g)
}

// Draw turns pointer input into a line, polygon or circle.
//
// Click mode: the first click starts the sketch, moves drag the last vertex,
// clicks add vertices and a double click finishes lines and polygons. Circles
// finish on the second click.
// Freehand mode: press starts, drag adds vertices (or sets the radius) and
// release finishes.
type Draw struct {
	shape    measurement.ShapeType
	freehand bool
	style    measurement.Style
	active   bool

	drawing bool
	coords  []orb.Point
	sketch  *Sketch

	starts listeners[measurement.Sketch]
	ends   listeners[geometry.Shape]
}

func newDraw(opts measurement.DrawOptions) *Draw {
	return &Draw{
		shape:    opts.Shape,
		freehand: opts.Freehand,
		style:    opts.Style,
		active:   true,
	}
}

// Active reports whether the draw consumes pointer input
func (d *Draw) Active() bool {
	return d.active
}

// SetActive enables the draw; disabling it drops the sketch
func (d *Draw) SetActive(active bool) {
	d.active = active
	if !active {
		d.reset()
	}
}

// OnDrawStart subscribes to the start of a sketch
func (d *Draw) OnDrawStart(fn func(measurement.Sketch)) func() {
	return d.starts.add(fn)
}

// OnDrawEnd subscribes to finished geometries
func (d *Draw) OnDrawEnd(fn func(geometry.Shape)) func() {
	return d.ends.add(fn)
}

// Style returns the sketch style
func (d *Draw) Style() measurement.Style {
	return d.style
}

// Sketch returns the geometry in progress, or nil
func (d *Draw) Sketch() geometry.Shape {
	if !d.drawing || d.sketch == nil {
		return nil
	}
	return d.sketch.geom
}

// Listeners returns the number of start and end subscribers
func (d *Draw) Listeners() int {
	return d.starts.len() + d.ends.len()
}

func (d *Draw) click(p orb.Point) {
	if !d.active || d.freehand {
		return
	}
	if !d.drawing {
		d.start(p)
		return
	}

	last := len(d.coords) - 1
	d.coords[last] = p
	if d.shape == measurement.ShapeCircle {
		d.update()
		d.finish()
		return
	}
	d.coords = append(d.coords, p)
	d.update()
}

func (d *Draw) move(p orb.Point) {
	if !d.active || d.freehand || !d.drawing {
		return
	}
	d.coords[len(d.coords)-1] = p
	d.update()
}

// doubleClick reports whether the event finished a sketch
func (d *Draw) doubleClick(p orb.Point) bool {
	if !d.active || d.freehand || !d.drawing || d.shape == measurement.ShapeCircle {
		return false
	}
	d.coords[len(d.coords)-1] = p
	d.update()
	d.finish()
	return true
}

func (d *Draw) down(p orb.Point) {
	if !d.active || !d.freehand || d.drawing {
		return
	}
	d.start(p)
}

func (d *Draw) drag(p orb.Point) {
	if !d.active || !d.freehand || !d.drawing {
		return
	}
	if d.shape == measurement.ShapeCircle {
		d.coords[len(d.coords)-1] = p
	} else {
		d.coords = append(d.coords, p)
	}
	d.update()
}

func (d *Draw) up(p orb.Point) {
	if !d.active || !d.freehand || !d.drawing {
		return
	}
	d.drag(p)
	d.finish()
}

func (d *Draw) start(p orb.Point) {
	d.drawing = true
	d.coords = []orb.Point{p, p}
	d.sketch = &Sketch{geom: d.build(d.coords)}
	d.starts.emit(d.sketch)
}

func (d *Draw) update() {
	if d.sketch != nil {
		d.sketch.set(d.build(d.coords))
	}
}

// finish emits the final geometry, or silently drops a sketch with too few vertices
func (d *Draw) finish() {
	coords := dedupe(d.coords)
	d.reset()

	switch d.shape {
	case measurement.ShapeLineString:
		if len(coords) < 2 {
			return
		}
	case measurement.ShapePolygon:
		if len(coords) < 3 {
			return
		}
	case measurement.ShapeCircle:
		if len(coords) == 1 {
			coords = append(coords, coords[0])
		}
	}
	d.ends.emit(d.build(coords))
}

func (d *Draw) reset() {
	d.drawing = false
	d.coords = nil
	d.sketch = nil
}

func (d *Draw) build(coords []orb.Point) geometry.Shape {
	switch d.shape {
	case measurement.ShapePolygon:
		ring := make(orb.Ring, 0, len(coords)+1)
		ring = append(ring, coords...)
		if len(coords) > 0 {
			ring = append(ring, coords[0])
		}
		return orb.Polygon{ring}
	case measurement.ShapeCircle:
		if len(coords) == 0 {
			return geometry.Circle{}
		}
		return geometry.NewCircle(coords[0], coords[len(coords)-1])
	default:
		return append(orb.LineString(nil), coords...)
	}
}

func dedupe(coords []orb.Point) []orb.Point {
	out := make([]orb.Point, 0, len(coords))
	for i, p := range coords {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
