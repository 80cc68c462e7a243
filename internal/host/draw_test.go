package host

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/geometry"
)

func recordEnds(d *Draw) *[]geometry.Shape {
	var ends []geometry.Shape
	d.OnDrawEnd(func(s geometry.Shape) { ends = append(ends, s) })
	return &ends
}

func TestDrawLineByClicks(t *testing.T) {
	d := newDraw(measurement.DrawOptions{Shape: measurement.ShapeLineString})
	ends := recordEnds(d)

	starts := 0
	d.OnDrawStart(func(measurement.Sketch) { starts++ })

	d.click(orb.Point{0, 0})
	d.move(orb.Point{5, 0})
	d.click(orb.Point{5, 0})
	d.move(orb.Point{5, 5})
	if !d.doubleClick(orb.Point{5, 5}) {
		t.Fatal("double click did not finish the line")
	}

	if starts != 1 {
		t.Errorf("Expected 1 draw start, got %d", starts)
	}
	if len(*ends) != 1 {
		t.Fatalf("Expected 1 draw end, got %d", len(*ends))
	}
	want := orb.LineString{{0, 0}, {5, 0}, {5, 5}}
	got, ok := (*ends)[0].(orb.LineString)
	if !ok || !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, (*ends)[0])
	}
	if d.Sketch() != nil {
		t.Error("Expected the sketch to be cleared after finishing")
	}
}

func TestDrawSketchFollowsPointer(t *testing.T) {
	d := newDraw(measurement.DrawOptions{Shape: measurement.ShapeLineString})

	var sketch measurement.Sketch
	d.OnDrawStart(func(s measurement.Sketch) { sketch = s })
	d.click(orb.Point{0, 0})

	changes := 0
	sketch.OnChange(func(geometry.Shape) { changes++ })
	d.move(orb.Point{3, 4})

	if changes != 1 {
		t.Errorf("Expected 1 change, got %d", changes)
	}
	ls := sketch.Geometry().(orb.LineString)
	if ls[len(ls)-1] != (orb.Point{3, 4}) {
		t.Errorf("Expected last vertex to follow the pointer, got %v", ls)
	}
}

func TestDrawPolygonIsClosed(t *testing.T) {
	d := newDraw(measurement.DrawOptions{Shape: measurement.ShapePolygon})
	ends := recordEnds(d)

	d.click(orb.Point{0, 0})
	d.click(orb.Point{4, 0})
	d.click(orb.Point{4, 4})
	d.doubleClick(orb.Point{0, 4})

	if len(*ends) != 1 {
		t.Fatalf("Expected 1 draw end, got %d", len(*ends))
	}
	poly := (*ends)[0].(orb.Polygon)
	ring := poly[0]
	if len(ring) != 5 || !ring.Closed() {
		t.Errorf("Expected a closed ring of 5 points, got %v", ring)
	}
}

func TestDrawDropsDegenerateSketches(t *testing.T) {
	tests := []struct {
		name  string
		shape measurement.ShapeType
	}{
		{"line", measurement.ShapeLineString},
		{"polygon", measurement.ShapePolygon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDraw(measurement.DrawOptions{Shape: tt.shape})
			ends := recordEnds(d)

			d.click(orb.Point{1, 1})
			d.click(orb.Point{1, 1})
			d.doubleClick(orb.Point{1, 1})

			if len(*ends) != 0 {
				t.Errorf("Expected no draw end, got %v", *ends)
			}
			if d.drawing {
				t.Error("Expected the draw to be reset")
			}
		})
	}
}

func TestDrawCircleFinishesOnSecondClick(t *testing.T) {
	d := newDraw(measurement.DrawOptions{Shape: measurement.ShapeCircle})
	ends := recordEnds(d)

	d.click(orb.Point{0, 0})
	if d.doubleClick(orb.Point{1, 0}) {
		t.Error("Expected double click to be ignored for circles")
	}
	d.click(orb.Point{3, 4})

	if len(*ends) != 1 {
		t.Fatalf("Expected 1 draw end, got %d", len(*ends))
	}
	c := (*ends)[0].(geometry.Circle)
	if c.Center != (orb.Point{0, 0}) || c.Radius != 5 {
		t.Errorf("Expected circle at origin with radius 5, got %+v", c)
	}
}

func TestDrawFreehand(t *testing.T) {
	d := newDraw(measurement.DrawOptions{Shape: measurement.ShapeLineString, Freehand: true})
	ends := recordEnds(d)

	d.click(orb.Point{9, 9})
	if d.drawing {
		t.Fatal("Expected clicks to be ignored in freehand mode")
	}

	d.down(orb.Point{0, 0})
	d.drag(orb.Point{1, 0})
	d.drag(orb.Point{2, 0})
	d.up(orb.Point{3, 0})

	if len(*ends) != 1 {
		t.Fatalf("Expected 1 draw end, got %d", len(*ends))
	}
	want := orb.LineString{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if got := (*ends)[0].(orb.LineString); !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDrawInactiveIgnoresInput(t *testing.T) {
	d := newDraw(measurement.DrawOptions{Shape: measurement.ShapeLineString})
	d.click(orb.Point{0, 0})
	d.SetActive(false)

	if d.Sketch() != nil {
		t.Error("Expected deactivation to drop the sketch")
	}
	d.click(orb.Point{1, 1})
	if d.drawing {
		t.Error("Expected an inactive draw to ignore clicks")
	}
}

func TestDrawListenersUnsubscribe(t *testing.T) {
	d := newDraw(measurement.DrawOptions{Shape: measurement.ShapeLineString})
	off1 := d.OnDrawStart(func(measurement.Sketch) {})
	off2 := d.OnDrawEnd(func(geometry.Shape) {})
	if d.Listeners() != 2 {
		t.Fatalf("Expected 2 listeners, got %d", d.Listeners())
	}
	off1()
	off2()
	off2()
	if d.Listeners() != 0 {
		t.Errorf("Expected 0 listeners, got %d", d.Listeners())
	}
}
