package host

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/geometry"
	"github.com/philipparndt/geomeasure/pkg/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moveRecorder struct {
	active bool
	events []measurement.PointerEvent
}

func (r *moveRecorder) Active() bool          { return r.active }
func (r *moveRecorder) SetActive(active bool) { r.active = active }
func (r *moveRecorder) HandleMoveEvent(ev measurement.PointerEvent) {
	r.events = append(r.events, ev)
}

func TestMapDispatchesMovesToActiveHandlers(t *testing.T) {
	m := New()
	on := &moveRecorder{active: true}
	off := &moveRecorder{}
	m.AddInteraction(on)
	m.AddInteraction(off)

	m.Move(orb.Point{1, 2})
	m.Drag(orb.Point{3, 4})

	require.Len(t, on.events, 2)
	assert.False(t, on.events[0].Dragging)
	assert.True(t, on.events[1].Dragging)
	assert.Empty(t, off.events)

	m.RemoveInteraction(on)
	m.Move(orb.Point{5, 6})
	assert.Len(t, on.events, 2)
}

func TestMapDoubleClickZoom(t *testing.T) {
	m := New()
	m.DoubleClick(orb.Point{})
	assert.Equal(t, 1, m.Zoom().Zooms())

	m.Zoom().SetActive(false)
	m.DoubleClick(orb.Point{})
	assert.Equal(t, 1, m.Zoom().Zooms())
}

func TestMapDrawConsumesDoubleClick(t *testing.T) {
	m := New()
	d := m.NewDraw(measurement.DrawOptions{Shape: measurement.ShapeLineString})
	m.AddInteraction(d)

	m.Click(orb.Point{0, 0})
	assert.Len(t, m.Sketches(), 1)
	m.DoubleClick(orb.Point{10, 0})

	assert.Zero(t, m.Zoom().Zooms())
	assert.Empty(t, m.Sketches())
}

func TestMapVectorLayer(t *testing.T) {
	m := New()
	assert.Nil(t, m.VectorLayer("measureTool", false))

	l := m.VectorLayer("measureTool", true)
	require.NotNil(t, l)
	assert.Same(t, l, m.VectorLayer("measureTool", false))

	renders := m.Renders()
	l.AddFeature(&measurement.Feature{Geometry: orb.Point{1, 1}})
	assert.Greater(t, m.Renders(), renders)
}

func TestMapRenderHook(t *testing.T) {
	calls := 0
	m := New(WithRenderHook(func() { calls++ }))
	m.Render()
	assert.Equal(t, 1, calls)
}

func TestMapSingleClickListeners(t *testing.T) {
	m := New()
	var got []orb.Point
	off := m.OnSingleClick(func(ev measurement.PointerEvent) { got = append(got, ev.Coordinate) })

	m.Click(orb.Point{1, 1})
	off()
	m.Click(orb.Point{2, 2})

	assert.Equal(t, []orb.Point{{1, 1}}, got)
	assert.Zero(t, m.SingleClickListeners())
}

func TestFeatureCollection(t *testing.T) {
	m := New()
	l := m.VectorLayer("measureTool", true)
	l.AddFeature(&measurement.Feature{
		Geometry:  orb.LineString{{0, 0}, {111319.49079327357, 0}},
		SessionID: "a",
		Kind:      measurement.KindLength,
	})
	l.AddFeature(&measurement.Feature{
		Geometry:  orb.Point{0, 0},
		SessionID: "a",
		Kind:      measurement.KindLength,
		Marker:    true,
	})
	l.AddFeature(&measurement.Feature{
		Geometry:  geometry.Circle{Center: orb.Point{0, 0}, Radius: 1000},
		SessionID: "b",
		Kind:      measurement.KindCircle,
	})

	fc := m.FeatureCollection("measureTool")
	require.Len(t, fc.Features, 3)

	line := fc.Features[0]
	assert.Equal(t, "a", line.Properties["session"])
	assert.Equal(t, "measureLength", line.Properties["kind"])
	ls := line.Geometry.(orb.LineString)
	assert.InDelta(t, 1.0, ls[1].Lon(), 1e-9)

	assert.Equal(t, true, fc.Features[1].Properties["marker"])

	circle := fc.Features[2]
	assert.Equal(t, 1000.0, circle.Properties["radius"])
	poly := circle.Geometry.(orb.Polygon)
	assert.Len(t, poly[0], measurement.CircleSides+1)

	assert.Empty(t, m.FeatureCollection("missing").Features)
}

func TestFeatureCollectionGeographic(t *testing.T) {
	m := New(WithProjection(projection.Geographic))
	m.VectorLayer("measureTool", true).AddFeature(&measurement.Feature{Geometry: orb.Point{8.5, 47.4}})

	fc := m.FeatureCollection("measureTool")
	require.Len(t, fc.Features, 1)
	assert.Equal(t, orb.Point{8.5, 47.4}, fc.Features[0].Geometry)
}
