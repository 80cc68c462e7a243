// Package host is a headless map host for the measure tool: interactions,
// overlays, vector layers and a draw primitive driven by pointer events in map
// coordinates. The CLI replays coordinates through it and the GUI renders it.
package host

import (
	"slices"
	"time"

	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/geometry"
	"github.com/philipparndt/geomeasure/pkg/projection"
)

// DoubleClickZoom zooms the map on double click while active
type DoubleClickZoom struct {
	active bool
	zooms  int
}

// Active reports whether double clicks zoom
func (z *DoubleClickZoom) Active() bool { return z.active }

// SetActive enables or disables zooming
func (z *DoubleClickZoom) SetActive(active bool) { z.active = active }

// DoubleClickZoom marks the interaction for lookup by the measure tool
func (z *DoubleClickZoom) DoubleClickZoom() {}

// Zooms returns how many double clicks zoomed the map
func (z *DoubleClickZoom) Zooms() int { return z.zooms }

// Map is an in-memory map with the capabilities the measure tool consumes
type Map struct {
	interactions []measurement.Interaction
	overlays     []*measurement.Overlay
	clicks       listeners[measurement.PointerEvent]
	layers       map[string]*Layer
	layerOrder   []string
	projection   projection.Projection
	scheduler    Scheduler
	zoom         *DoubleClickZoom
	renders      int
	onRender     func()
}

// Option configures a Map
type Option func(*Map)

// WithProjection sets the view projection (EPSG:3857 by default)
func WithProjection(p projection.Projection) Option {
	return func(m *Map) {
		m.projection = p
	}
}

// WithScheduler replaces the default ManualClock
func WithScheduler(s Scheduler) Option {
	return func(m *Map) {
		m.scheduler = s
	}
}

// WithRenderHook is called whenever the map needs repainting
func WithRenderHook(fn func()) Option {
	return func(m *Map) {
		m.onRender = fn
	}
}

// New creates a map with a double-click zoom interaction installed
func New(options ...Option) *Map {
	m := &Map{
		layers:     make(map[string]*Layer),
		projection: projection.WebMercator,
		scheduler:  &ManualClock{},
		zoom:       &DoubleClickZoom{active: true},
	}
	for _, option := range options {
		option(m)
	}
	m.interactions = append(m.interactions, m.zoom)
	return m
}

// Host returns the capability bundle for measurement.New
func (m *Map) Host() measurement.Host {
	return measurement.Host{Map: m, Draws: m, Styles: m, Layers: m}
}

// Clock returns the manual clock, or nil when another scheduler is used
func (m *Map) Clock() *ManualClock {
	c, _ := m.scheduler.(*ManualClock)
	return c
}

// Zoom returns the double-click zoom interaction
func (m *Map) Zoom() *DoubleClickZoom {
	return m.zoom
}

// AddInteraction installs an interaction; the last added sees events first
func (m *Map) AddInteraction(i measurement.Interaction) {
	if i == nil {
		return
	}
	m.interactions = append(m.interactions, i)
}

// RemoveInteraction uninstalls an interaction
func (m *Map) RemoveInteraction(i measurement.Interaction) {
	for idx, other := range m.interactions {
		if other == i {
			m.interactions = append(m.interactions[:idx], m.interactions[idx+1:]...)
			m.Render()
			return
		}
	}
}

// Interactions returns the installed interactions
func (m *Map) Interactions() []measurement.Interaction {
	return m.interactions
}

// AddOverlay shows an overlay
func (m *Map) AddOverlay(o *measurement.Overlay) {
	if o == nil {
		return
	}
	m.overlays = append(m.overlays, o)
}

// RemoveOverlay hides an overlay; the live slice shrinks in place
func (m *Map) RemoveOverlay(o *measurement.Overlay) {
	for idx, other := range m.overlays {
		if other == o {
			m.overlays = append(m.overlays[:idx], m.overlays[idx+1:]...)
			return
		}
	}
}

// Overlays returns the live overlay slice
func (m *Map) Overlays() []*measurement.Overlay {
	return m.overlays
}

// OnSingleClick subscribes to single clicks
func (m *Map) OnSingleClick(fn func(measurement.PointerEvent)) func() {
	return m.clicks.add(fn)
}

// SingleClickListeners returns the number of single-click subscribers
func (m *Map) SingleClickListeners() int {
	return m.clicks.len()
}

// Projection returns the view projection
func (m *Map) Projection() projection.Projection {
	return m.projection
}

// Render requests a repaint
func (m *Map) Render() {
	m.renders++
	if m.onRender != nil {
		m.onRender()
	}
}

// Renders returns the number of repaint requests
func (m *Map) Renders() int {
	return m.renders
}

// AfterFunc schedules fn on the map's scheduler
func (m *Map) AfterFunc(d time.Duration, fn func()) {
	m.scheduler.AfterFunc(d, fn)
}

// NewDraw creates a draw interaction
func (m *Map) NewDraw(opts measurement.DrawOptions) measurement.Draw {
	return newDraw(opts)
}

// Resolve returns the style description itself as the renderable style
func (m *Map) Resolve(spec measurement.StyleSpec) measurement.Style {
	return spec
}

// VectorLayer returns the named layer, creating it when asked to
func (m *Map) VectorLayer(name string, create bool) measurement.VectorLayer {
	if l, ok := m.layers[name]; ok {
		return l
	}
	if !create {
		return nil
	}
	l := &Layer{Name: name, onChange: m.Render}
	m.layers[name] = l
	m.layerOrder = append(m.layerOrder, name)
	return l
}

// Layers returns the layers in creation order
func (m *Map) Layers() []*Layer {
	out := make([]*Layer, 0, len(m.layerOrder))
	for _, name := range m.layerOrder {
		out = append(out, m.layers[name])
	}
	return out
}

// SketchView is a drawing in progress together with its style
type SketchView struct {
	Geometry geometry.Shape
	Style    measurement.Style
}

// Sketches returns the geometries currently being drawn
func (m *Map) Sketches() []SketchView {
	var out []SketchView
	for _, i := range m.interactions {
		if d, ok := i.(*Draw); ok {
			if g := d.Sketch(); g != nil {
				out = append(out, SketchView{Geometry: g, Style: d.Style()})
			}
		}
	}
	return out
}

// Move dispatches a pointer move
func (m *Map) Move(p orb.Point) {
	m.dispatchMove(measurement.PointerEvent{Coordinate: p})
}

// Click dispatches a single click
func (m *Map) Click(p orb.Point) {
	for _, i := range m.dispatchOrder() {
		if d, ok := i.(*Draw); ok && m.installed(d) {
			d.click(p)
		}
	}
	m.clicks.emit(measurement.PointerEvent{Coordinate: p})
	m.Render()
}

// DoubleClick finishes a sketch, or zooms when nothing consumed it
func (m *Map) DoubleClick(p orb.Point) {
	for _, i := range m.dispatchOrder() {
		if d, ok := i.(*Draw); ok && m.installed(d) && d.doubleClick(p) {
			m.Render()
			return
		}
	}
	if m.zoom.active {
		m.zoom.zooms++
	}
	m.Render()
}

// Down dispatches a button press
func (m *Map) Down(p orb.Point) {
	for _, i := range m.dispatchOrder() {
		if d, ok := i.(*Draw); ok && m.installed(d) {
			d.down(p)
		}
	}
}

// Drag dispatches a move with the button held
func (m *Map) Drag(p orb.Point) {
	m.dispatchMove(measurement.PointerEvent{Coordinate: p, Dragging: true})
}

// Up dispatches a button release
func (m *Map) Up(p orb.Point) {
	for _, i := range m.dispatchOrder() {
		if d, ok := i.(*Draw); ok && m.installed(d) {
			d.up(p)
		}
	}
	m.Render()
}

func (m *Map) dispatchMove(ev measurement.PointerEvent) {
	for _, i := range m.dispatchOrder() {
		if !m.installed(i) || !i.Active() {
			continue
		}
		switch v := i.(type) {
		case *Draw:
			if ev.Dragging {
				v.drag(ev.Coordinate)
			} else {
				v.move(ev.Coordinate)
			}
		case measurement.PointerHandler:
			v.HandleMoveEvent(ev)
		}
	}
}

// dispatchOrder snapshots the interactions, most recently added first
func (m *Map) dispatchOrder() []measurement.Interaction {
	order := slices.Clone(m.interactions)
	slices.Reverse(order)
	return order
}

func (m *Map) installed(i measurement.Interaction) bool {
	return slices.Contains(m.interactions, i)
}
