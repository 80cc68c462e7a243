package measurement

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/pkg/geometry"
	"github.com/philipparndt/geomeasure/pkg/projection"
)

// PointerEvent is a pointer notification in map coordinates
type PointerEvent struct {
	Coordinate orb.Point
	Dragging   bool
}

// Interaction is anything the map dispatches input to
type Interaction interface {
	Active() bool
	SetActive(active bool)
}

// PointerHandler receives pointer moves from the map, including moves
// while a button is held (Dragging).
type PointerHandler interface {
	HandleMoveEvent(ev PointerEvent)
}

// DoubleClickZoom is implemented by the host's double-click zoom interaction
type DoubleClickZoom interface {
	Interaction
	DoubleClickZoom()
}

// Map is the host map the tool draws onto
type Map interface {
	AddInteraction(i Interaction)
	RemoveInteraction(i Interaction)
	Interactions() []Interaction

	AddOverlay(o *Overlay)
	RemoveOverlay(o *Overlay)
	// Overlays may return the host's live collection; it can shrink while
	// overlays are being removed.
	Overlays() []*Overlay

	// OnSingleClick subscribes to clicks that are not part of a double click
	OnSingleClick(fn func(PointerEvent)) (unsubscribe func())

	Projection() projection.Projection
	Render()
	AfterFunc(d time.Duration, fn func())
}

// Style is an opaque renderable style produced by a StyleResolver
type Style interface{}

// StyleResolver turns a declarative style description into a renderable style
type StyleResolver interface {
	Resolve(spec StyleSpec) Style
}

// DrawOptions configures a draw interaction
type DrawOptions struct {
	Shape    ShapeType
	Style    Style
	Freehand bool
}

// Sketch is the geometry being drawn
type Sketch interface {
	Geometry() geometry.Shape
	OnChange(fn func(geometry.Shape)) (unsubscribe func())
}

// Draw accumulates pointer input into a geometry
type Draw interface {
	Interaction
	OnDrawStart(fn func(Sketch)) (unsubscribe func())
	OnDrawEnd(fn func(geometry.Shape)) (unsubscribe func())
}

// DrawFactory creates draw interactions
type DrawFactory interface {
	NewDraw(opts DrawOptions) Draw
}

// VectorLayer stores measured features
type VectorLayer interface {
	AddFeature(f *Feature)
	RemoveFeature(f *Feature)
	Features() []*Feature
	SetStyle(style Style)
}

// LayerProvider returns the named vector layer, creating it when create is set.
// It returns nil if the layer does not exist and create is false.
type LayerProvider interface {
	VectorLayer(name string, create bool) VectorLayer
}

// Sphere measures lon/lat geometries; see pkg/sphere
type Sphere interface {
	HaversineDistance(a, b orb.Point) float64
	GeodesicArea(ring orb.Ring) float64
}

// Host bundles the capabilities the tool consumes
type Host struct {
	Map    Map
	Draws  DrawFactory
	Styles StyleResolver
	Layers LayerProvider
}
