package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/internal/host"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/geometry"
)

var (
	backgroundColor = color.NRGBA{R: 0xf2, G: 0xef, B: 0xe9, A: 0xff}
	gridColor       = color.NRGBA{R: 0xdd, G: 0xd8, B: 0xcf, A: 0xff}
	tooltipColor    = color.NRGBA{A: 0x80}
	resultColor     = color.NRGBA{R: 0xff, G: 0xcc, B: 0x33, A: 0xff}
	defaultStroke   = color.NRGBA{R: 0xfd, G: 0x80, B: 0x44, A: 0xff}
)

const (
	wheelZoomStep = 0.002
	gridSpacing   = 100 // pixels
)

// MapView displays a host.Map and forwards pointer input to it
type MapView struct {
	widget.BaseWidget
	m      *host.Map
	tool   *measurement.Tool
	camera *Camera

	width, height float64
	panning       bool
	pressed       bool

	icons map[string]fyne.Resource // remove control images, by source
}

// NewMapView creates a view of m. Pointer input is routed to the measure
// tool's draw interactions while a session is armed and pans the map otherwise.
func NewMapView(m *host.Map, tool *measurement.Tool, camera *Camera) *MapView {
	v := &MapView{m: m, tool: tool, camera: camera}
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the view camera
func (v *MapView) Camera() *Camera {
	return v.camera
}

// CreateRenderer creates the renderer for the widget
func (v *MapView) CreateRenderer() fyne.WidgetRenderer {
	return &mapViewRenderer{view: v}
}

func (v *MapView) toMap(pos fyne.Position) orb.Point {
	return v.camera.Unproject(float64(pos.X), float64(pos.Y), v.width, v.height)
}

func (v *MapView) toScreen(p orb.Point) fyne.Position {
	x, y := v.camera.Project(p, v.width, v.height)
	return fyne.NewPos(float32(x), float32(y))
}

// freehand reports whether presses and drags belong to a freehand sketch
func (v *MapView) freehand() bool {
	s := v.tool.Session()
	return v.tool.GetTool() && s != nil && s.Freehand
}

// Tapped handles single clicks
func (v *MapView) Tapped(event *fyne.PointEvent) {
	v.m.Click(v.toMap(event.Position))
}

// DoubleTapped finishes sketches or zooms in
func (v *MapView) DoubleTapped(event *fyne.PointEvent) {
	zooms := v.m.Zoom().Zooms()
	v.m.DoubleClick(v.toMap(event.Position))
	if v.m.Zoom().Zooms() > zooms {
		v.camera.Zoom(0.5, float64(event.Position.X), float64(event.Position.Y), v.width, v.height)
		v.Refresh()
	}
}

// MouseIn is called when the pointer enters the view
func (v *MapView) MouseIn(event *desktop.MouseEvent) {
	v.MouseMoved(event)
}

// MouseMoved forwards pointer moves
func (v *MapView) MouseMoved(event *desktop.MouseEvent) {
	v.m.Move(v.toMap(event.Position))
}

// MouseOut is called when the pointer leaves the view
func (v *MapView) MouseOut() {}

// MouseDown starts a freehand sketch
func (v *MapView) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary || !v.freehand() {
		return
	}
	v.pressed = true
	v.m.Down(v.toMap(event.Position))
}

// MouseUp finishes a freehand sketch
func (v *MapView) MouseUp(event *desktop.MouseEvent) {
	if !v.pressed {
		return
	}
	v.pressed = false
	v.m.Up(v.toMap(event.Position))
}

// Dragged extends a freehand sketch or pans the map
func (v *MapView) Dragged(event *fyne.DragEvent) {
	if v.pressed {
		v.m.Drag(v.toMap(event.Position))
		return
	}
	v.panning = true
	v.camera.Pan(float64(event.Dragged.DX), float64(event.Dragged.DY))
	v.Refresh()
}

// DragEnd handles the end of a drag event
func (v *MapView) DragEnd() {
	v.panning = false
}

// Scrolled zooms around the pointer
func (v *MapView) Scrolled(event *fyne.ScrollEvent) {
	factor := math.Exp(-float64(event.Scrolled.DY) * wheelZoomStep)
	v.camera.Zoom(factor, float64(event.Position.X), float64(event.Position.Y), v.width, v.height)
	v.Refresh()
}

// mapViewRenderer implements fyne.WidgetRenderer
type mapViewRenderer struct {
	view    *MapView
	objects []fyne.CanvasObject
}

func (r *mapViewRenderer) Layout(size fyne.Size) {
	r.view.width = float64(size.Width)
	r.view.height = float64(size.Height)
	r.Refresh()
}

func (r *mapViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *mapViewRenderer) Refresh() {
	v := r.view
	r.objects = r.objects[:0]

	bg := canvas.NewRectangle(backgroundColor)
	bg.Resize(fyne.NewSize(float32(v.width), float32(v.height)))
	r.objects = append(r.objects, bg)
	r.addGrid()

	for _, layer := range v.m.Layers() {
		style, _ := layer.Style().(measurement.StyleSpec)
		for _, f := range layer.Features() {
			r.addShape(f.Geometry, style, f.Marker)
		}
	}
	for _, sketch := range v.m.Sketches() {
		style, _ := sketch.Style.(measurement.StyleSpec)
		r.addShape(sketch.Geometry, style, false)
	}
	for _, o := range v.m.Overlays() {
		if o.Positioned {
			r.addOverlay(o)
		}
	}

	canvas.Refresh(v)
}

func (r *mapViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *mapViewRenderer) Destroy() {}

func (r *mapViewRenderer) addGrid() {
	w, h := float32(r.view.width), float32(r.view.height)
	for x := float32(0); x < w; x += gridSpacing {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, h)
		r.objects = append(r.objects, line)
	}
	for y := float32(0); y < h; y += gridSpacing {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(w, y)
		r.objects = append(r.objects, line)
	}
}

func (r *mapViewRenderer) addShape(shape geometry.Shape, style measurement.StyleSpec, marker bool) {
	stroke, width := color.Color(defaultStroke), float32(2)
	if style.Stroke != nil {
		stroke = parseColor(style.Stroke.Color, defaultStroke)
		width = float32(style.Stroke.Width)
	}

	switch g := shape.(type) {
	case orb.Point:
		if marker {
			r.addMarker(g, style)
		}
	case orb.LineString:
		r.addPath(g, stroke, width)
	case orb.Polygon:
		if len(g) > 0 {
			r.addPath(g[0], stroke, width)
		}
	case geometry.Circle:
		center := r.view.toScreen(g.Center)
		radius := float32(g.Radius / r.view.camera.Resolution)

		circle := canvas.NewCircle(color.Transparent)
		if style.Fill != nil {
			circle.FillColor = parseColor(style.Fill.Color, color.Transparent)
		}
		circle.StrokeColor = stroke
		circle.StrokeWidth = width
		circle.Move(fyne.NewPos(center.X-radius, center.Y-radius))
		circle.Resize(fyne.NewSize(2*radius, 2*radius))
		r.objects = append(r.objects, circle)
	}
}

func (r *mapViewRenderer) addPath(points []orb.Point, stroke color.Color, width float32) {
	for i := 0; i < len(points)-1; i++ {
		line := canvas.NewLine(stroke)
		line.StrokeWidth = width
		line.Position1 = r.view.toScreen(points[i])
		line.Position2 = r.view.toScreen(points[i+1])
		r.objects = append(r.objects, line)
	}
}

func (r *mapViewRenderer) addMarker(p orb.Point, style measurement.StyleSpec) {
	radius := float32(4)
	fill, stroke := color.Color(color.White), color.Color(color.NRGBA{R: 0xff, A: 0xff})
	strokeWidth := float32(1.5)
	if style.Image != nil && style.Image.Image != nil {
		spec := style.Image.Image
		radius = float32(spec.Radius)
		if spec.Fill != nil {
			fill = parseColor(spec.Fill.Color, fill)
		}
		if spec.Stroke != nil {
			stroke = parseColor(spec.Stroke.Color, stroke)
			strokeWidth = float32(spec.Stroke.Width)
		}
	}

	pos := r.view.toScreen(p)
	marker := canvas.NewCircle(fill)
	marker.StrokeColor = stroke
	marker.StrokeWidth = strokeWidth
	marker.Move(fyne.NewPos(pos.X-radius, pos.Y-radius))
	marker.Resize(fyne.NewSize(2*radius, 2*radius))
	r.objects = append(r.objects, marker)
}

func (r *mapViewRenderer) addOverlay(o *measurement.Overlay) {
	anchor := r.view.toScreen(o.Position)
	anchor = anchor.Add(fyne.NewPos(float32(o.Offset[0]), float32(o.Offset[1])))

	if o.Kind == measurement.OverlayRemove {
		button := widget.NewButtonWithIcon("", r.view.iconFor(o.Image), o.Activate)
		button.Importance = widget.LowImportance
		size := fyne.NewSize(22, 22)
		button.Resize(size)
		button.Move(position(anchor, size, o.Positioning))
		r.objects = append(r.objects, button)
		return
	}

	lines := []string{o.Text}
	if o.Hint != "" {
		lines = append(lines, o.Hint)
	}

	texts := make([]*canvas.Text, 0, len(lines))
	var size fyne.Size
	for _, line := range lines {
		text := canvas.NewText(line, color.White)
		text.TextSize = theme.TextSize() * 0.9
		if o.Kind == measurement.OverlayResult {
			text.Color = color.Black
			text.TextStyle = fyne.TextStyle{Bold: true}
		}
		textSize := text.MinSize()
		size.Width = float32(math.Max(float64(size.Width), float64(textSize.Width)))
		size.Height += textSize.Height
		texts = append(texts, text)
	}

	padding := float32(4)
	box := fyne.NewSize(size.Width+2*padding, size.Height+2*padding)
	origin := position(anchor, box, o.Positioning)

	bg := canvas.NewRectangle(tooltipColor)
	if o.Kind == measurement.OverlayResult {
		bg.FillColor = resultColor
	}
	bg.CornerRadius = 4
	bg.Move(origin)
	bg.Resize(box)
	r.objects = append(r.objects, bg)

	y := origin.Y + padding
	for _, text := range texts {
		textSize := text.MinSize()
		text.Move(fyne.NewPos(origin.X+padding, y))
		text.Resize(textSize)
		y += textSize.Height
		r.objects = append(r.objects, text)
	}
}

// position returns the top-left corner of a box of size anchored at anchor
func position(anchor fyne.Position, size fyne.Size, positioning measurement.Positioning) fyne.Position {
	switch positioning {
	case measurement.PositionCenterLeft:
		return fyne.NewPos(anchor.X, anchor.Y-size.Height/2)
	case measurement.PositionCenterCenter:
		return fyne.NewPos(anchor.X-size.Width/2, anchor.Y-size.Height/2)
	default:
		return anchor
	}
}
