package measurement

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/pkg/geometry"
	"go.uber.org/zap"
)

// doubleClickZoomDelay keeps double-click zoom off after a measurement ends so
// the clicks that finished the drawing do not zoom the map
const doubleClickZoomDelay = 200 * time.Millisecond

// State is the lifecycle state of a measurement session
type State int

const (
	StateIdle State = iota
	StateArmed
	StateDrawing
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateDrawing:
		return "drawing"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Session is one measurement from arming the tool to completion or teardown
type Session struct {
	ID          SessionID
	Kind        Kind
	Freehand    bool
	State       State
	Measurement Measurement
	Result      string
	LayerName   string

	layer       VectorLayer
	calc        Calculator
	format      *Formatter
	removeSrc   string
	draw        Draw
	clicks      int
	unsubscribe []func()
}

func (s *Session) subscribe(unsubscribe ...func()) {
	s.unsubscribe = append(s.unsubscribe, unsubscribe...)
}

// activate arms a new session. The caller tears down any previous session first.
// The session keeps the layer, calculator and formatter of the options
// current at this point.
func (t *Tool) activate(kind Kind, freehand bool) {
	s := &Session{
		ID:        newSessionID(),
		Kind:      kind,
		Freehand:  freehand,
		State:     StateArmed,
		LayerName: t.opts.LayerName,
		layer:     t.provisionLayer(),
		calc:      t.calc,
		format:    t.format,
		removeSrc: t.opts.RemoveButtonSrc,
	}
	s.draw = t.host.Draws.NewDraw(DrawOptions{
		Shape:    kind.Shape(),
		Style:    t.host.Styles.Resolve(t.opts.DrawStyle),
		Freehand: freehand,
	})
	t.session = s

	t.host.Map.AddInteraction(s.draw)
	s.subscribe(
		s.draw.OnDrawStart(func(sketch Sketch) { t.handleDrawStart(s, sketch) }),
		s.draw.OnDrawEnd(func(shape geometry.Shape) { t.handleDrawEnd(s, shape) }),
	)
	// Freehand drawing has no discrete clicks, so no vertex markers
	if kind == KindLength && !freehand {
		s.subscribe(t.host.Map.OnSingleClick(func(ev PointerEvent) { t.handleClick(s, ev) }))
	}

	t.logger.Debug("measurement armed",
		zap.String("session", string(s.ID)),
		zap.Stringer("kind", kind),
		zap.Bool("freehand", freehand))
}

func (t *Tool) handleDrawStart(s *Session, sketch Sketch) {
	if t.session != s {
		return
	}
	s.State = StateDrawing
	s.subscribe(sketch.OnChange(func(shape geometry.Shape) { t.refresh(s, shape) }))
	t.refresh(s, sketch.Geometry())
}

// refresh recomputes the running value of the session
func (t *Tool) refresh(s *Session, shape geometry.Shape) {
	if t.session != s {
		return
	}
	s.Measurement = s.calc.Measure(shape, s.Kind, t.host.Map.Projection())
	s.Result = s.format.Format(s.Measurement)
}

// handleClick places a marker and a running-length label at each click of a
// non-freehand length measurement
func (t *Tool) handleClick(s *Session, ev PointerEvent) {
	if t.session != s || s.State != StateDrawing || ev.Dragging {
		return
	}

	text := s.Result
	if s.clicks == 0 {
		text = s.format.Sprintf(msgStart)
	}
	s.clicks++

	t.addMarker(s, ev.Coordinate)
	t.overlays.placeResult(s, ev.Coordinate, text, OverlayVertex)
}

func (t *Tool) handleDrawEnd(s *Session, shape geometry.Shape) {
	if t.session != s {
		return
	}
	s.State = StateCompleted
	t.refresh(s, shape)

	feature := &Feature{Geometry: shape, SessionID: s.ID, Kind: s.Kind}
	if s.layer != nil {
		s.layer.AddFeature(feature)
	}

	last, _ := geometry.LastCoordinate(shape)
	switch s.Kind {
	case KindLength:
		t.addMarker(s, last)
		t.overlays.placeResult(s, last, s.format.Sprintf(msgTotalLength, s.Result), OverlayResult)
	default:
		center, _ := geometry.Center(shape)
		t.overlays.placeResult(s, center, s.Result, OverlayResult)
	}
	t.overlays.placeRemoveControl(s, last, s.removeSrc, s.format.Sprintf(msgRemove), func(id SessionID) {
		t.Remove(id)
	})

	event := MeasureEnd{
		SessionID:   s.ID,
		Kind:        s.Kind,
		Measurement: s.Measurement,
		Result:      s.Result,
		Feature:     feature,
	}
	t.logger.Debug("measurement completed",
		zap.String("session", string(s.ID)),
		zap.Stringer("kind", s.Kind),
		zap.String("result", s.Result))

	t.teardown()
	t.emit(event)
}

func (t *Tool) addMarker(s *Session, p orb.Point) {
	if s.layer == nil {
		return
	}
	s.layer.AddFeature(&Feature{Geometry: p, SessionID: s.ID, Kind: s.Kind, Marker: true})
}

// HandleMoveEvent updates the tooltip that follows the pointer
func (t *Tool) HandleMoveEvent(ev PointerEvent) {
	s := t.session
	if !t.GetTool() || s == nil {
		return
	}

	switch {
	case s.State == StateArmed && !ev.Dragging:
		t.overlays.showHelp(s, ev.Coordinate, t.helpText(s))
	case s.State == StateDrawing && !ev.Dragging:
		t.overlays.showLiveResult(s, ev.Coordinate, t.liveText(s), s.format.Sprintf(msgHintClick))
	case s.State == StateDrawing && s.Freehand:
		t.overlays.showLiveResult(s, ev.Coordinate, t.liveText(s), s.format.Sprintf(msgHintRelease))
	default:
		return
	}
	t.host.Map.Render()
}

func (t *Tool) helpText(s *Session) string {
	if s.Freehand {
		return s.format.Sprintf(msgHelpFreehand)
	}
	switch s.Kind {
	case KindArea:
		return s.format.Sprintf(msgHelpArea)
	case KindCircle:
		return s.format.Sprintf(msgHelpCircle)
	default:
		return s.format.Sprintf(msgHelpLength)
	}
}

func (t *Tool) liveText(s *Session) string {
	if s.Kind == KindLength {
		return s.format.Sprintf(msgTotalLength, s.Result)
	}
	return s.format.Sprintf(msgTotalArea, s.Result)
}

// teardown ends the current session, if any. Completed overlays and features stay.
func (t *Tool) teardown() {
	s := t.session
	if s == nil {
		return
	}

	for _, unsubscribe := range s.unsubscribe {
		if unsubscribe != nil {
			unsubscribe()
		}
	}
	s.unsubscribe = nil

	t.overlays.removeTooltip()
	t.suppressDoubleClickZoom()
	t.host.Map.RemoveInteraction(s.draw)
	t.session = nil

	t.logger.Debug("measurement torn down",
		zap.String("session", string(s.ID)),
		zap.Stringer("state", s.State))
}

// suppressDoubleClickZoom disables the host's double-click zoom briefly.
// Overlapping suppressions restore the state seen before the first one.
func (t *Tool) suppressDoubleClickZoom() {
	zoom := t.doubleClickZoom()
	if zoom == nil {
		return
	}

	if !t.zoom.pending {
		t.zoom.wasActive = zoom.Active()
		t.zoom.pending = true
	}
	t.zoom.generation++
	generation := t.zoom.generation
	restore := t.zoom.wasActive

	zoom.SetActive(false)
	t.host.Map.AfterFunc(doubleClickZoomDelay, func() {
		if generation != t.zoom.generation {
			return
		}
		zoom.SetActive(restore)
		t.zoom.pending = false
	})
}

func (t *Tool) doubleClickZoom() DoubleClickZoom {
	if t.zoom.interaction != nil {
		return t.zoom.interaction
	}
	for _, i := range t.host.Map.Interactions() {
		if z, ok := i.(DoubleClickZoom); ok {
			t.zoom.interaction = z
			break
		}
	}
	return t.zoom.interaction
}
