package measurement

import (
	"slices"

	"github.com/paulmach/orb"
)

// OverlayKind identifies the role of an overlay
type OverlayKind int

const (
	OverlayHelp   OverlayKind = iota + 1 // guidance before the first vertex
	OverlayLive                          // running value while drawing
	OverlayVertex                        // label at an intermediate click
	OverlayResult                        // final measurement
	OverlayRemove                        // removal control
)

// Positioning anchors an overlay relative to its position
type Positioning string

const (
	PositionTopLeft      Positioning = "top-left"
	PositionCenterLeft   Positioning = "center-left"
	PositionCenterCenter Positioning = "center-center"
)

// Overlay is a positioned UI element the host renders above the map
type Overlay struct {
	Kind        OverlayKind
	Measure     Kind
	Text        string
	Hint        string // second line of the live tooltip
	Image       string // image reference of the removal control
	Title       string
	Position    orb.Point
	Positioned  bool
	Offset      [2]float64 // pixels
	Positioning Positioning
	SessionID   SessionID
	LayerName   string

	onActivate func()
}

// SetPosition anchors the overlay at a map coordinate
func (o *Overlay) SetPosition(p orb.Point) {
	o.Position = p
	o.Positioned = true
}

// Activate runs the overlay's action; only removal controls have one
func (o *Overlay) Activate() {
	if o.onActivate != nil {
		o.onActivate()
	}
}

// overlays creates and removes the tool's overlays on the host map
type overlays struct {
	m       Map
	tooltip *Overlay
}

// showHelp creates or repositions the session tooltip as a help message
func (o *overlays) showHelp(s *Session, pos orb.Point, text string) {
	t := o.ensureTooltip(s)
	t.Kind = OverlayHelp
	t.Text = text
	t.Hint = ""
	t.SetPosition(pos)
}

// showLiveResult turns the session tooltip into the running-value display
func (o *overlays) showLiveResult(s *Session, pos orb.Point, text, hint string) {
	t := o.ensureTooltip(s)
	t.Kind = OverlayLive
	t.Text = text
	t.Hint = hint
	t.SetPosition(pos)
}

func (o *overlays) ensureTooltip(s *Session) *Overlay {
	if o.tooltip != nil && o.tooltip.SessionID == s.ID {
		return o.tooltip
	}
	o.removeTooltip()
	o.tooltip = &Overlay{
		Measure:     s.Kind,
		Offset:      [2]float64{15, 0},
		Positioning: PositionCenterLeft,
		SessionID:   s.ID,
		LayerName:   s.LayerName,
	}
	o.m.AddOverlay(o.tooltip)
	return o.tooltip
}

func (o *overlays) removeTooltip() {
	if o.tooltip == nil {
		return
	}
	o.m.RemoveOverlay(o.tooltip)
	o.tooltip = nil
}

// placeResult adds a permanent label. kind OverlayVertex marks intermediate
// clicks, OverlayResult the final value.
func (o *overlays) placeResult(s *Session, pos orb.Point, text string, kind OverlayKind) *Overlay {
	label := &Overlay{
		Kind:      kind,
		Measure:   s.Kind,
		Text:      text,
		SessionID: s.ID,
		LayerName: s.LayerName,
	}

	switch {
	case kind == OverlayVertex:
		label.Offset = [2]float64{10, 0}
		label.Positioning = PositionCenterLeft
	case s.Kind == KindLength:
		label.Offset = [2]float64{10, 10}
		label.Positioning = PositionTopLeft
	default:
		label.Positioning = PositionCenterCenter
	}

	label.SetPosition(pos)
	o.m.AddOverlay(label)
	o.m.Render()
	return label
}

// placeRemoveControl adds a clickable icon that calls onActivate with the session id
func (o *overlays) placeRemoveControl(s *Session, pos orb.Point, src, title string, onActivate func(SessionID)) *Overlay {
	id := s.ID
	button := &Overlay{
		Kind:        OverlayRemove,
		Measure:     s.Kind,
		Image:       src,
		Title:       title,
		Offset:      [2]float64{8, 0},
		Positioning: PositionCenterLeft,
		SessionID:   id,
		LayerName:   s.LayerName,
		onActivate:  func() { onActivate(id) },
	}

	button.SetPosition(pos)
	o.m.AddOverlay(button)
	o.m.Render()
	return button
}

// removeAll removes every overlay and feature tagged with id and returns how
// many were removed. The host collection may shrink while we remove, so the
// scan runs over a snapshot from the end.
func (o *overlays) removeAll(id SessionID, layers ...VectorLayer) int {
	if id == "" {
		return 0
	}
	removed := 0

	snapshot := slices.Clone(o.m.Overlays())
	for i := len(snapshot) - 1; i >= 0; i-- {
		ov := snapshot[i]
		if ov != nil && ov.SessionID == id {
			o.m.RemoveOverlay(ov)
			if ov == o.tooltip {
				o.tooltip = nil
			}
			removed++
		}
	}

	for _, layer := range layers {
		if layer == nil {
			continue
		}
		features := slices.Clone(layer.Features())
		for i := len(features) - 1; i >= 0; i-- {
			if f := features[i]; f != nil && f.SessionID == id {
				layer.RemoveFeature(f)
				removed++
			}
		}
	}

	o.m.Render()
	return removed
}
