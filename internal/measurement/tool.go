package measurement

import (
	"github.com/philipparndt/geomeasure/pkg/sphere"
	"go.uber.org/zap"
)

// Tool is the interactive measure tool. Add it to the host map as an
// interaction so it receives pointer moves, then arm it with SetTool.
//
// The tool is not safe for concurrent use; the host must deliver all events
// and scheduled callbacks on one goroutine.
type Tool struct {
	host     Host
	opts     Options
	calc     Calculator
	format   *Formatter
	overlays *overlays
	logger   *zap.Logger
	sphere   Sphere

	layers     map[string]VectorLayer // provisioned, by name
	layerNames []string
	session    *Session
	active     bool

	zoom struct {
		interaction DoubleClickZoom
		wasActive   bool
		pending     bool
		generation  int
	}

	listeners []*measureEndListener
}

type measureEndListener struct {
	fn func(MeasureEnd)
}

// Option customizes a Tool
type Option func(*Tool)

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tool) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSphere replaces the distance/area primitive built from Options.Sphere
func WithSphere(s Sphere) Option {
	return func(t *Tool) {
		t.sphere = s
	}
}

// New creates a measure tool bound to a host
func New(host Host, opts Options, options ...Option) *Tool {
	t := &Tool{
		host:   host,
		logger: zap.NewNop(),
		active: true,
	}
	for _, option := range options {
		option(t)
	}
	t.Configure(opts)
	return t
}

// Configure replaces the options. They apply from the next SetTool call; a
// session in progress keeps the options it was armed with. A changed layer
// name provisions a new layer and earlier measurements stay in the old one.
func (t *Tool) Configure(opts Options) {
	if opts.LayerName == "" {
		opts.LayerName = DefaultLayerName
	}
	if opts.RemoveButtonSrc == "" {
		opts.RemoveButtonSrc = DefaultRemoveButtonSrc
	}

	t.opts = opts
	s := t.sphere
	if s == nil {
		s = sphere.New(opts.Sphere)
	}
	t.calc = Calculator{Sphere: s, Geodesic: opts.Geodesic}
	t.format = NewFormatter(opts.Language)
	t.overlays = t.newOverlays()
}

func (t *Tool) newOverlays() *overlays {
	o := &overlays{m: t.host.Map}
	if t.overlays != nil {
		o.tooltip = t.overlays.tooltip
	}
	return o
}

// Options returns the current options
func (t *Tool) Options() Options {
	return t.opts
}

// SetTool tears down the current session and, when active is set and key
// names a measure kind ("measureLength", "measureArea", "measureCircle"),
// arms a new one.
func (t *Tool) SetTool(active bool, key string, freehand bool) {
	t.teardown()

	kind, ok := ParseKind(key)
	if !active || !ok {
		return
	}
	t.activate(kind, freehand)
}

// GetTool reports whether a session is armed or drawing
func (t *Tool) GetTool() bool {
	s := t.session
	return s != nil && (s.State == StateArmed || s.State == StateDrawing)
}

// Session returns the live session, or nil when idle
func (t *Tool) Session() *Session {
	return t.session
}

// State returns the state of the live session
func (t *Tool) State() State {
	if t.session == nil {
		return StateIdle
	}
	return t.session.State
}

// Layer returns the layer named by the current options once it has been provisioned
func (t *Tool) Layer() VectorLayer {
	return t.layers[t.opts.LayerName]
}

// provisionLayer returns the layer named by the current options, creating
// and styling it on first use
func (t *Tool) provisionLayer() VectorLayer {
	name := t.opts.LayerName
	if l, ok := t.layers[name]; ok {
		return l
	}
	l := t.host.Layers.VectorLayer(name, true)
	if l == nil {
		return nil
	}
	l.SetStyle(t.host.Styles.Resolve(t.opts.FinishStyle))
	if t.layers == nil {
		t.layers = make(map[string]VectorLayer)
	}
	t.layers[name] = l
	t.layerNames = append(t.layerNames, name)
	return l
}

// Remove deletes every overlay and feature of a measurement, searching all
// layers the tool has written to
func (t *Tool) Remove(id SessionID) int {
	layers := make([]VectorLayer, 0, len(t.layerNames)+1)
	for _, name := range t.layerNames {
		layers = append(layers, t.layers[name])
	}
	if _, ok := t.layers[t.opts.LayerName]; !ok {
		if l := t.host.Layers.VectorLayer(t.opts.LayerName, false); l != nil {
			layers = append(layers, l)
		}
	}
	removed := t.overlays.removeAll(id, layers...)
	t.logger.Debug("measurement removed", zap.String("session", string(id)), zap.Int("items", removed))
	return removed
}

// OnMeasureEnd subscribes to completed measurements
func (t *Tool) OnMeasureEnd(fn func(MeasureEnd)) (unsubscribe func()) {
	l := &measureEndListener{fn: fn}
	t.listeners = append(t.listeners, l)
	return func() {
		for i, other := range t.listeners {
			if other == l {
				t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
				return
			}
		}
	}
}

func (t *Tool) emit(ev MeasureEnd) {
	listeners := append([]*measureEndListener(nil), t.listeners...)
	for _, l := range listeners {
		l.fn(ev)
	}
}

// Active reports whether the tool handles pointer events
func (t *Tool) Active() bool {
	return t.active
}

// SetActive enables or disables the tool. Deactivating ends the live session.
func (t *Tool) SetActive(active bool) {
	t.active = active
	if !active {
		t.teardown()
	}
}
