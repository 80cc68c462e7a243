package measurement

import (
	"github.com/google/uuid"
	"github.com/philipparndt/geomeasure/pkg/geometry"
)

// Kind selects what is measured and which shape gets drawn
type Kind int

const (
	KindLength Kind = iota + 1
	KindArea
	KindCircle
)

var kindNames = map[Kind]string{
	KindLength: "measureLength",
	KindArea:   "measureArea",
	KindCircle: "measureCircle",
}

// String returns the tool key used by SetTool
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves a tool key such as "measureLength"
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// ShapeType is the geometry type a draw interaction produces
type ShapeType string

const (
	ShapeLineString ShapeType = "LineString"
	ShapePolygon    ShapeType = "Polygon"
	ShapeCircle     ShapeType = "Circle"
)

// Shape returns the geometry type drawn for this kind
func (k Kind) Shape() ShapeType {
	switch k {
	case KindArea:
		return ShapePolygon
	case KindCircle:
		return ShapeCircle
	default:
		return ShapeLineString
	}
}

// SessionID tags every overlay and feature created by one measurement
type SessionID string

func newSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Feature is a drawn geometry stored in the tool's vector layer
type Feature struct {
	Geometry  geometry.Shape
	SessionID SessionID
	Kind      Kind
	Marker    bool // vertex marker rather than the measured shape
}

// MeasureEnd is emitted once per completed measurement
type MeasureEnd struct {
	SessionID   SessionID
	Kind        Kind
	Measurement Measurement
	Result      string
	Feature     *Feature
}
