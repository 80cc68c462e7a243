package measurement

import (
	"bytes"
	"math"

	"gopkg.in/yaml.v3"
)

// StyleSpec is a declarative style description
type StyleSpec struct {
	Fill   *FillSpec   `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke *StrokeSpec `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	Image  *ImageSpec  `yaml:"image,omitempty" json:"image,omitempty"`
}

// FillSpec describes a fill color, e.g. "rgba(67, 110, 238, 0.4)"
type FillSpec struct {
	Color string `yaml:"fillColor" json:"fillColor"`
}

// StrokeSpec describes an outline
type StrokeSpec struct {
	Color string  `yaml:"strokeColor" json:"strokeColor"`
	Width float64 `yaml:"strokeWidth" json:"strokeWidth"`
}

// ImageSpec describes the marker drawn at vertices
type ImageSpec struct {
	Type  string      `yaml:"type" json:"type"`
	Image *MarkerSpec `yaml:"image,omitempty" json:"image,omitempty"`
}

// MarkerSpec describes a regular-shape vertex marker. Infinite points draw a circle.
type MarkerSpec struct {
	Fill   *FillSpec   `yaml:"fill,omitempty" json:"fill,omitempty"`
	Points float64     `yaml:"points" json:"points"`
	Radius float64     `yaml:"radius" json:"radius"`
	Stroke *StrokeSpec `yaml:"stroke,omitempty" json:"stroke,omitempty"`
}

func defaultMarker() *ImageSpec {
	return &ImageSpec{
		Image: &MarkerSpec{
			Fill:   &FillSpec{Color: "rgba(255, 255, 255, 0.8)"},
			Points: math.Inf(1),
			Radius: 4,
			Stroke: &StrokeSpec{Color: "rgba(255, 0, 0, 1)", Width: 1.5},
		},
	}
}

// DefaultDrawStyle is used for the in-progress sketch
func DefaultDrawStyle() StyleSpec {
	return StyleSpec{
		Fill:   &FillSpec{Color: "rgba(67, 110, 238, 0.4)"},
		Stroke: &StrokeSpec{Color: "rgba(249, 185, 154, 1)", Width: 2.5},
		Image:  defaultMarker(),
	}
}

// DefaultFinishStyle is used for the measurement layer
func DefaultFinishStyle() StyleSpec {
	return StyleSpec{
		Fill:   &FillSpec{Color: "rgba(67, 110, 238, 0.4)"},
		Stroke: &StrokeSpec{Color: "rgba(253, 128, 68, 1)", Width: 3},
		Image:  defaultMarker(),
	}
}

// decodeStyle accepts a mapping only if it decodes strictly into a StyleSpec
// with at least one section set.
func decodeStyle(v interface{}) (StyleSpec, bool) {
	if _, ok := v.(map[string]interface{}); !ok {
		return StyleSpec{}, false
	}

	raw, err := yaml.Marshal(v)
	if err != nil {
		return StyleSpec{}, false
	}

	var spec StyleSpec
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return StyleSpec{}, false
	}
	if spec.Fill == nil && spec.Stroke == nil && spec.Image == nil {
		return StyleSpec{}, false
	}
	return spec, true
}
