package host

import "github.com/philipparndt/geomeasure/internal/measurement"

// Layer is an in-memory vector layer
type Layer struct {
	Name     string
	style    measurement.Style
	features []*measurement.Feature
	onChange func()
}

// AddFeature appends a feature
func (l *Layer) AddFeature(f *measurement.Feature) {
	if f == nil {
		return
	}
	l.features = append(l.features, f)
	l.changed()
}

// RemoveFeature removes a feature by identity
func (l *Layer) RemoveFeature(f *measurement.Feature) {
	for i, other := range l.features {
		if other == f {
			l.features = append(l.features[:i], l.features[i+1:]...)
			l.changed()
			return
		}
	}
}

// Features returns the live feature slice
func (l *Layer) Features() []*measurement.Feature {
	return l.features
}

// SetStyle sets the style features are rendered with
func (l *Layer) SetStyle(style measurement.Style) {
	l.style = style
	l.changed()
}

// Style returns the layer style
func (l *Layer) Style() measurement.Style {
	return l.style
}

func (l *Layer) changed() {
	if l.onChange != nil {
		l.onChange()
	}
}
