package viewer

import (
	"image/color"
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/internal/measurement"
)

func TestCameraProjectRoundTrip(t *testing.T) {
	c := NewCamera(orb.Point{1000, -500}, 2)

	x, y := c.Project(orb.Point{1100, -400}, 800, 600)
	if x != 450 || y != 250 {
		t.Errorf("Expected (450, 250), got (%v, %v)", x, y)
	}

	p := c.Unproject(x, y, 800, 600)
	if p != (orb.Point{1100, -400}) {
		t.Errorf("Expected round trip to (1100, -400), got %v", p)
	}
}

func TestCameraPan(t *testing.T) {
	c := NewCamera(orb.Point{0, 0}, 10)
	c.Pan(5, 5)

	// dragging right and down moves the view left and up
	if c.Center != (orb.Point{-50, 50}) {
		t.Errorf("Expected center (-50, 50), got %v", c.Center)
	}
}

func TestCameraZoomKeepsAnchor(t *testing.T) {
	c := NewCamera(orb.Point{0, 0}, 10)
	before := c.Unproject(100, 100, 400, 400)

	c.Zoom(0.5, 100, 100, 400, 400)
	after := c.Unproject(100, 100, 400, 400)

	if c.Resolution != 5 {
		t.Errorf("Expected resolution 5, got %v", c.Resolution)
	}
	if math.Abs(before[0]-after[0]) > 1e-9 || math.Abs(before[1]-after[1]) > 1e-9 {
		t.Errorf("Expected anchor %v to stay fixed, got %v", before, after)
	}
}

func TestCameraClampsResolution(t *testing.T) {
	c := NewCamera(orb.Point{}, 0)
	if c.Resolution != minResolution {
		t.Errorf("Expected minimum resolution, got %v", c.Resolution)
	}
	c.Zoom(1e12, 0, 0, 100, 100)
	if c.Resolution != maxResolution {
		t.Errorf("Expected maximum resolution, got %v", c.Resolution)
	}
}

func TestCameraFit(t *testing.T) {
	c := NewCamera(orb.Point{}, 1)
	c.Fit(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2000, 1000}}, 200, 200)

	if c.Center != (orb.Point{1000, 500}) {
		t.Errorf("Expected center (1000, 500), got %v", c.Center)
	}
	if c.Resolution != 10 {
		t.Errorf("Expected resolution 10, got %v", c.Resolution)
	}
}

func TestParseColor(t *testing.T) {
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	tests := []struct {
		in   string
		want color.Color
	}{
		{"rgba(253, 128, 68, 1)", color.NRGBA{R: 253, G: 128, B: 68, A: 255}},
		{"rgba(67, 110, 238, 0.4)", color.NRGBA{R: 67, G: 110, B: 238, A: 102}},
		{"rgb(255, 0, 0)", color.NRGBA{R: 255, A: 255}},
		{"#FFCC33", color.NRGBA{R: 255, G: 204, B: 51, A: 255}},
		{"rgba(1, 2, 3)", fallback},
		{"blue", fallback},
		{"#12345", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseColor(tt.in, fallback); got != tt.want {
				t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOverlayPosition(t *testing.T) {
	anchor := fyne.NewPos(100, 100)
	size := fyne.NewSize(40, 20)

	tests := []struct {
		positioning measurement.Positioning
		want        fyne.Position
	}{
		{measurement.PositionTopLeft, fyne.NewPos(100, 100)},
		{measurement.PositionCenterLeft, fyne.NewPos(100, 90)},
		{measurement.PositionCenterCenter, fyne.NewPos(80, 90)},
	}

	for _, tt := range tests {
		if got := position(anchor, size, tt.positioning); got != tt.want {
			t.Errorf("position(%s) = %v, want %v", tt.positioning, got, tt.want)
		}
	}
}
