package measurement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/geomeasure/pkg/sphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts := ParseOptions(nil)

	assert.Equal(t, sphere.DefaultRadius, opts.Sphere)
	assert.True(t, opts.Geodesic)
	assert.Equal(t, DefaultLayerName, opts.LayerName)
	assert.Equal(t, DefaultDrawStyle(), opts.DrawStyle)
	assert.Equal(t, DefaultFinishStyle(), opts.FinishStyle)
	assert.Equal(t, DefaultRemoveButtonSrc, opts.RemoveButtonSrc)
	assert.Equal(t, language.English, opts.Language)
}

func TestParseOptionsRecognizedKeys(t *testing.T) {
	opts := ParseOptions(map[string]interface{}{
		"sphere":          6371008,
		"isGeodesic":      false,
		"layerName":       "distances",
		"removeButtonSrc": "remove.png",
		"language":        "zh-CN",
		"drawStyle": map[string]interface{}{
			"stroke": map[string]interface{}{"strokeColor": "rgba(0, 0, 0, 1)", "strokeWidth": 4},
		},
	})

	assert.Equal(t, 6371008.0, opts.Sphere)
	assert.False(t, opts.Geodesic)
	assert.Equal(t, "distances", opts.LayerName)
	assert.Equal(t, "remove.png", opts.RemoveButtonSrc)
	assert.Equal(t, "zh-CN", opts.Language.String())
	require.NotNil(t, opts.DrawStyle.Stroke)
	assert.Equal(t, 4.0, opts.DrawStyle.Stroke.Width)
	assert.Nil(t, opts.DrawStyle.Fill)
	assert.Equal(t, DefaultFinishStyle(), opts.FinishStyle)
}

func TestParseOptionsInvalidValuesFallBack(t *testing.T) {
	opts := ParseOptions(map[string]interface{}{
		"sphere":     "6371000",
		"isGeodesic": "no",
		"layerName":  "  ",
		"language":   "not a language tag!",
		"drawStyle":  "red",
		"finshStyle": map[string]interface{}{"colour": "red"},
	})

	assert.Equal(t, DefaultOptions(), opts)
}

func TestParseOptionsRejectsNonPositiveSphere(t *testing.T) {
	assert.Equal(t, sphere.DefaultRadius, ParseOptions(map[string]interface{}{"sphere": -5.0}).Sphere)
	assert.Equal(t, sphere.DefaultRadius, ParseOptions(map[string]interface{}{"sphere": 0}).Sphere)
}

func TestDecodeStyle(t *testing.T) {
	spec, ok := decodeStyle(map[string]interface{}{
		"fill": map[string]interface{}{"fillColor": "rgba(1, 2, 3, 0.5)"},
	})
	require.True(t, ok)
	assert.Equal(t, "rgba(1, 2, 3, 0.5)", spec.Fill.Color)

	_, ok = decodeStyle(map[string]interface{}{})
	assert.False(t, ok, "empty style")

	_, ok = decodeStyle(map[string]interface{}{"fill": "red"})
	assert.False(t, ok, "wrong section type")

	_, ok = decodeStyle([]interface{}{"fill"})
	assert.False(t, ok, "not a mapping")
}

func TestLoadOptionsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measure.yaml")
	content := `
sphere: 6371008.8
isGeodesic: true
layerName: survey
finshStyle:
  stroke:
    strokeColor: "rgba(10, 20, 30, 1)"
    strokeWidth: 2
  image:
    type: ""
    image:
      points: .inf
      radius: 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 6371008.8, opts.Sphere)
	assert.Equal(t, "survey", opts.LayerName)
	require.NotNil(t, opts.FinishStyle.Image)
	assert.Equal(t, 6.0, opts.FinishStyle.Image.Image.Radius)
}

func TestLoadOptionsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measure.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"isGeodesic": false, "layerName": "plan"}`), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.False(t, opts.Geodesic)
	assert.Equal(t, "plan", opts.LayerName)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindLength, KindArea, KindCircle} {
		parsed, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseKind("measureVolume")
	assert.False(t, ok)

	assert.Equal(t, ShapeLineString, KindLength.Shape())
	assert.Equal(t, ShapePolygon, KindArea.Shape())
	assert.Equal(t, ShapeCircle, KindCircle.Shape())
}
