package measurement

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/philipparndt/geomeasure/pkg/sphere"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLayerName is the vector layer measurements are stored in
const DefaultLayerName = "measureTool"

// DefaultRemoveButtonSrc is a 14x14 PNG cross
const DefaultRemoveButtonSrc = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAA4AAAAOCAYAAAAfSC3RAAAAN0lEQVR42mNgGDBwx8bmPwiTLA+TwCaJTw6nAoKasCkkWhMuzSQHFEW2kew/ikKUKM1kJwC6AQBiXHjdf3XipwAAAABJRU5ErkJggg=="

// Options configure the measure tool. They are read at activation.
type Options struct {
	Sphere          float64
	Geodesic        bool
	LayerName       string
	DrawStyle       StyleSpec
	FinishStyle     StyleSpec
	RemoveButtonSrc string
	Language        language.Tag
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		Sphere:          sphere.DefaultRadius,
		Geodesic:        true,
		LayerName:       DefaultLayerName,
		DrawStyle:       DefaultDrawStyle(),
		FinishStyle:     DefaultFinishStyle(),
		RemoveButtonSrc: DefaultRemoveButtonSrc,
		Language:        language.English,
	}
}

// ParseOptions applies recognized keys on top of the defaults. Keys with a
// missing, wrongly typed or invalid value keep their default.
func ParseOptions(raw map[string]interface{}) Options {
	opts := DefaultOptions()

	if r, ok := toFloat(raw["sphere"]); ok && r > 0 && !math.IsInf(r, 0) {
		opts.Sphere = r
	}
	if g, ok := raw["isGeodesic"].(bool); ok {
		opts.Geodesic = g
	}
	if name, ok := raw["layerName"].(string); ok && strings.TrimSpace(name) != "" {
		opts.LayerName = name
	}
	if spec, ok := decodeStyle(raw["drawStyle"]); ok {
		opts.DrawStyle = spec
	}
	if spec, ok := decodeStyle(raw["finshStyle"]); ok {
		opts.FinishStyle = spec
	}
	if src, ok := raw["removeButtonSrc"].(string); ok && src != "" {
		opts.RemoveButtonSrc = src
	}
	if lang, ok := raw["language"].(string); ok {
		if tag, err := language.Parse(lang); err == nil {
			opts.Language = tag
		}
	}

	return opts
}

// LoadOptions reads options from a YAML or JSON file
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("failed to read options %s: %w", path, err)
	}

	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return DefaultOptions(), fmt.Errorf("failed to parse options %s: %w", path, err)
	}

	return ParseOptions(raw), nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
