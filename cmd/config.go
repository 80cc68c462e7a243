package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/projection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// settings are the command line inputs. Flags win over the environment,
// the environment over the options file.
type settings struct {
	ConfigPath string  `env:"GEOMEASURE_CONFIG"`
	Language   string  `env:"GEOMEASURE_LANGUAGE"`
	Projection string  `env:"GEOMEASURE_PROJECTION" envDefault:"EPSG:3857"`
	Sphere     float64 `env:"GEOMEASURE_SPHERE"`
	Planar     bool
	Freehand   bool
	GeoJSON    string
	Verbose    bool
}

// resolveSettings fills every flag the user did not set from the environment
func resolveSettings(cmd *cobra.Command, fromFlags settings) (settings, error) {
	var fromEnv settings
	if err := env.Parse(&fromEnv); err != nil {
		return fromFlags, fmt.Errorf("parse env: %w", err)
	}

	s := fromFlags
	f := cmd.Flags()
	if !f.Changed("config") {
		s.ConfigPath = fromEnv.ConfigPath
	}
	if !f.Changed("language") {
		s.Language = fromEnv.Language
	}
	if !f.Changed("projection") {
		s.Projection = fromEnv.Projection
	}
	if !f.Changed("sphere") {
		s.Sphere = fromEnv.Sphere
	}
	return s, nil
}

// buildOptions turns settings into tool options and the map projection
func buildOptions(s settings) (measurement.Options, projection.Projection, error) {
	opts := measurement.DefaultOptions()
	if s.ConfigPath != "" {
		loaded, err := measurement.LoadOptions(s.ConfigPath)
		if err != nil {
			return opts, projection.Projection{}, err
		}
		opts = loaded
	}

	if s.Language != "" {
		tag, err := language.Parse(s.Language)
		if err != nil {
			return opts, projection.Projection{}, fmt.Errorf("invalid language %q: %w", s.Language, err)
		}
		opts.Language = tag
	}
	if s.Sphere < 0 {
		return opts, projection.Projection{}, fmt.Errorf("invalid sphere radius %v", s.Sphere)
	}
	if s.Sphere > 0 {
		opts.Sphere = s.Sphere
	}
	if s.Planar {
		opts.Geodesic = false
	}

	proj, ok := projection.Lookup(s.Projection)
	if !ok {
		return opts, projection.Projection{}, fmt.Errorf("unknown projection %q", s.Projection)
	}
	return opts, proj, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
