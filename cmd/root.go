package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/geomeasure/version"
	"github.com/spf13/cobra"
)

var flags settings

var rootCmd = &cobra.Command{
	Use:   "geomeasure",
	Short: "Measure distances and areas on a map",
	Long: `geomeasure measures line lengths, polygon areas and circle areas the way an
interactive map measure tool does: geodesically on a sphere, or planar in map units.

Coordinates are given as lon,lat pairs. The gui command opens an interactive map.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigPath, "config", "c", "", "options file (YAML or JSON)")
	pf.StringVar(&flags.Language, "language", "", "language of labels (en, zh)")
	pf.StringVar(&flags.Projection, "projection", "EPSG:3857", "map projection (EPSG:3857, EPSG:4326)")
	pf.Float64Var(&flags.Sphere, "sphere", 0, "sphere radius in meters (default from options, 6378137)")
	pf.BoolVar(&flags.Planar, "planar", false, "measure in map units instead of on the sphere")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "log measurement events")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
